package mocks

import (
	"context"

	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/models"

	"github.com/stretchr/testify/mock"
)

// ProjectRepositoryMock is a testify/mock for repositories.ProjectRepository.
type ProjectRepositoryMock struct{ mock.Mock }

func (m *ProjectRepositoryMock) ListByOwner(_ context.Context, userID string) ([]models.Project, error) {
	args := m.Called(userID)
	if v := args.Get(0); v != nil {
		return v.([]models.Project), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepositoryMock) FindOwned(_ context.Context, id, userID string) (*models.Project, error) {
	args := m.Called(id, userID)
	if v := args.Get(0); v != nil {
		return v.(*models.Project), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepositoryMock) Create(_ context.Context, p *models.Project) error {
	return m.Called(p).Error(0)
}

func (m *ProjectRepositoryMock) Update(_ context.Context, p *models.Project) error {
	return m.Called(p).Error(0)
}

func (m *ProjectRepositoryMock) DeleteOwned(_ context.Context, id, userID string) error {
	return m.Called(id, userID).Error(0)
}
