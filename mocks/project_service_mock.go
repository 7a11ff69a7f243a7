package mocks

import (
	"context"

	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/models"

	"github.com/stretchr/testify/mock"
)

// ProjectServiceMock is a testify/mock for services.ProjectService.
type ProjectServiceMock struct{ mock.Mock }

func (m *ProjectServiceMock) List(_ context.Context, s *models.Session) ([]models.Project, error) {
	args := m.Called(s)
	if v := args.Get(0); v != nil {
		return v.([]models.Project), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectServiceMock) Create(_ context.Context, s *models.Session, req models.CreateProjectRequest) (*models.Project, error) {
	args := m.Called(s, req)
	if v := args.Get(0); v != nil {
		return v.(*models.Project), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectServiceMock) Get(_ context.Context, s *models.Session, id string) (*models.Project, error) {
	args := m.Called(s, id)
	if v := args.Get(0); v != nil {
		return v.(*models.Project), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectServiceMock) Update(_ context.Context, s *models.Session, id string, req models.UpdateProjectRequest) (*models.Project, error) {
	args := m.Called(s, id, req)
	if v := args.Get(0); v != nil {
		return v.(*models.Project), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectServiceMock) Delete(_ context.Context, s *models.Session, id string) error {
	return m.Called(s, id).Error(0)
}
