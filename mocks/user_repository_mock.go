package mocks

import (
	"context"

	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/models"
	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/repositories"

	"github.com/stretchr/testify/mock"
)

// UserRepositoryMock is a testify/mock for repositories.UserRepository.
// We use this to unit-test the service layer without touching a DB.
type UserRepositoryMock struct{ mock.Mock }

func (m *UserRepositoryMock) Create(_ context.Context, u *models.User) error {
	return m.Called(u).Error(0)
}

func (m *UserRepositoryMock) FindByEmail(_ context.Context, email string) (*models.User, error) {
	args := m.Called(email)
	if v := args.Get(0); v != nil {
		return v.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepositoryMock) FindByID(_ context.Context, id string) (*models.User, error) {
	args := m.Called(id)
	if v := args.Get(0); v != nil {
		return v.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepositoryMock) Update(_ context.Context, u *models.User) error {
	return m.Called(u).Error(0)
}

func (m *UserRepositoryMock) List(_ context.Context, f repositories.UserFilter) ([]models.User, int64, error) {
	args := m.Called(f)
	var items []models.User
	if v := args.Get(0); v != nil {
		items = v.([]models.User)
	}
	var total int64
	if v := args.Get(1); v != nil {
		total = v.(int64)
	}
	return items, total, args.Error(2)
}
