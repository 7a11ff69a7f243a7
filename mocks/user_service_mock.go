package mocks

import (
	"context"
	"time"

	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/models"

	"github.com/stretchr/testify/mock"
)

// UserServiceMock is a testify/mock for services.UserService.
// We use this to test the HTTP handlers without real business logic.
type UserServiceMock struct{ mock.Mock }

func (m *UserServiceMock) Register(_ context.Context, req models.RegisterRequest) (*models.User, error) {
	args := m.Called(req)
	if v := args.Get(0); v != nil {
		return v.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserServiceMock) Login(_ context.Context, req models.LoginRequest, jwtSecret string, exp time.Duration) (*models.AuthResponse, error) {
	args := m.Called(req, jwtSecret, exp)
	if v := args.Get(0); v != nil {
		return v.(*models.AuthResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserServiceMock) GetByID(_ context.Context, id string) (*models.User, error) {
	args := m.Called(id)
	if v := args.Get(0); v != nil {
		return v.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserServiceMock) UpdateProfile(_ context.Context, s *models.Session, req models.UpdateProfileRequest) (*models.User, error) {
	args := m.Called(s, req)
	if v := args.Get(0); v != nil {
		return v.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserServiceMock) ListUsers(_ context.Context, s *models.Session, q models.ListUsersQuery) (*models.UserListResponse, error) {
	args := m.Called(s, q)
	if v := args.Get(0); v != nil {
		return v.(*models.UserListResponse), args.Error(1)
	}
	return nil, args.Error(1)
}
