package services

import (
	"errors"
	"testing"
	"time"

	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/apperrors"
	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/mocks"
	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var owner = &models.Session{UserID: "u-1", Email: "owner@example.com", Role: models.RoleUser}

func TestProjectService_Create_AppliesDefaults(t *testing.T) {
	repo := new(mocks.ProjectRepositoryMock)
	svc := NewProjectService(repo, mocks.NopLogger())

	var saved *models.Project
	repo.On("Create", mock.AnythingOfType("*models.Project")).Return(nil).Run(func(args mock.Arguments) {
		saved = args.Get(0).(*models.Project)
	})

	p, err := svc.Create(t.Context(), owner, models.CreateProjectRequest{Title: " Course site ", StartDate: "2025-02-01"})
	require.NoError(t, err)
	assert.Same(t, saved, p)
	assert.Equal(t, "Course site", p.Title)
	assert.Equal(t, models.StatusActive, p.Status)
	assert.Equal(t, models.PriorityMedium, p.Priority)
	assert.Equal(t, "u-1", p.UserID)
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), p.StartDate)
	assert.Nil(t, p.EndDate)
}

func TestProjectService_Create_ExplicitFields(t *testing.T) {
	repo := new(mocks.ProjectRepositoryMock)
	svc := NewProjectService(repo, nil)
	repo.On("Create", mock.Anything).Return(nil)

	end := "2025-06-30T12:00:00Z"
	p, err := svc.Create(t.Context(), owner, models.CreateProjectRequest{
		Title: "Robotics", Status: "ON_HOLD", Priority: "HIGH", StartDate: "2025-01-01T00:00:00Z", EndDate: &end,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusOnHold, p.Status)
	assert.Equal(t, models.PriorityHigh, p.Priority)
	require.NotNil(t, p.EndDate)
	assert.Equal(t, 30, p.EndDate.Day())
}

func TestProjectService_Get_ForeignIsNotFound(t *testing.T) {
	repo := new(mocks.ProjectRepositoryMock)
	svc := NewProjectService(repo, nil)
	repo.On("FindOwned", "p-9", "u-1").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Get(t.Context(), owner, "p-9")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestProjectService_Update_PartialAndClearEndDate(t *testing.T) {
	repo := new(mocks.ProjectRepositoryMock)
	svc := NewProjectService(repo, nil)

	end := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	existing := &models.Project{ID: "p-1", Title: "Old", Status: models.StatusActive, Priority: models.PriorityLow, EndDate: &end, UserID: "u-1"}
	repo.On("FindOwned", "p-1", "u-1").Return(existing, nil)
	repo.On("Update", existing).Return(nil)

	status := "COMPLETED"
	p, err := svc.Update(t.Context(), owner, "p-1", models.UpdateProjectRequest{
		Status:  &status,
		EndDate: models.NullableDate{Set: true, Null: true},
	})
	require.NoError(t, err)
	assert.Equal(t, "Old", p.Title)
	assert.Equal(t, models.StatusCompleted, p.Status)
	assert.Equal(t, models.PriorityLow, p.Priority)
	assert.Nil(t, p.EndDate)
}

func TestProjectService_Update_AbsentEndDateUntouched(t *testing.T) {
	repo := new(mocks.ProjectRepositoryMock)
	svc := NewProjectService(repo, nil)

	end := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	existing := &models.Project{ID: "p-1", Title: "Old", EndDate: &end, UserID: "u-1"}
	repo.On("FindOwned", "p-1", "u-1").Return(existing, nil)
	repo.On("Update", existing).Return(nil)

	title := "Newer"
	p, err := svc.Update(t.Context(), owner, "p-1", models.UpdateProjectRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Newer", p.Title)
	assert.Equal(t, &end, p.EndDate)
}

func TestProjectService_Update_ForeignNotMutated(t *testing.T) {
	repo := new(mocks.ProjectRepositoryMock)
	svc := NewProjectService(repo, nil)
	repo.On("FindOwned", "p-2", "u-1").Return(nil, gorm.ErrRecordNotFound)

	title := "Hijack"
	_, err := svc.Update(t.Context(), owner, "p-2", models.UpdateProjectRequest{Title: &title})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestProjectService_Delete(t *testing.T) {
	repo := new(mocks.ProjectRepositoryMock)
	svc := NewProjectService(repo, nil)
	repo.On("DeleteOwned", "p-1", "u-1").Return(nil)
	repo.On("DeleteOwned", "p-2", "u-1").Return(gorm.ErrRecordNotFound)
	repo.On("DeleteOwned", "p-3", "u-1").Return(errors.New("deadlock"))

	assert.NoError(t, svc.Delete(t.Context(), owner, "p-1"))
	assert.ErrorIs(t, svc.Delete(t.Context(), owner, "p-2"), apperrors.ErrNotFound)
	assert.True(t, apperrors.IsUpstream(svc.Delete(t.Context(), owner, "p-3")))
}

func TestProjectService_NoSession(t *testing.T) {
	repo := new(mocks.ProjectRepositoryMock)
	svc := NewProjectService(repo, nil)

	_, err := svc.List(t.Context(), nil)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	repo.AssertNotCalled(t, "ListByOwner", mock.Anything)
}
