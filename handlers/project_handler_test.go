package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/apperrors"
	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/mocks"
	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var owner = &models.Session{UserID: "u-1", Role: models.RoleUser}

func setupProjects(svc *mocks.ProjectServiceMock) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewProjectHandler(svc)
	g := r.Group("/projects", withSession(owner))
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/:id", h.Get)
	g.PATCH("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	return r
}

func TestProjects_Create_ShortTitle(t *testing.T) {
	svc := new(mocks.ProjectServiceMock)
	r := setupProjects(svc)

	w := doJSON(r, http.MethodPost, "/projects", map[string]any{"title": "ab", "startDate": "2025-01-01"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, []string{"Title must be at least 3 characters"}, fieldErrorsOf(t, w)["title"])
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProjects_Create_BadEnumsAndDate(t *testing.T) {
	svc := new(mocks.ProjectServiceMock)
	r := setupProjects(svc)

	w := doJSON(r, http.MethodPost, "/projects", map[string]any{
		"title": "Robotics", "status": "DONE", "priority": "URGENT", "startDate": "yesterday",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	fe := fieldErrorsOf(t, w)
	assert.Contains(t, fe, "status")
	assert.Contains(t, fe, "priority")
	assert.Equal(t, []string{"StartDate must be a valid date"}, fe["startDate"])
}

func TestProjects_Create_Success(t *testing.T) {
	svc := new(mocks.ProjectServiceMock)
	r := setupProjects(svc)

	req := models.CreateProjectRequest{Title: "Robotics", StartDate: "2025-01-01"}
	svc.On("Create", owner, req).Return(&models.Project{ID: "p-1", Title: "Robotics", StartDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}, nil)

	w := doJSON(r, http.MethodPost, "/projects", req)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"startDate":"2025-01-01T00:00:00Z"`)
	assert.Contains(t, w.Body.String(), `"endDate":null`)
}

func TestProjects_Update_ExplicitNullEndDate(t *testing.T) {
	svc := new(mocks.ProjectServiceMock)
	r := setupProjects(svc)

	svc.On("Update", owner, "p-1", models.UpdateProjectRequest{EndDate: models.NullableDate{Set: true, Null: true}}).
		Return(&models.Project{ID: "p-1"}, nil)

	w := doJSON(r, http.MethodPatch, "/projects/p-1", map[string]any{"endDate": nil})
	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestProjects_Update_InvalidEndDate(t *testing.T) {
	svc := new(mocks.ProjectServiceMock)
	r := setupProjects(svc)

	w := doJSON(r, http.MethodPatch, "/projects/p-1", map[string]any{"endDate": "31/12/2025"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, fieldErrorsOf(t, w), "endDate")
}

func TestProjects_Update_NullRequiredFieldRejected(t *testing.T) {
	svc := new(mocks.ProjectServiceMock)
	r := setupProjects(svc)

	w := doJSON(r, http.MethodPatch, "/projects/p-1", map[string]any{"title": nil, "status": nil})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	errs := fieldErrorsOf(t, w)
	assert.Contains(t, errs, "title")
	assert.Contains(t, errs, "status")
	svc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestProjects_Get_NotOwned(t *testing.T) {
	svc := new(mocks.ProjectServiceMock)
	r := setupProjects(svc)
	svc.On("Get", owner, "p-9").Return(nil, apperrors.ErrNotFound)

	w := doJSON(r, http.MethodGet, "/projects/p-9", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProjects_Delete(t *testing.T) {
	svc := new(mocks.ProjectServiceMock)
	r := setupProjects(svc)
	svc.On("Delete", owner, "p-1").Return(nil)
	svc.On("Delete", owner, "p-9").Return(apperrors.ErrNotFound)

	w := doJSON(r, http.MethodDelete, "/projects/p-1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	w = doJSON(r, http.MethodDelete, "/projects/p-9", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProjects_List(t *testing.T) {
	svc := new(mocks.ProjectServiceMock)
	r := setupProjects(svc)
	svc.On("List", owner).Return([]models.Project{}, nil)

	w := doJSON(r, http.MethodGet, "/projects", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}
