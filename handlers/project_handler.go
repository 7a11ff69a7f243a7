package handlers

import (
	"net/http"

	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/middlewares"
	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/models"
	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/services"

	"github.com/gin-gonic/gin"
)

// ProjectHandler serves /api/projects for the authenticated caller.
type ProjectHandler struct {
	svc services.ProjectService
}

func NewProjectHandler(svc services.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

// List handles GET /api/projects.
func (h *ProjectHandler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context(), middlewares.CurrentSession(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Create handles POST /api/projects.
func (h *ProjectHandler) Create(c *gin.Context) {
	var req models.CreateProjectRequest
	if err := bind(c, &req); err != nil {
		writeError(c, err)
		return
	}
	p, err := h.svc.Create(c.Request.Context(), middlewares.CurrentSession(c), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// Get handles GET /api/projects/:id.
func (h *ProjectHandler) Get(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context(), middlewares.CurrentSession(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Update handles PATCH /api/projects/:id.
func (h *ProjectHandler) Update(c *gin.Context) {
	var req models.UpdateProjectRequest
	if err := bind(c, &req); err != nil {
		writeError(c, err)
		return
	}
	p, err := h.svc.Update(c.Request.Context(), middlewares.CurrentSession(c), c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Delete handles DELETE /api/projects/:id.
func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), middlewares.CurrentSession(c), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.DeleteResponse{Success: true})
}
