package handlers // Controller layer translates HTTP <-> service calls.

import (
	"net/http"
	"strconv"
	"time"

	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/apperrors"
	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/core"
	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/middlewares"
	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/models"
	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/services"

	"github.com/gin-gonic/gin"
)

// UserHandler bundles dependencies needed by user endpoints.
type UserHandler struct {
	svc        services.UserService
	jwtSecret  string        // JWT signing secret configured in main.
	jwtExpires time.Duration // JWT validity duration.
}

// NewUserHandler constructs a handler for users with its dependencies.
func NewUserHandler(svc services.UserService, jwtSecret string, jwtExp time.Duration) *UserHandler {
	return &UserHandler{svc: svc, jwtSecret: jwtSecret, jwtExpires: jwtExp}
}

// Register handles POST /api/auth/register (public).
func (h *UserHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := bind(c, &req); err != nil {
		writeError(c, err)
		return
	}
	u, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

// Login handles POST /api/auth/login (public).
func (h *UserHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := bind(c, &req); err != nil {
		writeError(c, err)
		return
	}
	out, err := h.svc.Login(c.Request.Context(), req, h.jwtSecret, h.jwtExpires)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// Me handles GET /api/me.
func (h *UserHandler) Me(c *gin.Context) {
	sess := middlewares.CurrentSession(c)
	if sess == nil {
		writeError(c, apperrors.ErrUnauthorized)
		return
	}
	u, err := h.svc.GetByID(c.Request.Context(), sess.UserID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// UpdateMe handles PATCH /api/me.
func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req models.UpdateProfileRequest
	if err := bind(c, &req); err != nil {
		writeError(c, err)
		return
	}
	u, err := h.svc.UpdateProfile(c.Request.Context(), middlewares.CurrentSession(c), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// ListUsers handles GET /api/users?page&limit&search&sortBy&sortOrder (admin only).
// Malformed numbers read as zero; the service applies the defaults.
func (h *UserHandler) ListUsers(c *gin.Context) {
	q := models.ListUsersQuery{
		Page:      queryInt(c, core.ParamPage),
		Limit:     queryInt(c, core.ParamLimit),
		Search:    c.Query(core.ParamSearch),
		SortBy:    c.Query(core.ParamSortBy),
		SortOrder: c.Query(core.ParamSortOrder),
	}
	out, err := h.svc.ListUsers(c.Request.Context(), middlewares.CurrentSession(c), q)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func queryInt(c *gin.Context, key string) int {
	n, _ := strconv.Atoi(c.Query(key))
	return n
}
