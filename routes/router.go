package routes // Router setup layer.

import (
	"net/http"
	"time"

	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/global"
	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/handlers"
	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/middlewares"
	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Services are the use-cases exposed over HTTP.
type Services struct {
	Users    services.UserService
	Projects services.ProjectService
	Email    services.EmailService
}

// Options carries the HTTP-layer settings taken from config.
type Options struct {
	JWTSecret   string
	JWTExpiry   time.Duration
	CORSOrigins []string
	Logger      zerolog.Logger
}

// Setup attaches middlewares and registers all endpoints.
func Setup(r *gin.Engine, svc Services, opts Options) {
	// Request id first so every later log line carries it.
	r.Use(
		middlewares.RequestID(opts.Logger),
		middlewares.RequestLogger(),
		middlewares.Recovery(),
		middlewares.CORS(opts.CORSOrigins),
	)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "version": global.AppVersion})
	})

	api := r.Group("/api")

	uh := handlers.NewUserHandler(svc.Users, opts.JWTSecret, opts.JWTExpiry)
	ph := handlers.NewProjectHandler(svc.Projects)
	eh := handlers.NewEmailHandler(svc.Email)

	// Public endpoints (no JWT required).
	api.POST("/auth/register", uh.Register)
	api.POST("/auth/login", uh.Login)
	api.POST("/send-email", eh.Send)

	// Protected group (requires valid Authorization: Bearer <token>).
	protected := api.Group("/")
	protected.Use(middlewares.Auth(opts.JWTSecret))

	protected.GET("/me", uh.Me)
	protected.PATCH("/me", uh.UpdateMe)

	// Admin listing; the role check lives in the service.
	protected.GET("/users", uh.ListUsers)

	protected.GET("/projects", ph.List)
	protected.POST("/projects", ph.Create)
	protected.GET("/projects/:id", ph.Get)
	protected.PATCH("/projects/:id", ph.Update)
	protected.DELETE("/projects/:id", ph.Delete)
}
