package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/config"
	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/global"
	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/repositories"
	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/routes"
	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/seed"
	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/services"
	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/utils/mailer"
	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/utils/redislog"

	"github.com/gin-gonic/gin"
)

func main() {
	runSeed := flag.Bool("seed", false, "seed the database with the admin and demo users, then exit")
	flag.Parse()

	// 1) Load config from .env, config.yaml and APP_* env
	cfg := config.Load()
	zl := config.NewLogger(cfg)
	zl.Info().Str("env", cfg.Env).Str("port", cfg.HTTPPort).Str("version", global.AppVersion).Msg("boot")

	// 2) Initialize infrastructure (DB and Redis).
	db := config.InitDB(cfg)
	rdb := config.InitRedis(cfg) // nil when redis_addr is empty

	// 3) Redis logger (list key: logs:app), mirrored to the console logger
	rlog := redislog.New(rdb, "logs:app", 1000, 7*24*time.Hour).WithConsole(zl)

	if *runSeed {
		if err := seed.New(db, rlog, 0).Run(context.Background()); err != nil {
			zl.Fatal().Err(err).Msg("seed failed")
		}
		return
	}

	// 4) Construct repositories and services (dependency injection).
	userRepo := repositories.NewUserRepository(db)
	projectRepo := repositories.NewProjectRepository(db)

	emailSvc := services.NewEmailService(mailer.New(cfg.ResendAPIKey, cfg.EmailFrom, rlog), cfg.AppBaseURL, rlog)
	svcs := routes.Services{
		Users:    services.NewUserService(userRepo, rdb, rlog, emailSvc),
		Projects: services.NewProjectService(projectRepo, rlog),
		Email:    emailSvc,
	}

	// 5) Create Gin engine and wire routes
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	_ = r.SetTrustedProxies(nil) // trust none
	routes.Setup(r, svcs, routes.Options{
		JWTSecret:   cfg.JWTSecret,
		JWTExpiry:   cfg.JWTExpiry,
		CORSOrigins: cfg.CORSAllowedOrigins,
		Logger:      zl,
	})

	// 6) Serve until SIGINT/SIGTERM, then drain in-flight requests.
	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		rlog.Info("http server start", map[string]string{"port": cfg.HTTPPort})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal().Err(err).Msg("http server error")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error().Err(err).Msg("shutdown")
	}
	rlog.Info("http server stopped", nil)
}
