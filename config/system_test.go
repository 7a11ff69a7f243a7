package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_HTTP_PORT", "9090")
	t.Setenv("APP_DB_DRIVER", "sqlite")
	t.Setenv("APP_SQLITE_PATH", "test.db")
	t.Setenv("APP_JWT_SECRET", "s3cret")
	t.Setenv("APP_JWT_EXPIRES", "2h")
	t.Setenv("APP_CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")

	cfg := Load()

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "test.db", cfg.SQLitePath)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, 2*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
}

func TestValidate_CollectsAllProblems(t *testing.T) {
	c := &Config{JWTExpires: "soon", DBDriver: "oracle", AppBaseURL: "http://localhost"}

	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt_secret is required")
	assert.Contains(t, err.Error(), "jwt_expires is invalid")
	assert.Contains(t, err.Error(), "unknown db_driver")
}

func TestValidate_OK(t *testing.T) {
	c := &Config{JWTSecret: "x", JWTExpires: "72h", DBDriver: "sqlite", SQLitePath: "a.db", AppBaseURL: "http://localhost:3000"}
	require.NoError(t, c.Validate())
	assert.Equal(t, 72*time.Hour, c.JWTExpiry)
}
