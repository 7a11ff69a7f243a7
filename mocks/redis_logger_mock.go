package mocks

import (
	"time"

	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/utils/redislog"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
)

// NewRedisLoggerWithMock constructs a real redislog.Logger over a mocked redis client,
// so tests can check LPUSH/LTRIM/EXPIRE calls.
func NewRedisLoggerWithMock() (*redislog.Logger, *redis.Client, redismock.ClientMock) {
	rc, mock := redismock.NewClientMock()
	logger := redislog.New(rc, "logs:app", 100, 24*time.Hour)
	return logger, rc, mock
}

// NopLogger drops every entry.
func NopLogger() *redislog.Logger {
	return redislog.New(nil, "", 0, 0)
}
