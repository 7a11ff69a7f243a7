package redislog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Entry is a structured log object saved into Redis as JSON.
type Entry struct {
	Level string            `json:"level"`
	Msg   string            `json:"msg"`
	Time  string            `json:"time"`
	Meta  map[string]string `json:"meta,omitempty"`
}

// Logger pushes logs to a Redis LIST (e.g., "logs:app") and trims to a max length.
// When a console logger is attached every entry is also written there.
// A nil *Logger is valid and drops everything.
type Logger struct {
	rdb       *redis.Client
	key       string        // list key, e.g. "logs:app"
	max       int64         // keep last N entries
	retention time.Duration // optional expire for the list key
	console   *zerolog.Logger
	now       func() time.Time
}

// New creates a Redis logger using a LIST.
func New(rdb *redis.Client, key string, max int64, retention time.Duration) *Logger {
	return &Logger{rdb: rdb, key: key, max: max, retention: retention, now: time.Now}
}

// WithConsole mirrors every entry to zl.
func (l *Logger) WithConsole(zl zerolog.Logger) *Logger {
	if l == nil {
		return nil
	}
	l.console = &zl
	return l
}

// log pushes a log entry as JSON -> LPUSH; then LTRIM; then EXPIRE.
func (l *Logger) log(level, msg string, meta map[string]string) {
	if l == nil {
		return // no-op if logger not initialized
	}
	if l.console != nil {
		ev := l.console.WithLevel(zlevel(level))
		for k, v := range meta {
			ev = ev.Str(k, v)
		}
		ev.Msg(msg)
	}
	if l.rdb == nil {
		return
	}
	en := Entry{
		Level: level,
		Msg:   msg,
		Time:  l.now().UTC().Format(time.RFC3339),
		Meta:  meta,
	}
	b, _ := json.Marshal(en)
	ctx := context.Background()
	_ = l.rdb.LPush(ctx, l.key, b).Err()
	_ = l.rdb.LTrim(ctx, l.key, 0, l.max-1).Err()
	if l.retention > 0 {
		_ = l.rdb.Expire(ctx, l.key, l.retention).Err()
	}
}

func zlevel(level string) zerolog.Level {
	switch level {
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Convenience helpers

// Log severity = normal information (not an error, not a warning).
func (l *Logger) Info(msg string, meta map[string]string) { l.log("info", msg, meta) }

func (l *Logger) Warn(msg string, meta map[string]string)  { l.log("warn", msg, meta) }
func (l *Logger) Error(msg string, meta map[string]string) { l.log("error", msg, meta) }

// Formatted variants
func (l *Logger) Infof(format string, meta map[string]string, args ...any) {
	l.Info(fmt.Sprintf(format, args...), meta)
}
func (l *Logger) Warnf(format string, meta map[string]string, args ...any) {
	l.Warn(fmt.Sprintf(format, args...), meta)
}
func (l *Logger) Errorf(format string, meta map[string]string, args ...any) {
	l.Error(fmt.Sprintf(format, args...), meta)
}
