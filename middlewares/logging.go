// structured request logging

package middlewares

import (
	"time"

	"github.com/cristianCeamatuAssist/assist-cursos-play-and-learn/global"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RequestID reuses the caller's X-Request-ID or mints one, echoes it back, and attaches
// a child logger carrying it to the request context (zerolog.Ctx picks it up).
func RequestID(base zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(global.HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(global.CtxRequestIDKey, id)
		c.Header(global.HeaderRequestID, id)

		l := base.With().Str("request_id", id).Logger()
		c.Request = c.Request.WithContext(l.WithContext(c.Request.Context()))
		c.Next()
	}
}

// RequestLogger logs method, path, status and duration for each request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path // keep the path; handlers may rewrite it
		c.Next()

		status := c.Writer.Status()
		l := zerolog.Ctx(c.Request.Context())
		ev := l.Info()
		switch {
		case status >= 500:
			ev = l.Error()
		case status >= 400:
			ev = l.Warn()
		}
		ev.Str("method", c.Request.Method).
			Str("path", path).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Msg("request")
	}
}
