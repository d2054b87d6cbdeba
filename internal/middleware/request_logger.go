package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/agenda-pro/internal/domain/actor"
)

const HeaderRequestID = "X-Request-ID"

// RequestLogger gera (ou propaga) o trace id e registra cada requisição.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		traceID := c.GetHeader(HeaderRequestID)
		if traceID == "" || len(traceID) > 64 {
			traceID = uuid.NewString()
		}

		c.Header(HeaderRequestID, traceID)
		c.Request = c.Request.WithContext(actor.WithTraceID(c.Request.Context(), traceID))

		c.Next()

		status := c.Writer.Status()

		var ev *zerolog.Event
		switch {
		case status >= 500:
			ev = log.Error()
		case status >= 400:
			ev = log.Warn()
		default:
			ev = log.Info()
		}

		ev = ev.
			Str("trace_id", traceID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("ip", c.ClientIP())

		if a, ok := ActorFrom(c); ok {
			ev = ev.Uint("user_id", a.ID()).Str("role", actor.Role(a))
		}

		ev.Msg("request")
	}
}
