package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/customersystem/internal/logger"
)

// RequestLogger logs information about incoming requests using slog.
// Server errors and errors attached with c.Error are logged at error level.
func RequestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		attrs := []slog.Attr{
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", status),
			slog.Duration("latency", latency),
		}
		if id := GetRequestID(c); id != "" {
			attrs = append(attrs, slog.String("request_id", id))
		}

		level := slog.LevelInfo
		if len(c.Errors) > 0 {
			attrs = append(attrs, logger.Err(c.Errors.Last()))
			level = slog.LevelError
		}
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}

		log.LogAttrs(c.Request.Context(), level, "http request", attrs...)
	}
}
