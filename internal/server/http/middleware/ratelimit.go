package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/polkiloo/customersystem/internal/server/http/dto"
)

// RateLimit rejects requests above the limiter's rate with 429.
// A nil limiter disables limiting.
func RateLimit(limiter *rate.Limiter, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil || limiter.Allow() {
			c.Next()
			return
		}
		logger.Warn("too many requests",
			slog.String("path", c.Request.URL.Path),
			slog.String("request_id", GetRequestID(c)),
		)
		c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.Failure("too many requests"))
	}
}
