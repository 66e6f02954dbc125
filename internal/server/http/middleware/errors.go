package middleware

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/customersystem/internal/logger"
	"github.com/polkiloo/customersystem/internal/server/http/dto"
)

const genericFailureMessage = "Something went wrong!"

// ErrorHandler renders errors that handlers attached with c.Error but did not answer.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		resp := dto.Failure(genericFailureMessage)
		resp.Error = c.Errors.Last().Error()
		c.JSON(http.StatusInternalServerError, resp)
	}
}

// Recovery turns panics into the generic 500 envelope and logs them with the stack.
func Recovery(log *slog.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		err := fmt.Errorf("panic: %v", recovered)
		log.LogAttrs(c.Request.Context(), slog.LevelError, "panic recovered",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("request_id", GetRequestID(c)),
			logger.Err(err),
			slog.String("stack", string(debug.Stack())),
		)
		_ = c.Error(err)
		resp := dto.Failure(genericFailureMessage)
		resp.Error = err.Error()
		c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
	})
}

// NotFound answers unknown routes.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, dto.Failure("route not found"))
}
