package middlewares

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"marketplace/pkg/apperr"

	"github.com/gin-gonic/gin"
)

const internalMessage = "Internal Server Error"

// ErrorHandler writes the last error recorded with c.Error as {"error": msg}.
// In debug mode it also reports the request and the underlying cause.
func ErrorHandler(debug bool, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		status, msg := http.StatusInternalServerError, internalMessage
		if e, ok := apperr.As(err); ok {
			status, msg = e.Status, e.Message
		} else if errors.Is(err, context.DeadlineExceeded) {
			status, msg = http.StatusServiceUnavailable, "Request timed out"
		}

		if status >= 500 {
			logger.Error("request failed",
				slog.String("request_id", GetRequestID(c)),
				slog.String("path", c.Request.URL.Path),
				slog.Any("error", err))
		}

		body := gin.H{"error": msg}
		if debug {
			body["request"] = gin.H{
				"id":     GetRequestID(c),
				"method": c.Request.Method,
				"path":   c.Request.URL.Path,
			}
			body["detail"] = err.Error()
		}
		c.JSON(status, body)
	}
}
