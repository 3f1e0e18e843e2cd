package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ridloal/inventory-management/internal/platform/logger"
)

// AccessLog writes one line per request once the handler chain has finished.
func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		msg := "%s %s %d %s rid=%s"
		args := []interface{}{c.Request.Method, c.Request.URL.Path, status, time.Since(start), GetRequestID(c)}
		if status >= http.StatusInternalServerError {
			logger.Warn(msg, args...)
			return
		}
		logger.Info(msg, args...)
	}
}
