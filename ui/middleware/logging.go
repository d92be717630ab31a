package middleware

import (
	"time"

	"gocsvlab/internal"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs one line per request; failures log at Warn
func RequestLogger(logger *internal.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		elapsed := float64(time.Since(start).Microseconds()) / 1000
		if status >= 400 {
			logger.Warn("[Server] %s %s -> %d (%.2fms)", c.Request.Method, c.Request.URL.Path, status, elapsed)
			return
		}
		logger.Debug("[Server] %s %s -> %d (%.2fms)", c.Request.Method, c.Request.URL.Path, status, elapsed)
	}
}
