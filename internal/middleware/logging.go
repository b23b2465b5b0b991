package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestObserver records API request metrics.
type RequestObserver interface {
	ObserveAPIRequest(route, method string, status int, duration time.Duration)
}

// RequestLoggingMiddleware logs each completed request and, when observer is
// set, records it under the matched route template.
func RequestLoggingMiddleware(observer RequestObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		c.Next()

		duration := time.Since(startTime)
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		if observer != nil {
			observer.ObserveAPIRequest(route, c.Request.Method, c.Writer.Status(), duration)
		}

		log := LogWithCorrelationID(c.Request.Context())
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", duration),
			zap.String("client_ip", c.ClientIP()),
			zap.Int("body_size", c.Writer.Size()),
		}
		if len(c.Errors) > 0 {
			log.Error("Request completed with errors", append(fields, zap.String("errors", c.Errors.String()))...)
			return
		}
		log.Info("Request completed", fields...)
	}
}
