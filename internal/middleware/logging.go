package middleware

import (
	"time"

	"github.com/m1z23r/drift/pkg/drift"
	"go.uber.org/zap"
)

// RequestLogger logs every request with its method, path and wall time.
func RequestLogger(logger *zap.Logger) drift.HandlerFunc {
	return func(c *drift.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Duration("duration", duration),
			zap.String("remote_addr", c.Request.RemoteAddr),
		}
		if subject := GetSubjectID(c); subject != "" {
			fields = append(fields, zap.String("subject", subject))
		}

		logger.Info("http request", fields...)
	}
}
