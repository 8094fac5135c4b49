package middleware

import (
	"time"

	"github.com/SscSPs/accounts_backoffice/internal/platform/metrics"
	"github.com/gin-gonic/gin"
)

// Metrics records request count and latency per route template.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()
		m.ObserveHTTP(c.FullPath(), c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}
