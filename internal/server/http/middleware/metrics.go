package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/gambling/internal/metrics"
)

const unmatchedRoute = "unmatched"

// HTTPMetrics records request counts and latencies per route.
func HTTPMetrics(m *metrics.HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = unmatchedRoute
		}
		m.Observe(path, c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}
