package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/spintowin/spinwheel-api/internal/metrics"
)

// Metrics records request counts and latencies per route. The route template
// is used as the path label so parameterized routes don't explode cardinality.
func Metrics() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		ctx.Next()

		path := ctx.FullPath()
		if path == "" {
			path = "unmatched"
		}

		metrics.HTTPRequestsTotal.WithLabelValues(
			ctx.Request.Method,
			path,
			strconv.Itoa(ctx.Writer.Status()),
		).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(
			ctx.Request.Method,
			path,
		).Observe(time.Since(start).Seconds())
	}
}
