package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/survey-engine/metrics"
)

// Metrics đếm request theo route template (không theo URL thật để tránh nổ label).
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.HTTPRequests.
			WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).
			Inc()
	}
}
