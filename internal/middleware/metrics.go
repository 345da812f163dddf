package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// Metrics counts requests by matched route and status code.
func (m Middleware) Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if m.metrics == nil {
			return
		}
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.metrics.HTTPRequestsTotal.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
