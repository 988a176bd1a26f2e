package middleware

import (
	"strconv"

	"casino_webapp/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics считает запросы по пути и коду ответа
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.HTTPRequests.WithLabelValues(path, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
