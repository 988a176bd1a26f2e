package middleware

import (
	"fmt"
	"net/http"
	"time"

	"casino_webapp/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

var rateLimiter *redis.Client

// InitRedisRateLimiter подключает лимитер к общему Redis
func InitRedisRateLimiter(rdb *redis.Client) {
	rateLimiter = rdb
}

// RateLimit ограничивает число запросов на пользователя (или IP до
// авторизации) в скользящем окне. При недоступном Redis пропускает
// запросы: лимитер не должен ронять игру.
func RateLimit(limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rateLimiter == nil {
			c.Next()
			return
		}

		who := c.ClientIP()
		if v, ok := c.Get("user_id"); ok {
			if id, ok := v.(int64); ok {
				who = fmt.Sprintf("u%d", id)
			}
		}
		key := fmt.Sprintf("rl:%s:%s", c.FullPath(), who)

		ctx := c.Request.Context()
		count, err := rateLimiter.Incr(ctx, key).Result()
		if err != nil {
			logger.Warn("лимитер недоступен", "error", err)
			c.Next()
			return
		}
		if count == 1 {
			_ = rateLimiter.Expire(ctx, key, window).Err()
		}

		if count > int64(limit) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}
