package middleware

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"social-vault/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimitMiddleware counts requests per route and per client (viewer id,
// else IP) in a fixed window. Reads are cheap and the feed must stay up, so
// a redis failure lets the request through with a warning.
func RateLimitMiddleware(redisClient *redis.Client, limit int, window time.Duration, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := rateLimitKey(c)
		ctx := c.Request.Context()

		count, err := redisClient.Incr(ctx, key).Result()
		if err != nil {
			log.Warn("Rate limit check failed for %s: %v", key, err)
			c.Next()
			return
		}
		if count == 1 {
			if err := redisClient.Expire(ctx, key, window).Err(); err != nil {
				log.Warn("Failed to set rate limit window for %s: %v", key, err)
			}
		}

		remaining := int64(limit) - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > int64(limit) {
			retryAfter := window
			if ttl, err := redisClient.TTL(ctx, key).Result(); err == nil && ttl > 0 {
				retryAfter = ttl
			}
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded"})
			c.Abort()
			return
		}

		c.Next()
	}
}

func rateLimitKey(c *gin.Context) string {
	client := c.GetString(ContextUserID)
	if client == "" {
		client = c.ClientIP()
	}

	route := c.FullPath()
	if route == "" {
		route = c.Request.URL.Path
	}
	return fmt.Sprintf("rate_limit:%s:%s", route, client)
}
