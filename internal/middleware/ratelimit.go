package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/transfeera/receiver-api/internal/observability"
	"go.uber.org/zap"
)

// WindowCounter is the subset of Redis commands the rate limiter needs
type WindowCounter interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	TTL(ctx context.Context, key string) *redis.DurationCmd
}

// RateLimit limits write requests per client IP using a fixed window counter.
// The window starts with the first write and lasts until the key expires.
// Read requests pass through untouched. When the counter is unavailable the
// request is let through.
func RateLimit(counter WindowCounter, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if counter == nil || limit <= 0 || isReadMethod(c.Request.Method) {
			c.Next()
			return
		}

		if window < time.Second {
			window = time.Second
		}
		key := "ratelimit:" + c.ClientIP()

		ctx := c.Request.Context()
		count, err := counter.Incr(ctx, key).Result()
		if err != nil {
			observability.Logger().Warn("rate limiter unavailable, allowing request",
				zap.String("key", key),
				zap.Error(err),
			)
			c.Next()
			return
		}
		if count == 1 {
			if err := counter.Expire(ctx, key, window).Err(); err != nil {
				observability.Logger().Warn("failed to set rate limit window expiration",
					zap.String("key", key),
					zap.Error(err),
				)
			}
		}

		remaining := int64(limit) - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > int64(limit) {
			c.Header("Retry-After", strconv.FormatInt(retryAfter(ctx, counter, key, window), 10))
			observability.RateLimitedRequests.Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":    "Too Many Requests",
				"messages": []string{"rate limit exceeded, try again later"},
			})
			return
		}

		c.Next()
	}
}

// retryAfter reads the seconds left in the window from the key's TTL.
// A key found without expiry is given one.
func retryAfter(ctx context.Context, counter WindowCounter, key string, window time.Duration) int64 {
	ttl, err := counter.TTL(ctx, key).Result()
	if err != nil || ttl < 0 {
		if err == nil {
			counter.Expire(ctx, key, window)
		}
		ttl = window
	}
	seconds := int64((ttl + time.Second - 1) / time.Second)
	if seconds < 1 {
		seconds = 1
	}
	return seconds
}

func isReadMethod(method string) bool {
	return method == http.MethodGet || method == http.MethodHead || method == http.MethodOptions
}
