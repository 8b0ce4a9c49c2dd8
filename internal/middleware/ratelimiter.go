package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fitboard/internal/infrastructure/kv"
)

// RateLimiter is a fixed-window per-IP limiter on the key-value backend.
// When the in-memory shim backs it, limits are per process only.
type RateLimiter struct {
	store kv.Store
}

func NewRateLimiter(store kv.Store) *RateLimiter {
	return &RateLimiter{store: store}
}

func (rl *RateLimiter) Limit(keySuffix string, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		key := fmt.Sprintf("rate_limit:%s:%s", keySuffix, ip)

		count, err := rl.store.Incr(c, key)
		if err != nil {
			// Limiting is advisory; never block traffic on a limiter error.
			c.Next()
			return
		}

		if count == 1 {
			rl.store.Expire(c, key, window)
		}

		if count > int64(limit) {
			ttl, _ := rl.store.TTL(c, key)

			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "Too many requests",
				"retry_after": fmt.Sprintf("%.0f seconds", ttl.Seconds()),
			})
			return
		}
		c.Next()
	}
}
