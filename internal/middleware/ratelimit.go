package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/harutok/practiceshare/internal/app/models/dto"
	"github.com/harutok/practiceshare/internal/pkg/logger"
)

// RateLimiter is a fixed-window per-IP rate limiter backed by redis. With a
// nil client every limit is a no-op, so redis stays optional.
type RateLimiter struct {
	client *redis.Client
	window time.Duration
}

// NewRateLimiter creates a new RateLimiter
func NewRateLimiter(client *redis.Client, window time.Duration) *RateLimiter {
	return &RateLimiter{
		client: client,
		window: window,
	}
}

// Limit returns a middleware allowing at most limit requests per window per
// client IP. The scope keeps endpoint groups in separate buckets. When redis
// is unreachable the request is allowed; availability wins over strictness.
func (rl *RateLimiter) Limit(scope string, limit int) gin.HandlerFunc {
	if rl == nil || rl.client == nil {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		key := fmt.Sprintf("ratelimit:%s:%s", scope, c.ClientIP())

		pipe := rl.client.TxPipeline()
		incr := pipe.Incr(c.Request.Context(), key)
		pipe.ExpireNX(c.Request.Context(), key, rl.window)
		if _, err := pipe.Exec(c.Request.Context()); err != nil {
			logger.Warn().Err(err).Str("scope", scope).Msg("Rate limiter unavailable, allowing request")
			c.Next()
			return
		}

		if incr.Val() > int64(limit) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				dto.NewErrorResponse("Too many requests, please try again later"))
			return
		}

		c.Next()
	}
}
