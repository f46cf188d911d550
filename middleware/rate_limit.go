package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"yultimate/errors"
	"yultimate/response"
	"yultimate/services/logger"
)

// RateLimiter allows limit requests per client IP and window, counted in Redis.
// A nil client disables limiting.
func RateLimiter(rdb *redis.Client, prefix string, limit int, window time.Duration, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil || limit <= 0 {
			c.Next()
			return
		}

		key := fmt.Sprintf("ratelimit:%s:%s", prefix, c.ClientIP())
		ctx := c.Request.Context()

		var incr *redis.IntCmd
		var ttl *redis.DurationCmd
		_, err := rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
			incr = p.Incr(ctx, key)
			ttl = p.TTL(ctx, key)
			return nil
		})
		if err != nil {
			log.Warn("rate limiter unavailable: %v", err)
			c.Next()
			return
		}
		count := incr.Val()

		// A counter without expiry would lock the client out for good.
		if ttl.Val() < 0 {
			if err := rdb.Expire(ctx, key, window).Err(); err != nil {
				log.Warn("rate limiter expire failed: %v", err)
				rdb.Del(ctx, key)
			}
		}

		if count > int64(limit) {
			retry := ttl.Val()
			if retry <= 0 {
				retry = window
			}
			c.Header("Retry-After", fmt.Sprint(int(retry.Seconds())))
			response.Error(c, http.StatusTooManyRequests, errors.ErrCodeRateLimited, "Too many login attempts, try again later")
			return
		}
		c.Next()
	}
}
