package services

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter is a fixed-window counter in Redis, used to keep anonymous
// visitors from flooding the contact form. With a nil client every request
// is allowed.
type RateLimiter struct {
	rdb    *redis.Client
	prefix string
	limit  int
	window time.Duration
}

func NewRateLimiter(rdb *redis.Client, prefix string, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{rdb: rdb, prefix: prefix, limit: limit, window: window}
}

// Allow counts one hit for key and reports whether it is still within the
// window limit. Redis errors fail open: a broken limiter must not take the
// contact form down with it.
func (rl *RateLimiter) Allow(ctx context.Context, key string) bool {
	if rl == nil || rl.rdb == nil {
		return true
	}
	fullKey := rl.prefix + key

	count, err := rl.rdb.Incr(ctx, fullKey).Result()
	if err != nil {
		log.Printf("[RateLimit] Redis Incr failed for %s: %v", key, err)
		return true
	}
	if count == 1 {
		if err := rl.rdb.Expire(ctx, fullKey, rl.window).Err(); err != nil {
			log.Printf("[RateLimit] Redis Expire failed for %s: %v", key, err)
		}
	}
	return count <= int64(rl.limit)
}
