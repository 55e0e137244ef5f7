package database

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"cuthours/config"
)

// ConnectRedis dials Redis and verifies the connection. Redis backs the
// login lockout, the contact-form rate limiter and the live inbox feed; the
// app runs without it, those features just switch off.
func ConnectRedis(cfg *config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisURL,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect redis at %s: %w", cfg.RedisURL, err)
	}
	return rdb, nil
}
