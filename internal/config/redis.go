package config

// Redis backs the public-read response cache and the write-path rate
// limiter. Connection parameters come from environment variables; when
// the server cannot be reached at startup the constructor returns nil
// and both features are disabled rather than failing the process.

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient builds a Redis client from REDIS_ADDR (default
// localhost:6379), REDIS_PASSWORD and REDIS_DB. It pings the server with
// a short timeout and returns nil when the ping fails.
func NewRedisClient() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     envStr("REDIS_ADDR", "localhost:6379"),
		Password: envStr("REDIS_PASSWORD", ""),
		DB:       envInt("REDIS_DB", 0),
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil
	}
	return client
}
