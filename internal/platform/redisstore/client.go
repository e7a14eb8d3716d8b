package redisstore

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// connectTimeout bounds the initial ping.
const connectTimeout = 5 * time.Second

// Connect opens a client for a redis:// or rediss:// URL and verifies the
// server answers a PING.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return client, nil
}

// Pinger is the subset of a client needed for health checks.
type Pinger interface {
	Ping(ctx context.Context) *redis.StatusCmd
}

// HealthCheck returns a probe that reports whether Redis answers a PING.
func HealthCheck(p Pinger) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		return p.Ping(ctx).Err()
	}
}
