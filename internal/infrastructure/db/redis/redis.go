package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// The throttle issues one round trip per login attempt, so a broken
// connection should surface here at startup, not on the first failed login.
const pingTimeout = 5 * time.Second

// Config holds the connection settings for the login-throttle store.
type Config struct {
	Addr     string
	Password string
	DB       int
}

// Connect opens a client against the throttle store and verifies it answers.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
