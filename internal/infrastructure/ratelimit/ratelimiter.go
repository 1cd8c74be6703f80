package ratelimit

import (
	"context"
	"time"
)

// RateLimiter counts hits per key inside a window.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
	Reset(ctx context.Context, key string) error
}

type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}
