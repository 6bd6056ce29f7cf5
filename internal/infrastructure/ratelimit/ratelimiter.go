package ratelimit

import (
	"context"
	"time"
)

// Limiter counts hits per key in fixed windows.
type Limiter interface {
	// Allow records one hit for key and reports whether it is within limit.
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
	Reset(ctx context.Context, key string) error
}

// NopLimiter allows everything. Used when redis is disabled.
type NopLimiter struct{}

func (NopLimiter) Allow(context.Context, string, int, time.Duration) (bool, error) {
	return true, nil
}

func (NopLimiter) Reset(context.Context, string) error {
	return nil
}
