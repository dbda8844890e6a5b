// Package ratelimit bounds requests per key over a fixed window.
package ratelimit

import (
	"context"
	"time"
)

type RateLimitConfig struct {
	Limit  int
	Window time.Duration
}

// Result describes one admission decision. RetryAfter is zero when the
// request was allowed.
type Result struct {
	Allowed    bool
	Remaining  int64
	RetryAfter time.Duration
}

type RateLimiter interface {
	Allow(ctx context.Context, key string) (Result, error)
	Reset(ctx context.Context, key string) error
}
