package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// MemoryRateLimiter is the single-instance fallback used when Redis is
// disabled. Each key gets a token bucket refilled at Limit per Window.
type MemoryRateLimiter struct {
	config RateLimitConfig

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func NewMemoryRateLimiter(config RateLimitConfig) *MemoryRateLimiter {
	return &MemoryRateLimiter{
		config:   config,
		limiters: make(map[string]*rate.Limiter),
	}
}

func (l *MemoryRateLimiter) Allow(ctx context.Context, key string) (Result, error) {
	if l.config.Limit <= 0 || l.config.Window <= 0 {
		return Result{Allowed: true}, nil
	}

	limiter := l.limiterFor(key)
	now := time.Now()
	r := limiter.ReserveN(now, 1)
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		return Result{Allowed: false, RetryAfter: delay}, nil
	}

	remaining := int64(limiter.TokensAt(now))
	if remaining < 0 {
		remaining = 0
	}
	return Result{Allowed: true, Remaining: remaining}, nil
}

func (l *MemoryRateLimiter) Reset(ctx context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.limiters, key)
	return nil
}

func (l *MemoryRateLimiter) limiterFor(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, ok := l.limiters[key]
	if !ok {
		every := rate.Every(l.config.Window / time.Duration(l.config.Limit))
		limiter = rate.NewLimiter(every, l.config.Limit)
		l.limiters[key] = limiter
	}
	return limiter
}
