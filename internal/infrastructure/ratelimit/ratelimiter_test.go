package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	client.FlushDB(ctx)

	t.Cleanup(func() {
		client.FlushDB(ctx)
		client.Close()
	})

	return client
}

func exhaust(t *testing.T, limiter RateLimiter, key string, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		res, err := limiter.Allow(context.Background(), key)
		require.NoError(t, err)
		assert.True(t, res.Allowed, "request %d should be allowed", i+1)
	}
}

func TestMemoryRateLimiter_Allow(t *testing.T) {
	limiter := NewMemoryRateLimiter(RateLimitConfig{Limit: 3, Window: time.Hour})

	exhaust(t, limiter, "10.0.0.1", 3)

	res, err := limiter.Allow(context.Background(), "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, res.Allowed, "4th request should be denied")
	assert.Greater(t, res.RetryAfter, time.Duration(0))

	res, err = limiter.Allow(context.Background(), "10.0.0.2")
	require.NoError(t, err)
	assert.True(t, res.Allowed, "other keys are not affected")
}

func TestMemoryRateLimiter_Reset(t *testing.T) {
	limiter := NewMemoryRateLimiter(RateLimitConfig{Limit: 1, Window: time.Hour})
	exhaust(t, limiter, "k", 1)

	require.NoError(t, limiter.Reset(context.Background(), "k"))
	exhaust(t, limiter, "k", 1)
}

func TestRateLimiter_DisabledWhenUnconfigured(t *testing.T) {
	for _, limiter := range []RateLimiter{
		NewMemoryRateLimiter(RateLimitConfig{}),
		NewRedisRateLimiter(nil, RateLimitConfig{}),
	} {
		res, err := limiter.Allow(context.Background(), "k")
		require.NoError(t, err)
		assert.True(t, res.Allowed)
	}
}

func TestRedisRateLimiter_FixedWindow(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client, RateLimitConfig{Limit: 5, Window: time.Minute})
	fixed := time.Date(2024, 1, 1, 12, 0, 10, 0, time.UTC)
	limiter.now = func() time.Time { return fixed }

	exhaust(t, limiter, "test-key", 5)

	res, err := limiter.Allow(context.Background(), "test-key")
	require.NoError(t, err)
	assert.False(t, res.Allowed, "6th request should be denied")
	assert.Equal(t, 50*time.Second, res.RetryAfter)

	limiter.now = func() time.Time { return fixed.Add(time.Minute) }
	exhaust(t, limiter, "test-key", 1)
}

func TestRedisRateLimiter_Reset(t *testing.T) {
	client := setupTestRedis(t)
	limiter := NewRedisRateLimiter(client, RateLimitConfig{Limit: 1, Window: time.Minute})

	exhaust(t, limiter, "reset-key", 1)
	require.NoError(t, limiter.Reset(context.Background(), "reset-key"))
	exhaust(t, limiter, "reset-key", 1)
}
