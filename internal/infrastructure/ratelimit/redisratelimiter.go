package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRateLimiter counts hits in a fixed window shared by every server
// instance. The counter key embeds the window start so it expires on its own.
type RedisRateLimiter struct {
	client *redis.Client
	config RateLimitConfig
	now    func() time.Time
}

func NewRedisRateLimiter(client *redis.Client, config RateLimitConfig) *RedisRateLimiter {
	return &RedisRateLimiter{
		client: client,
		config: config,
		now:    time.Now,
	}
}

func (l *RedisRateLimiter) Allow(ctx context.Context, key string) (Result, error) {
	if l.config.Limit <= 0 || l.config.Window <= 0 {
		return Result{Allowed: true}, nil
	}

	now := l.now()
	windowStart := now.Truncate(l.config.Window)
	redisKey := l.getKey(key, windowStart)

	var incr *redis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, redisKey)
		pipe.Expire(ctx, redisKey, l.config.Window+time.Second)
		return nil
	})
	if err != nil {
		return Result{}, fmt.Errorf("failed to execute pipeline: %w", err)
	}

	count := incr.Val()
	limit := int64(l.config.Limit)
	if count > limit {
		return Result{
			Allowed:    false,
			Remaining:  0,
			RetryAfter: windowStart.Add(l.config.Window).Sub(now),
		}, nil
	}
	return Result{Allowed: true, Remaining: limit - count}, nil
}

func (l *RedisRateLimiter) Reset(ctx context.Context, key string) error {
	pattern := fmt.Sprintf("ratelimit:%s:*", key)

	iter := l.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := l.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete key %s: %w", iter.Val(), err)
		}
	}

	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan keys: %w", err)
	}
	return nil
}

func (l *RedisRateLimiter) getKey(identifier string, windowStart time.Time) string {
	return fmt.Sprintf("ratelimit:%s:%d", identifier, windowStart.Unix())
}
