package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRateLimiter is a fixed-window counter shared by every instance that
// talks to the same Redis.
type RedisRateLimiter struct {
	client redis.Cmdable
	config RateLimitConfig
	now    func() time.Time
}

func NewRedisRateLimiter(client redis.Cmdable, config RateLimitConfig) *RedisRateLimiter {
	return &RedisRateLimiter{
		client: client,
		config: config,
		now:    time.Now,
	}
}

func (l *RedisRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	if l.config.Requests <= 0 || l.config.Window <= 0 {
		return true, nil
	}

	redisKey := l.getKey(key, l.now())

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, l.config.Window+time.Second)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to execute pipeline: %w", err)
	}

	return incr.Val() <= int64(l.config.Requests), nil
}

func (l *RedisRateLimiter) Reset(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, l.getKey(key, l.now())).Err(); err != nil {
		return fmt.Errorf("failed to reset rate limit for %s: %w", key, err)
	}
	return nil
}

func (l *RedisRateLimiter) getKey(identifier string, now time.Time) string {
	bucket := now.Unix() / int64(l.config.Window.Seconds())
	return fmt.Sprintf("ratelimit:%s:%d", identifier, bucket)
}

var _ RateLimiter = (*RedisRateLimiter)(nil)
