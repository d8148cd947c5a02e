package limiter

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const keyPrefix = "login:fail:"

// RedisLimiter counts failures in redis so every API replica shares the window.
type RedisLimiter struct {
	client      redis.Cmdable
	maxAttempts int64
	window      time.Duration
}

func NewRedisLimiter(client redis.Cmdable, maxAttempts int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client:      client,
		maxAttempts: int64(maxAttempts),
		window:      window,
	}
}

// NewRedisClient parses url and checks connectivity.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	count, err := l.client.Get(ctx, keyPrefix+key).Int64()
	if err == redis.Nil {
		return true, 0, nil
	}
	if err != nil {
		return false, 0, err
	}
	if count < l.maxAttempts {
		return true, 0, nil
	}

	ttl, err := l.client.TTL(ctx, keyPrefix+key).Result()
	if err != nil {
		return false, 0, err
	}
	if ttl < 0 {
		ttl = l.window
	}
	return false, ttl, nil
}

func (l *RedisLimiter) Failure(ctx context.Context, key string) error {
	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, keyPrefix+key)
	if _, err := pipe.Exec(ctx); err != nil {
		return err
	}

	if incr.Val() == 1 {
		return l.client.Expire(ctx, keyPrefix+key, l.window).Err()
	}
	return nil
}

func (l *RedisLimiter) Success(ctx context.Context, key string) error {
	return l.client.Del(ctx, keyPrefix+key).Err()
}

var _ Limiter = (*RedisLimiter)(nil)
