package store

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCounters implements Counters on top of a Redis client. This is the
// production backend: counters live in a single shared Redis so every
// instance of the API sees the same values.
type RedisCounters struct {
	client redis.UniversalClient
}

// NewRedisCounters creates a Redis-backed counter store.
func NewRedisCounters(client redis.UniversalClient) (*RedisCounters, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	return &RedisCounters{client: client}, nil
}

// NewRedisClient dials Redis from a REDIS_URL style connection string.
func NewRedisClient(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	return redis.NewClient(opts), nil
}

func (s *RedisCounters) Get(ctx context.Context, key string) (int64, error) {
	val, err := s.client.Get(ctx, key).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return val, nil
}

// IncrBy runs INCRBY and EXPIRE in one MULTI/EXEC round trip so the counter
// bump and its retention window land together.
func (s *RedisCounters) IncrBy(ctx context.Context, key string, n int64, ttl time.Duration) (int64, error) {
	pipe := s.client.TxPipeline()
	incr := pipe.IncrBy(ctx, key, n)
	if ttl > 0 {
		pipe.Expire(ctx, key, ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

func (s *RedisCounters) Incr(ctx context.Context, key string) (int64, error) {
	return s.client.Incr(ctx, key).Result()
}
