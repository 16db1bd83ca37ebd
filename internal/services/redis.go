package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisCache caches rendered page data in Redis under a common key prefix
type RedisCache struct {
	client *redis.Client
	prefix string
	log    *zap.Logger
}

// NewRedisCache connects to redisURL and verifies the connection
func NewRedisCache(ctx context.Context, redisURL, prefix string, log *zap.Logger) (*RedisCache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	log.Info("Redis connection established", zap.String("addr", opt.Addr))
	return NewRedisCacheFromClient(client, prefix, log), nil
}

// NewRedisCacheFromClient wraps an existing client
func NewRedisCacheFromClient(client *redis.Client, prefix string, log *zap.Logger) *RedisCache {
	return &RedisCache{client: client, prefix: prefix, log: log}
}

func (c *RedisCache) key(k string) string {
	return c.prefix + k
}

// Set stores a JSON encoded value with expiration
func (c *RedisCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(key), data, expiration).Err()
}

// Get decodes a cached value into dest. Misses return redis.Nil.
func (c *RedisCache) Get(ctx context.Context, key string, dest interface{}) error {
	data, err := c.client.Get(ctx, c.key(key)).Bytes()
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

// Delete removes keys from the cache
func (c *RedisCache) Delete(ctx context.Context, keys ...string) error {
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = c.key(k)
	}
	return c.client.Del(ctx, full...).Err()
}

// Close closes the Redis connection
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// GetOrSet returns the cached value for key, or calls fn and caches its
// result. A nil cache always calls fn.
func GetOrSet[T any](c *RedisCache, ctx context.Context, key string, expiration time.Duration, fn func() (T, error)) (T, error) {
	var result T
	if c == nil {
		return fn()
	}

	err := c.Get(ctx, key, &result)
	if err == nil {
		return result, nil
	}
	if err != redis.Nil {
		c.log.Warn("cache read failed", zap.String("key", key), zap.Error(err))
	}

	result, err = fn()
	if err != nil {
		return result, err
	}

	if err := c.Set(ctx, key, result, expiration); err != nil {
		c.log.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
	return result, nil
}

// Invalidate removes keys, ignoring a nil cache
func Invalidate(c *RedisCache, ctx context.Context, keys ...string) {
	if c == nil {
		return
	}
	if err := c.Delete(ctx, keys...); err != nil {
		c.log.Warn("cache invalidation failed", zap.Strings("keys", keys), zap.Error(err))
	}
}
