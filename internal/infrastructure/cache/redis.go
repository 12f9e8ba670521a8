package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisSuggestionCache implements port.SuggestionCache on Redis. Entries
// expire after a configurable TTL; the cached values are derived and cheap
// to recompute, so every failure path degrades to a miss.
type RedisSuggestionCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisSuggestionCache wraps an existing Redis client.
func NewRedisSuggestionCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *RedisSuggestionCache {
	return &RedisSuggestionCache{client: client, ttl: ttl, logger: logger}
}

// Get returns the cached value for key, reporting a miss on any error.
func (c *RedisSuggestionCache) Get(ctx context.Context, key string) (string, bool) {
	val, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false
	}
	if err != nil {
		c.logger.WarnContext(ctx, "suggestion cache read failed", "key", key, "error", err)
		return "", false
	}
	return val, true
}

// Set stores the value under key with the cache TTL.
func (c *RedisSuggestionCache) Set(ctx context.Context, key, value string) error {
	return c.client.Set(ctx, key, value, c.ttl).Err()
}
