package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// ConfirmationCache implements ports.ConfirmationCache using Redis. It is a
// fast path only; the gateway_confirmations table stays authoritative, so a
// cache miss or flush never causes a double-apply.
type ConfirmationCache struct {
	client *goredis.Client
	prefix string
}

// NewConfirmationCache creates a new Redis-backed confirmation cache.
func NewConfirmationCache(client *goredis.Client) *ConfirmationCache {
	return &ConfirmationCache{
		client: client,
		prefix: "confirmation:",
	}
}

// Get retrieves a cached confirmation response by key.
// Returns nil, nil if the key does not exist.
func (c *ConfirmationCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis confirmation get: %w", err)
	}
	return val, nil
}

// Set stores a confirmation response with TTL.
func (c *ConfirmationCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := c.client.Set(ctx, c.prefix+key, value, ttl).Err()
	if err != nil {
		return fmt.Errorf("redis confirmation set: %w", err)
	}
	return nil
}
