package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mbaxter/adforge/internal/types"
)

// DefaultTTL is the expiry applied to cached variant sets.
const DefaultTTL = 24 * time.Hour

const redisKeyPrefix = "adforge:cache:"

// Redis is a Redis-backed cache shared across workers.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis creates a Redis cache on client. A non-positive ttl falls back
// to DefaultTTL.
func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Redis{client: client, ttl: ttl}
}

// Get returns the cached variants for key.
func (r *Redis) Get(ctx context.Context, key string) ([]types.GeneratedVariant, bool, error) {
	raw, err := r.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache read failed: %w", err)
	}

	var ads []types.GeneratedVariant
	if err := json.Unmarshal(raw, &ads); err != nil {
		return nil, false, fmt.Errorf("cache entry corrupt: %w", err)
	}
	return ads, true, nil
}

// Put stores the variants under key with the configured TTL.
func (r *Redis) Put(ctx context.Context, key string, ads []types.GeneratedVariant) error {
	raw, err := json.Marshal(ads)
	if err != nil {
		return fmt.Errorf("cache encode failed: %w", err)
	}
	if err := r.client.Set(ctx, redisKeyPrefix+key, raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("cache write failed: %w", err)
	}
	return nil
}
