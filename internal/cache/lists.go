// Package cache provides a small read-through cache for list endpoints
// backed by Redis. Failures degrade to a cache miss so the API keeps
// working when Redis is down.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	OwnersListKey = "owners:list"
	PetsListKey   = "pets:list"

	defaultTTL = 60 * time.Second
)

// ListCache caches JSON-encoded list responses.
type ListCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewListCache creates a ListCache. A nil client disables caching entirely.
func NewListCache(rdb *redis.Client) *ListCache {
	return &ListCache{rdb: rdb, ttl: defaultTTL}
}

// Get unmarshals the cached value for key into dest. It returns false on a
// miss or any Redis error.
func (c *ListCache) Get(ctx context.Context, key string, dest any) bool {
	if c == nil || c.rdb == nil {
		return false
	}
	payload, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("Cache get failed for %s: %v\n", key, err)
		}
		return false
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		log.Printf("Cache unmarshal failed for %s: %v\n", key, err)
		return false
	}
	return true
}

// Set stores value under key with the cache TTL. Errors are logged only.
func (c *ListCache) Set(ctx context.Context, key string, value any) {
	if c == nil || c.rdb == nil {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		log.Printf("Cache marshal failed for %s: %v\n", key, err)
		return
	}
	if err := c.rdb.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		log.Printf("Cache set failed for %s: %v\n", key, err)
	}
}

// Invalidate drops the given keys after a write.
func (c *ListCache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || c.rdb == nil || len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		log.Printf("Cache invalidation failed for %v: %v\n", keys, err)
	}
}
