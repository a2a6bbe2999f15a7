package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const listingKey = "casting:listings"

// ListingCache stores the serialized public casting list under a single
// key with a short TTL. Writes to any casting call invalidate it.
type ListingCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewListingCache creates a ListingCache wrapping the given Redis client.
func NewListingCache(client *redis.Client, ttl time.Duration) *ListingCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &ListingCache{client: client, ttl: ttl}
}

// Get returns the cached payload, or (nil, nil) on a miss.
func (c *ListingCache) Get(ctx context.Context) ([]byte, error) {
	payload, err := c.client.Get(ctx, listingKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("listing cache get: %w", err)
	}
	return payload, nil
}

// Set stores payload until the TTL elapses or a write invalidates it.
func (c *ListingCache) Set(ctx context.Context, payload []byte) error {
	return c.client.Set(ctx, listingKey, payload, c.ttl).Err()
}

// Invalidate drops the cached listing.
func (c *ListingCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, listingKey).Err()
}
