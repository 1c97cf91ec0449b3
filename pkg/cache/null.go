package cache

import (
	"context"
	"time"
)

// NullCache is the stand-in used when caching is disabled or the cache
// directory is unavailable. Every read is a miss and writes are discarded,
// so analysis always recomputes.
type NullCache struct{}

// NewNullCache creates a cache that stores nothing.
func NewNullCache() *NullCache {
	return &NullCache{}
}

// Get always reports a miss.
func (c *NullCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set discards the value.
func (c *NullCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return nil
}

// Delete does nothing.
func (c *NullCache) Delete(ctx context.Context, key string) error {
	return nil
}

// Close does nothing.
func (c *NullCache) Close() error {
	return nil
}

// Ensure NullCache implements Cache.
var _ Cache = (*NullCache)(nil)
