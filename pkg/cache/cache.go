// Package cache provides report caching keyed by manifest content.
//
// Analysis is deterministic for a given manifest, so a cached report stays
// valid until the manifest changes. Keys therefore hash the manifest bytes;
// a project edit that touches the manifest produces a new key and the stale
// entry simply expires unused.
package cache

import (
	"context"
	"time"
)

// Cache is the storage interface for serialized reports.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}
