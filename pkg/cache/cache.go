// Package cache provides caching for rendered bibliographies.
//
// The Cache interface is storage-agnostic; the file-backed
// implementation covers CLI usage, and NullCache disables caching
// entirely. Keys are derived from content hashes, so a changed
// bibliography or changed render options never serves stale output.
package cache

import (
	"context"
	"time"
)

// TTLs per cached value class. Rendered output is cheap to recompute,
// so entries expire rather than being invalidated explicitly.
const (
	// TTLRender is how long rendered bibliography artifacts are kept.
	TTLRender = 7 * 24 * time.Hour
)

// Key type names reported to cache observability hooks.
const (
	KeyTypeRender = "render"
)

// Cache stores opaque byte values under string keys with a TTL.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means the entry never expires; a
	// negative ttl stores it already expired.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}
