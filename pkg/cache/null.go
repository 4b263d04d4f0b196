package cache

import (
	"context"
	"time"

	"github.com/citemill/citemill/pkg/observability"
)

// NullCache discards everything: every Get misses and Set stores
// nothing. It backs --no-cache runs and keeps tests free of filesystem
// state, while still reporting misses to the cache hooks so a disabled
// cache is visible in observability.
type NullCache struct{}

// NewNullCache returns a cache that never stores.
func NewNullCache() Cache {
	return &NullCache{}
}

// Get misses for every key.
func (c *NullCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	observability.Cache().OnCacheMiss(ctx, KeyTypeRender)
	return nil, false, nil
}

// Set discards the value.
func (c *NullCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return nil
}

// Delete has nothing to remove.
func (c *NullCache) Delete(ctx context.Context, key string) error {
	return nil
}

// Close holds no resources.
func (c *NullCache) Close() error {
	return nil
}

var _ Cache = (*NullCache)(nil)
