// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register
// hooks at startup to receive events about pipeline stages and cache
// operations:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    observability.SetCacheHooks(&myCacheHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnSortStart(ctx, style, entryCount)
//	// ... sort entries ...
//	observability.Pipeline().OnSortComplete(ctx, style, entryCount, duration, err)
//
// Hooks are registered by main, never by libraries, which keeps the
// core packages free of observability framework imports.
package observability

import (
	"context"
	"sync"
	"time"
)

// PipelineHooks receives events from the formatting pipeline.
type PipelineHooks interface {
	// Sort events
	OnSortStart(ctx context.Context, style string, entryCount int)
	OnSortComplete(ctx context.Context, style string, entryCount int, duration time.Duration, err error)

	// Label events
	OnLabelComplete(ctx context.Context, style string, labelCount int, duration time.Duration)

	// Render events
	OnRenderStart(ctx context.Context, style string, entryCount int)
	OnRenderComplete(ctx context.Context, style string, rendered, failed int, duration time.Duration)
}

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, keyType string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, keyType string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnSortStart(context.Context, string, int) {}
func (NoopPipelineHooks) OnSortComplete(context.Context, string, int, time.Duration, error) {
}
func (NoopPipelineHooks) OnLabelComplete(context.Context, string, int, time.Duration)  {}
func (NoopPipelineHooks) OnRenderStart(context.Context, string, int)                   {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, string, int, int, time.Duration) {
}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	cacheHooks    CacheHooks    = NoopCacheHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline operations.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	cacheHooks = NoopCacheHooks{}
}
