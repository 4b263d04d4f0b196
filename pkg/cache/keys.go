package cache

// Keyer derives cache keys for the value classes the engine caches.
// Implementations must be deterministic: the same inputs always yield
// the same key.
type Keyer interface {
	// RenderKey generates a key for a rendered bibliography artifact.
	// bibHash is a content hash of the source bibliography.
	RenderKey(bibHash string, opts RenderKeyOpts) string
}

// RenderKeyOpts are the options that affect rendered output. Every
// field participates in the key, so changing any of them produces a
// fresh cache entry.
type RenderKeyOpts struct {
	Style  string `json:"style"`
	Format string `json:"format"`

	// CitedOnly is set when the output was restricted to cited keys;
	// Cited carries those keys in request order.
	CitedOnly bool     `json:"cited_only,omitempty"`
	Cited     []string `json:"cited,omitempty"`
}

// DefaultKeyer is the standard key derivation scheme.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// RenderKey generates a key for a rendered bibliography artifact.
func (k *DefaultKeyer) RenderKey(bibHash string, opts RenderKeyOpts) string {
	return hashKey("render", bibHash, opts)
}

// ScopedKeyer wraps a Keyer with a prefix, giving callers separate
// cache namespaces over shared storage.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// RenderKey generates a prefixed key for a rendered bibliography artifact.
func (k *ScopedKeyer) RenderKey(bibHash string, opts RenderKeyOpts) string {
	return k.prefix + k.inner.RenderKey(bibHash, opts)
}
