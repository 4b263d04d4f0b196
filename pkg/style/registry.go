package style

import (
	"sort"

	"github.com/citemill/citemill/pkg/errors"
)

// Registry maps style identifiers to styles. It is an explicit value
// constructed at process start and threaded through calls; there is no
// ambient global. Populate it once, then treat it as read-only:
// registering while a rendering pass is active is unsupported.
type Registry struct {
	styles map[string]*Style
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{styles: make(map[string]*Style)}
}

// Register adds a style under its Name. Registering an identifier that
// already exists overwrites the previous registration; last registration
// wins. This is deliberate: it lets callers shadow a built-in style with
// a customized variant.
func (r *Registry) Register(s *Style) {
	r.styles[s.Name] = s
}

// Lookup resolves a style identifier. Unknown identifiers fail with an
// UnknownStyleError listing the currently registered identifiers.
func (r *Registry) Lookup(name string) (*Style, error) {
	if s, ok := r.styles[name]; ok {
		return s, nil
	}
	return nil, &errors.UnknownStyleError{Style: name, Known: r.Names()}
}

// Names returns the registered style identifiers, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.styles))
	for name := range r.styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
