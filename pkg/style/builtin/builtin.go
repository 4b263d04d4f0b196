// Package builtin assembles the registry of bundled citation styles.
package builtin

import (
	"github.com/citemill/citemill/pkg/style"
	"github.com/citemill/citemill/pkg/style/apa"
	"github.com/citemill/citemill/pkg/style/ieee"
	"github.com/citemill/citemill/pkg/style/nature"
)

// Registry returns a fresh registry holding every bundled style.
// Callers may register additional styles on top without affecting other
// registries.
func Registry() *style.Registry {
	reg := style.NewRegistry()
	reg.Register(apa.New())
	reg.Register(ieee.New())
	reg.Register(nature.New())
	return reg
}
