// Package style defines the citation style abstraction: a style bundles
// an entry sort order, a label generator, and per-entry-type renderers.
//
// Styles are plain values assembled from three function slots, so adding
// a style (or a sorting strategy) never touches the engine core. The
// built-in styles live in the apa, ieee, and nature subpackages and are
// collected by the builtin subpackage.
package style

import (
	"iter"

	"github.com/citemill/citemill/pkg/bib"
	"github.com/citemill/citemill/pkg/errors"
	"github.com/citemill/citemill/pkg/richtext"
)

// Label is the short in-text citation marker for one entry, e.g. "[3]"
// or "Smith, 2024". Superscript marks presentation intent; the actual
// glyph rendering is deferred to the output target.
type Label struct {
	Text        string
	Superscript bool
}

// String returns the label text.
func (l Label) String() string { return l.Text }

// SortFunc orders entries for a style. Implementations must not mutate
// the input slice and must be stable: ties keep original input order.
type SortFunc func(entries []*bib.Entry) []*bib.Entry

// LabelFunc produces one label per entry of the already-sorted sequence,
// lazily. Recomputing over the same sequence yields identical labels.
type LabelFunc func(ordered []*bib.Entry) iter.Seq[Label]

// RenderFunc formats one entry as rich text.
type RenderFunc func(e *bib.Entry) (richtext.Node, error)

// Style is a named bundle of sorting, labeling, and rendering rules.
type Style struct {
	Name        string
	Description string
	Sort        SortFunc
	Labels      LabelFunc
	Renderers   map[bib.EntryType]RenderFunc
}

// Order applies the style's sorting strategy. A nil Sort keeps the
// caller's appearance order.
func (s *Style) Order(entries []*bib.Entry) []*bib.Entry {
	if s.Sort == nil {
		return ByAppearance(entries)
	}
	return s.Sort(entries)
}

// Render formats one entry using the renderer registered for its type.
// An entry type without a renderer fails with UnsupportedTypeError;
// there is no default fallback.
func (s *Style) Render(e *bib.Entry) (richtext.Node, error) {
	r, ok := s.Renderers[e.Type]
	if !ok {
		return richtext.Empty, &errors.UnsupportedTypeError{
			Key:   e.Key,
			Type:  string(e.Type),
			Style: s.Name,
		}
	}
	return r(e)
}
