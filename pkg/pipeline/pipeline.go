// Package pipeline provides the core formatting pipeline for Citemill.
//
// This package implements the complete sort → label → render pipeline
// that can be used by CLI and library consumers. Centralizing this
// logic keeps behavior consistent across all entry points.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Sort: Order entries according to the style's sort strategy
//  2. Label: Generate in-text citation labels for the ordered entries
//  3. Render: Format each entry into rich text, concurrently
//
// Label and render outputs stay index-aligned with the sorted order:
// Items[i] always corresponds to the i-th entry of the sorted sequence,
// whether or not that entry rendered successfully.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(builtin.Registry(), logger)
//	opts := pipeline.Options{Style: "apa"}
//	result, err := runner.Execute(ctx, entries, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, item := range result.Items {
//	    fmt.Println(item.Label.Text, item.Text)
//	}
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/citemill/citemill/pkg/bib"
	"github.com/citemill/citemill/pkg/richtext"
	"github.com/citemill/citemill/pkg/style"
)

const (
	// DefaultStyle is the style used when none is requested.
	DefaultStyle = "apa"

	// DefaultWorkers is the render worker pool size. Rendering is pure
	// CPU work on small strings; a small fixed pool keeps output cheap
	// to reason about without leaving cores idle on large bibliographies.
	DefaultWorkers = 4

	// MaxWorkers caps the render worker pool.
	MaxWorkers = 64
)

// Options contains all configuration for the formatting pipeline.
// This struct supports JSON serialization for config files.
type Options struct {
	// Style names the citation style to apply.
	Style string `json:"style"`

	// Cited restricts output to the given citation keys, in the order
	// the style dictates. Keys that match no entry are reported in
	// Result.Problems. Empty means the full bibliography.
	Cited []string `json:"cited,omitempty"`

	// Workers sets the render worker pool size.
	Workers int `json:"workers,omitempty"`

	// Runtime options (not serialized)
	Registry *style.Registry `json:"-"`
	Logger   *log.Logger     `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same
// effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Workers <= 0 {
		o.Workers = DefaultWorkers
	}
	if o.Workers > MaxWorkers {
		return fmt.Errorf("workers %d exceeds maximum %d", o.Workers, MaxWorkers)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// RenderedItem is one formatted bibliography entry. Items keep their
// position even when rendering failed: a failed item has an empty Node
// and Text, and the failure is recorded in Result.Problems.
type RenderedItem struct {
	// Key is the citation key of the source entry.
	Key string

	// Label is the in-text citation label for this entry.
	Label style.Label

	// Node is the formatted rich text tree.
	Node richtext.Node

	// Text is the plain-text resolution of Node.
	Text string
}

// Problem records a per-entry failure that did not abort the run.
type Problem struct {
	Key string
	Err error
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID uniquely identifies this pipeline execution.
	RunID string

	// Style is the name of the style that was applied.
	Style string

	// Ordered holds the entries in the style's bibliography order.
	Ordered []*bib.Entry

	// Items are the formatted entries, index-aligned with Ordered.
	Items []RenderedItem

	// Problems lists entries that failed to render.
	Problems []Problem

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	EntryCount int
	SortTime   time.Duration
	LabelTime  time.Duration
	RenderTime time.Duration
}
