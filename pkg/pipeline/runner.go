package pipeline

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/citemill/citemill/pkg/bib"
	"github.com/citemill/citemill/pkg/errors"
	"github.com/citemill/citemill/pkg/observability"
	"github.com/citemill/citemill/pkg/richtext"
	"github.com/citemill/citemill/pkg/style"
)

// Runner executes the formatting pipeline against a style registry.
//
// The Runner is stateless except for the registry and logger - it
// doesn't store pipeline results. Multiple goroutines can safely use
// the same Runner with different options.
type Runner struct {
	Registry *style.Registry
	Logger   *log.Logger
}

// NewRunner creates a runner with the given registry.
// If registry is nil, an empty registry is used (every style unknown).
// If logger is nil, the default logger is used.
func NewRunner(reg *style.Registry, logger *log.Logger) *Runner {
	if reg == nil {
		reg = style.NewRegistry()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Registry: reg,
		Logger:   logger,
	}
}

// Execute runs the complete sort → label → render pipeline.
//
// An unknown style or an invalid option aborts the run with an error.
// Per-entry render failures do not: the failed entries keep their slot
// in Result.Items with empty text, and the failures are collected in
// Result.Problems.
func (r *Runner) Execute(ctx context.Context, entries []*bib.Entry, opts Options) (*Result, error) {
	r.applyDefaults(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid options")
	}

	s, err := opts.Registry.Lookup(opts.Style)
	if err != nil {
		return nil, err
	}

	result := &Result{
		RunID: uuid.NewString(),
		Style: s.Name,
	}

	entries, problems := r.filterCited(entries, opts.Cited)
	result.Problems = problems
	result.Stats.EntryCount = len(entries)

	// Stage 1: Sort
	sortStart := time.Now()
	observability.Pipeline().OnSortStart(ctx, s.Name, len(entries))
	result.Ordered = s.Order(entries)
	result.Stats.SortTime = time.Since(sortStart)
	observability.Pipeline().OnSortComplete(ctx, s.Name, len(entries), result.Stats.SortTime, nil)

	opts.Logger.Debug("sorted entries",
		"style", s.Name,
		"entries", len(result.Ordered),
		"duration", result.Stats.SortTime)

	// Stage 2: Label
	labelStart := time.Now()
	labels := r.collectLabels(s, result.Ordered)
	result.Stats.LabelTime = time.Since(labelStart)
	observability.Pipeline().OnLabelComplete(ctx, s.Name, len(labels), result.Stats.LabelTime)

	// Stage 3: Render
	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, s.Name, len(result.Ordered))
	items, renderProblems, err := r.renderAll(ctx, s, result.Ordered, labels, opts.Workers)
	if err != nil {
		return nil, err
	}
	result.Items = items
	result.Problems = append(result.Problems, renderProblems...)
	result.Stats.RenderTime = time.Since(renderStart)
	observability.Pipeline().OnRenderComplete(ctx, s.Name,
		len(items)-len(renderProblems), len(renderProblems), result.Stats.RenderTime)

	opts.Logger.Info("formatted bibliography",
		"style", s.Name,
		"entries", len(result.Items),
		"failed", len(renderProblems),
		"duration", result.Stats.RenderTime)

	return result, nil
}

// filterCited restricts entries to the cited keys. Entries keep their
// input order; cited keys matching no entry become Problems.
func (r *Runner) filterCited(entries []*bib.Entry, cited []string) ([]*bib.Entry, []Problem) {
	if len(cited) == 0 {
		return entries, nil
	}

	wanted := make(map[string]bool, len(cited))
	for _, key := range cited {
		wanted[key] = true
	}

	var kept []*bib.Entry
	found := make(map[string]bool, len(cited))
	for _, e := range entries {
		if wanted[e.Key] {
			kept = append(kept, e)
			found[e.Key] = true
		}
	}

	var problems []Problem
	for _, key := range cited {
		if !found[key] {
			problems = append(problems, Problem{
				Key: key,
				Err: errors.New(errors.ErrCodeInvalidInput, "cited key %q matches no entry", key),
			})
		}
	}
	return kept, problems
}

// collectLabels materializes the style's lazy label sequence for the
// ordered entries. Styles without a label generator get numeric labels.
func (r *Runner) collectLabels(s *style.Style, ordered []*bib.Entry) []style.Label {
	gen := s.Labels
	if gen == nil {
		gen = style.NumericLabels
	}
	labels := make([]style.Label, 0, len(ordered))
	for l := range gen(ordered) {
		labels = append(labels, l)
	}
	return labels
}

// renderAll formats every ordered entry through a bounded worker pool.
// items[i] always corresponds to ordered[i]; failed renders leave an
// empty node in place and are reported as Problems, sorted by position.
func (r *Runner) renderAll(ctx context.Context, s *style.Style, ordered []*bib.Entry, labels []style.Label, workers int) ([]RenderedItem, []Problem, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	items := make([]RenderedItem, len(ordered))
	errs := make([]error, len(ordered))

	if workers > len(ordered) {
		workers = len(ordered)
	}
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				items[i] = r.renderOne(s, ordered[i], labels, i, &errs[i])
			}
		}()
	}

	canceled := false
dispatch:
	for i := range ordered {
		select {
		case <-ctx.Done():
			canceled = true
			break dispatch
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if canceled {
		return nil, nil, ctx.Err()
	}

	var problems []Problem
	for i, err := range errs {
		if err != nil {
			problems = append(problems, Problem{Key: ordered[i].Key, Err: err})
		}
	}
	return items, problems, nil
}

// renderOne formats a single entry, leaving the item's text empty on
// failure so positions stay aligned.
func (r *Runner) renderOne(s *style.Style, e *bib.Entry, labels []style.Label, i int, errOut *error) RenderedItem {
	item := RenderedItem{Key: e.Key}
	if i < len(labels) {
		item.Label = labels[i]
	}

	node, err := s.Render(e)
	if err != nil {
		*errOut = err
		return item
	}
	item.Node = node
	item.Text = richtext.Plain(node)
	return item
}

// applyDefaults fills runner-level defaults into options before
// validation, so option validation never overrides the runner's logger.
func (r *Runner) applyDefaults(opts *Options) {
	if opts.Registry == nil {
		opts.Registry = r.Registry
	}
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
