package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/citemill/citemill/pkg/cache"
	"github.com/citemill/citemill/pkg/errors"
	"github.com/citemill/citemill/pkg/export"
	"github.com/citemill/citemill/pkg/pipeline"
	"github.com/citemill/citemill/pkg/source"
	"github.com/citemill/citemill/pkg/style/builtin"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	style   string // citation style: "apa", "ieee", "nature"
	format  string // output format: "text", "markdown", "html", "json"
	output  string // output file path (empty writes to stdout)
	cited   string // comma-separated citation keys to restrict output to
	workers int    // render worker pool size
	noCache bool   // disable the render cache
	refresh bool   // bypass the cache and re-render
}

// newRenderCmd creates the render command for formatting bibliographies.
//
// Default settings:
//   - style: apa
//   - format: text
//   - output: stdout
//   - cache: enabled (~/.cache/citemill)
func newRenderCmd() *cobra.Command {
	opts := renderOpts{
		style:  pipeline.DefaultStyle,
		format: export.FormatText,
	}

	cmd := &cobra.Command{
		Use:   "render [manifest]",
		Short: "Format a bibliography manifest into a reference list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := export.ValidateFormat(opts.format); err != nil {
				return err
			}
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.style, "style", "s", opts.style, "citation style: apa (default), ieee, nature")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: text (default), markdown, html, json")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&opts.cited, "cited", "", "restrict output to these citation keys (comma-separated)")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "render worker pool size (0 = default)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the render cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass the cache and re-render")

	return cmd
}

// runRender loads the manifest, formats it, and writes the result.
// Rendered output is cached keyed on the manifest content hash and the
// render options, so unchanged inputs are served from disk.
func runRender(ctx context.Context, manifestPath string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	raw, err := os.ReadFile(manifestPath)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrap(errors.ErrCodeFileNotFound, err, "manifest %s not found", manifestPath)
		}
		return err
	}

	bibliography, err := source.Parse(raw)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded %d entries from %s", len(bibliography.Entries), manifestPath)

	cited := parseList(opts.cited)

	c := newCache(opts.noCache)
	defer c.Close()
	key := cache.NewDefaultKeyer().RenderKey(cache.Hash(raw), cache.RenderKeyOpts{
		Style:     opts.style,
		Format:    opts.format,
		CitedOnly: len(cited) > 0,
		Cited:     cited,
	})

	if !opts.refresh {
		if data, hit, err := c.Get(ctx, key); err == nil && hit {
			logger.Debug("Serving cached render", "key", key)
			if err := writeOutput(opts.output, data); err != nil {
				return err
			}
			printStats(len(bibliography.Entries), 0, true)
			return nil
		}
	}

	runner := pipeline.NewRunner(builtin.Registry(), logger)
	result, err := runner.Execute(ctx, bibliography.Entries, pipeline.Options{
		Style:   opts.style,
		Cited:   cited,
		Workers: opts.workers,
	})
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, result, opts.format); err != nil {
		return err
	}
	_ = c.Set(ctx, key, buf.Bytes(), cache.TTLRender)

	if err := writeOutput(opts.output, buf.Bytes()); err != nil {
		return err
	}

	for _, p := range result.Problems {
		printWarning("%s: %v", p.Key, p.Err)
	}
	printStats(len(result.Items), len(result.Problems), false)
	prog.done(fmt.Sprintf("Formatted %d references (%s, %s)", len(result.Items), result.Style, opts.format))
	return nil
}

// writeOutput writes data to the output file, or stdout when path is empty.
func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}
	printFile(path)
	return nil
}
