package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/citemill/citemill/pkg/pipeline"
	"github.com/citemill/citemill/pkg/source"
	"github.com/citemill/citemill/pkg/style/builtin"
)

// previewOpts holds the command-line flags for the preview command.
type previewOpts struct {
	style string // citation style to preview
	cited string // comma-separated citation keys to restrict output to
}

// newPreviewCmd creates the preview command: an interactive browser
// over the formatted reference list.
func newPreviewCmd() *cobra.Command {
	opts := previewOpts{style: pipeline.DefaultStyle}

	cmd := &cobra.Command{
		Use:   "preview [manifest]",
		Short: "Browse formatted references interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.style, "style", "s", opts.style, "citation style: apa (default), ieee, nature")
	cmd.Flags().StringVar(&opts.cited, "cited", "", "restrict output to these citation keys (comma-separated)")

	return cmd
}

func runPreview(ctx context.Context, manifestPath string, opts *previewOpts) error {
	logger := loggerFromContext(ctx)

	bibliography, err := source.Load(manifestPath)
	if err != nil {
		return err
	}

	runner := pipeline.NewRunner(builtin.Registry(), logger)
	result, err := runner.Execute(ctx, bibliography.Entries, pipeline.Options{
		Style: opts.style,
		Cited: parseList(opts.cited),
	})
	if err != nil {
		return err
	}

	return runPreviewTUI(ctx, result)
}
