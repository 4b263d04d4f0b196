package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/citemill/citemill/pkg/check"
	"github.com/citemill/citemill/pkg/source"
)

// checkOpts holds the command-line flags for the check command.
type checkOpts struct {
	cited string // comma-separated citation keys used by the document
}

// newCheckCmd creates the check command for bibliography validation.
// Without --cited only structural checks run (duplicate keys, required
// fields, missing names); with --cited the orphaned-citation and
// unused-entry checks run as well.
func newCheckCmd() *cobra.Command {
	var opts checkOpts

	cmd := &cobra.Command{
		Use:   "check [manifest]",
		Short: "Run consistency checks over a bibliography",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.cited, "cited", "", "citation keys used by the document (comma-separated)")

	return cmd
}

func runCheck(ctx context.Context, manifestPath string, opts *checkOpts) error {
	logger := loggerFromContext(ctx)

	bibliography, err := source.Load(manifestPath)
	if err != nil {
		return err
	}
	logger.Debugf("Checking %d entries", len(bibliography.Entries))

	report := check.Run(bibliography.Entries, parseList(opts.cited))
	for _, issue := range report.Issues {
		switch issue.Severity {
		case check.SeverityError:
			printError("%s: %s", issue.Key, issue.Message)
		case check.SeverityWarning:
			printWarning("%s: %s", issue.Key, issue.Message)
		default:
			printDetail("%s: %s", issue.Key, issue.Message)
		}
	}

	errs := report.Count(check.SeverityError)
	warns := report.Count(check.SeverityWarning)
	switch {
	case errs > 0:
		return fmt.Errorf("%d error(s), %d warning(s)", errs, warns)
	case warns > 0:
		printInfo("%d warning(s), no errors", warns)
	default:
		printSuccess("Bibliography is well-formed (%d entries)", len(bibliography.Entries))
	}
	return nil
}
