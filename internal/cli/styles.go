package cli

import (
	"github.com/spf13/cobra"

	"github.com/citemill/citemill/pkg/style/builtin"
)

// newStylesCmd creates the styles command listing the bundled styles.
func newStylesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List the available citation styles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := builtin.Registry()
			for _, name := range reg.Names() {
				s, err := reg.Lookup(name)
				if err != nil {
					return err
				}
				printKeyValue(s.Name, s.Description)
			}
			return nil
		},
	}
}
