package commands

import (
	"github.com/spf13/cobra"
)

// Execute runs the strata CLI.
func Execute() error {
	root := &cobra.Command{
		Use:           "strata",
		Short:         "Layered application toolkit",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(featureCmd(), checkCmd())
	return root.Execute()
}
