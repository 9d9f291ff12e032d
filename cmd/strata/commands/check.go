package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/strataframe/strata/archcheck"
)

func checkCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "check [packages]",
		Short: "Verify the layer discipline of a codebase",
		Long: "Check loads the import graph of the given package patterns " +
			"(default ./...) and reports every import that violates the " +
			"three-layer rules: domain imports neither data nor presentation, " +
			"and presentation never reaches into data directly.",
		RunE: func(cmd *cobra.Command, args []string) error {
			graph, err := archcheck.LoadGraph(dir, args...)
			if err != nil {
				return err
			}

			violations := archcheck.Default().Check(graph)
			if len(violations) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "layering ok")
				return nil
			}
			for _, v := range violations {
				fmt.Fprintln(cmd.OutOrStdout(), v.String())
			}
			return fmt.Errorf("%d layering violation(s)", len(violations))
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "directory to load packages from")
	return cmd
}
