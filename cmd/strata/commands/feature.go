package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/strataframe/strata/scaffold"
)

func featureCmd() *cobra.Command {
	var (
		root   string
		module string
		entity string
	)

	cmd := &cobra.Command{
		Use:   "feature <name>",
		Short: "Generate the directory contract for a new feature",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := scaffold.Generate(scaffold.Feature{
				Root:   root,
				Name:   args[0],
				Entity: entity,
				Module: module,
			})
			if err != nil {
				return err
			}
			for _, path := range created {
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&root, "root", "internal", "directory holding the features tree")
	cmd.Flags().StringVar(&module, "module", "", "import path of the root directory")
	cmd.Flags().StringVar(&entity, "entity", "", "primary entity name (default: feature name)")
	_ = cmd.MarkFlagRequired("module")
	return cmd
}
