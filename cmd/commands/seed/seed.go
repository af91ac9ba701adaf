package seed

import (
	"github.com/spf13/cobra"
)

// NewCommand creates the seed command group
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "seed",
		Args:    cobra.NoArgs,
		Aliases: []string{"s"},
		Short:   "Database seeding commands",
		Long:    `Generate internally consistent demo or multi-tenant datasets.`,
	}

	cmd.AddCommand(
		newDemoCommand(),
		newMultiCommand(),
	)

	return cmd
}
