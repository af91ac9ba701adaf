package migrate

import (
	"github.com/spf13/cobra"
)

// NewCommand creates the migrate command group
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "migrate",
		Args:    cobra.NoArgs,
		Aliases: []string{"m"},
		Short:   "Data migration commands",
		Long:    `Run in-place data migrations against the task-manager database.`,
	}

	cmd.AddCommand(
		newRealNamesCommand(),
	)

	return cmd
}
