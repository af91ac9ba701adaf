package commands

import (
	"github.com/thanhtai05/task-manager/cmd/commands/migrate"
	"github.com/thanhtai05/task-manager/cmd/commands/seed"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "task-manager",
		Short: "Seeding and identity migration for the task-manager database",
	}

	rootCmd.AddCommand(
		seed.NewCommand(),
		migrate.NewCommand(),
		NewVersionCommand(),
	)

	return rootCmd
}
