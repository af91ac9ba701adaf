package seed

import (
	"context"

	"github.com/thanhtai05/task-manager/config"
	"github.com/thanhtai05/task-manager/data"
	"github.com/thanhtai05/task-manager/logger"
	seeder "github.com/thanhtai05/task-manager/seed"

	"github.com/spf13/cobra"
)

func newDemoCommand() *cobra.Command {
	var configPath string
	var randSeed int64

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Seed the single-tenant demo dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if err := logger.Standard().Init(cfg.Logger); err != nil {
				return err
			}

			ctx := cmd.Context()
			st, err := data.Connect(ctx, cfg.Mongo)
			if err != nil {
				return err
			}
			defer st.Close(context.Background())

			if err := seeder.BootstrapRoles(ctx, st); err != nil {
				return err
			}
			return seeder.Demo(ctx, st, cfg.Seed, seeder.NewRand(randSeed))
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "config file path")
	cmd.Flags().Int64Var(&randSeed, "rand-seed", 0, "random seed, 0 for time-based")
	return cmd
}
