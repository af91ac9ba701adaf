package migrate

import (
	"context"

	"github.com/thanhtai05/task-manager/config"
	"github.com/thanhtai05/task-manager/data"
	"github.com/thanhtai05/task-manager/logger"
	migrator "github.com/thanhtai05/task-manager/migrate"
	seeder "github.com/thanhtai05/task-manager/seed"

	"github.com/spf13/cobra"
)

func newRealNamesCommand() *cobra.Command {
	var configPath string
	var randSeed int64

	cmd := &cobra.Command{
		Use:   "realnames",
		Short: "Replace placeholder user identities with realistic ones",
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

			_, err = migrator.RealNames(ctx, st, seeder.NewRand(randSeed), cfg.Seed.MaxAttempts)
			return err
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "config file path")
	cmd.Flags().Int64Var(&randSeed, "rand-seed", 0, "random seed, 0 for time-based")
	return cmd
}
