package seed

import (
	"context"

	"github.com/thanhtai05/task-manager/config"
	"github.com/thanhtai05/task-manager/data"
	"github.com/thanhtai05/task-manager/logger"
	seeder "github.com/thanhtai05/task-manager/seed"

	"github.com/spf13/cobra"
)

func newMultiCommand() *cobra.Command {
	var configPath string
	var randSeed int64
	var fixtures bool

	cmd := &cobra.Command{
		Use:   "multi",
		Short: "Seed the multi-tenant stress dataset",
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
			if err := seeder.Multi(ctx, st, cfg.Seed, seeder.NewRand(randSeed)); err != nil {
				return err
			}

			if fixtures {
				// Diagnostic side channel: failure is worth a warning,
				// not a failed run.
				if err := seeder.ExportFixtures(ctx, st, cfg.Seed.FixturesDir); err != nil {
					logger.Standard().Warnf("fixture export skipped: %v", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "config file path")
	cmd.Flags().Int64Var(&randSeed, "rand-seed", 0, "random seed, 0 for time-based")
	cmd.Flags().BoolVar(&fixtures, "fixtures", false, "export a bounded JSON sample of the dataset")
	return cmd
}
