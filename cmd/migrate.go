package cmd

import (
	"log"

	"github.com/expensex/expensex-api/config"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(envFile)
			if err != nil {
				return err
			}
			if err := config.RunMigrations(cfg); err != nil {
				return err
			}
			log.Printf("✅ Migrations applied (%s)", cfg.DatabaseDriver)
			return nil
		},
	}
}
