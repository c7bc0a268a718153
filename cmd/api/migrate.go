package main

import (
	"errors"
	"fmt"

	pg "paws-sync/internal/adapters/storage/postgres"
	"paws-sync/internal/platform/config"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create/upgrade the Postgres schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if cfg.Database.DSN == "" {
			return errors.New("DB_DSN is required")
		}

		db, err := pg.Open(cfg.Database.DSN, pg.PoolOptions{})
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer db.Close()

		if err := pg.Migrate(cmd.Context(), db); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "schema up to date")
		return nil
	},
}
