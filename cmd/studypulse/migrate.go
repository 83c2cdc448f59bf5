package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"studypulse/internal/config"
	"studypulse/internal/db"
	"studypulse/internal/logger"
)

var errNoSchema = errors.New("the memory driver has no schema to migrate")

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update tables and indexes, then exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.DBDriver == "memory" {
				return errNoSchema
			}
			log, err := logger.New(cfg.LogMode)
			if err != nil {
				return err
			}
			defer log.Sync()
			if _, err := migrate(cfg, log); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "migrated %s schema\n", cfg.DBDriver)
			return nil
		},
	}
}

func migrate(cfg config.Config, log *logger.Logger) (*gorm.DB, error) {
	gdb, err := db.Connect(cfg.DBDriver, cfg.DatabaseURL, log)
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrateAndIndexes(gdb); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return gdb, nil
}
