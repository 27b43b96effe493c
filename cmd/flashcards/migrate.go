package main

import (
	"log/slog"

	"go_flashcards/internal/repository"

	"github.com/spf13/cobra"
)

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := loadConfig(opts)
			if err != nil {
				return err
			}

			db, err := repository.NewDB(cfg.Database, logger)
			if err != nil {
				return err
			}
			if sqlDB, err := db.DB(); err == nil {
				defer sqlDB.Close()
			}

			if err := repository.Migrate(cmd.Context(), db); err != nil {
				logger.Error("Migration failed", slog.Any("error", err))
				return err
			}
			logger.Info("Migration completed")
			return nil
		},
	}
}
