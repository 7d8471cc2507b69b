package main

import (
	"context"
	"database/sql"
	"fmt"
	root "newsroom"
	"newsroom/internal/config"
	"newsroom/pkg/logger"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateSessions applies the embedded session table migrations.
func migrateSessions(ctx context.Context, db *sql.DB, down bool) error {
	goose.SetBaseFS(root.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("could not set goose dialect to postgres: %w", err)
	}

	if down {
		if err := goose.DownContext(ctx, db, "migrations"); err != nil {
			return fmt.Errorf("could not roll back session tables: %w", err)
		}

		return nil
	}
	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("could not migrate session tables: %w", err)
	}

	return nil
}

// migrateQueue brings the river queue tables to the latest version.
func migrateQueue(ctx context.Context, db *sql.DB) error {
	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return fmt.Errorf("could not create river queue migrator: %w", err)
	}

	all := migrator.AllVersions()
	latest := all[len(all)-1].Version

	current := 0
	existing, err := migrator.ExistingVersions(ctx)
	if err != nil {
		return fmt.Errorf("could not get existing river queue migrations: %w", err)
	}
	if len(existing) > 0 {
		current = existing[len(existing)-1].Version
	}
	if latest <= current {
		logger.Info(ctx, "river queue is up to date", zap.Int("version", current))

		return nil
	}

	res, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, &rivermigrate.MigrateOpts{TargetVersion: latest})
	if err != nil {
		return fmt.Errorf("could not migrate river queue: %w", err)
	}
	logger.Info(ctx, "migrated river queue", zap.Int("from", current), zap.Int("to", latest),
		zap.Int("steps", len(res.Versions)))

	return nil
}

func migrateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates the session database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			down, _ := cmd.Flags().GetBool("down")

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			db, ok := strg.DB.(*sql.DB)
			if !ok {
				logger.Fatal(ctx, "storage is not backed by database/sql")
			}

			if err := migrateSessions(ctx, db, down); err != nil {
				logger.Fatal(ctx, "could not migrate pgsql", zap.Error(err))
			}
			if down {
				return
			}
			if err := migrateQueue(ctx, db); err != nil {
				logger.Fatal(ctx, "could not migrate river queue", zap.Error(err))
			}
		},
	}

	cmd.Flags().Bool("down", false, "Roll back the latest session table migration instead")

	return cmd
}
