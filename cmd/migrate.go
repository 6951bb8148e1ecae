/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pressly/goose/v3"
	"github.com/urfave/cli/v3"

	"github.com/humaidq/vitalsense/db"
)

var CmdMigrate = &cli.Command{
	Name:  "migrate",
	Usage: "Database migration commands",
	Flags: []cli.Flag{databaseURLFlag()},
	Commands: []*cli.Command{
		{
			Name:   "up",
			Usage:  "Run all pending migrations",
			Action: migrateUp,
		},
		{
			Name:   "down",
			Usage:  "Roll back the last migration",
			Action: migrateDown,
		},
		{
			Name:   "status",
			Usage:  "Show migration status",
			Action: migrateStatus,
		},
		{
			Name:      "create",
			Usage:     "Create a new SQL migration file",
			ArgsUsage: "<name>",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "dir",
					Value: filepath.Join("db", db.MigrationsDir),
					Usage: "source directory for new migrations",
				},
			},
			Action: migrateCreate,
		},
		{
			Name:   "version",
			Usage:  "Print the current version of the database",
			Action: migrateVersion,
		},
	},
}

func getDB(ctx context.Context, cmd *cli.Command) (*sql.DB, error) {
	databaseURL := cmd.String("database-url")
	if databaseURL == "" {
		return nil, errDatabaseURLRequired
	}

	sqlDB, err := db.OpenMigrationDB(databaseURL)
	if err != nil {
		return nil, err
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return sqlDB, nil
}

func closeDB(sqlDB *sql.DB) {
	if err := sqlDB.Close(); err != nil {
		appLogger.Warn("Failed to close migration connection", "error", err)
	}
}

func migrateUp(ctx context.Context, cmd *cli.Command) error {
	sqlDB, err := getDB(ctx, cmd)
	if err != nil {
		return err
	}
	defer closeDB(sqlDB)

	if err := goose.UpContext(ctx, sqlDB, db.MigrationsDir); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	fmt.Fprintln(cmd.Root().Writer, "Migrations completed successfully")

	return nil
}

func migrateDown(ctx context.Context, cmd *cli.Command) error {
	sqlDB, err := getDB(ctx, cmd)
	if err != nil {
		return err
	}
	defer closeDB(sqlDB)

	if err := goose.DownContext(ctx, sqlDB, db.MigrationsDir); err != nil {
		return fmt.Errorf("failed to roll back migration: %w", err)
	}

	fmt.Fprintln(cmd.Root().Writer, "Migration rolled back successfully")

	return nil
}

func migrateStatus(ctx context.Context, cmd *cli.Command) error {
	sqlDB, err := getDB(ctx, cmd)
	if err != nil {
		return err
	}
	defer closeDB(sqlDB)

	if err := goose.StatusContext(ctx, sqlDB, db.MigrationsDir); err != nil {
		return fmt.Errorf("failed to get migration status: %w", err)
	}

	return nil
}

func migrateVersion(ctx context.Context, cmd *cli.Command) error {
	sqlDB, err := getDB(ctx, cmd)
	if err != nil {
		return err
	}
	defer closeDB(sqlDB)

	version, err := goose.GetDBVersionContext(ctx, sqlDB)
	if err != nil {
		return fmt.Errorf("failed to get database version: %w", err)
	}

	fmt.Fprintf(cmd.Root().Writer, "Database version: %d\n", version)

	return nil
}

func migrateCreate(_ context.Context, cmd *cli.Command) error {
	args := cmd.Args()
	if args.Len() < 1 {
		return errMigrationNameRequired
	}

	name := args.First()

	// Writes to the source tree, not the embedded filesystem.
	migrationsDir := cmd.String("dir")
	if err := os.MkdirAll(migrationsDir, 0755); err != nil {
		return fmt.Errorf("failed to create migrations directory: %w", err)
	}

	if err := goose.Create(nil, migrationsDir, name, "sql"); err != nil {
		return fmt.Errorf("failed to create migration: %w", err)
	}

	fmt.Fprintf(cmd.Root().Writer, "Created new migration in %s/\n", migrationsDir)

	return nil
}
