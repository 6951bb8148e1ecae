/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"

	// Register pgx with database/sql for goose migrations.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// MigrationsDir is the directory of the embedded migrations.
const MigrationsDir = "migrations"

//go:embed migrations/*.sql
var embedMigrations embed.FS

// EmbeddedMigrations returns the embedded migrations filesystem for use by
// CLI commands.
func EmbeddedMigrations() embed.FS {
	return embedMigrations
}

// OpenMigrationDB opens a database/sql handle configured for goose with the
// embedded migrations.
func OpenMigrationDB(databaseURL string) (*sql.DB, error) {
	if databaseURL == "" {
		return nil, ErrDatabaseURLRequired
	}

	sqlDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database for migrations: %w", err)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("postgres"); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to set dialect: %w", err)
	}

	return sqlDB, nil
}

// Migrate applies all pending migrations.
func (s *Store) Migrate(ctx context.Context) error {
	return migrateUp(ctx, s.databaseURL)
}

func migrateUp(ctx context.Context, databaseURL string) error {
	sqlDB, err := OpenMigrationDB(databaseURL)
	if err != nil {
		return err
	}

	defer func() {
		if err := sqlDB.Close(); err != nil {
			logger.Warn("Failed to close migration connection", "error", err)
		}
	}()

	if err := goose.UpContext(ctx, sqlDB, MigrationsDir); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
