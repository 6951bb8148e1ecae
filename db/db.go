/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */

// Package db persists reports and the knowledge corpus in PostgreSQL.
package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store is a PostgreSQL-backed report and knowledge store. It is safe for
// concurrent use.
type Store struct {
	pool        *pgxpool.Pool
	databaseURL string
}

// Open creates the database if needed and connects a pool to it.
func Open(ctx context.Context, databaseURL string) (*Store, error) {
	if databaseURL == "" {
		return nil, ErrDatabaseURLRequired
	}

	// Try to create the database if it doesn't exist
	if err := ensureDatabaseExists(ctx, databaseURL); err != nil {
		return nil, fmt.Errorf("failed to ensure database exists: %w", err)
	}

	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	config.MaxConns = 20
	config.MinConns = 2

	return connect(ctx, config, databaseURL)
}

func connect(ctx context.Context, config *pgxpool.Config, databaseURL string) (*Store, error) {
	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool, databaseURL: databaseURL}, nil
}

// Ping checks that the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close closes the connection pool.
func (s *Store) Close() {
	if s != nil && s.pool != nil {
		s.pool.Close()
	}
}

// ensureDatabaseExists creates the database if it doesn't exist
func ensureDatabaseExists(ctx context.Context, databaseURL string) error {
	config, err := pgx.ParseConfig(databaseURL)
	if err != nil {
		return fmt.Errorf("failed to parse database URL: %w", err)
	}

	dbName := config.Database
	if dbName == "" {
		return ErrDatabaseNameNotSpecified
	}

	// Connect to 'postgres' database to create the target database
	config.Database = "postgres"

	conn, err := pgx.ConnectConfig(ctx, config)
	if err != nil {
		return fmt.Errorf("failed to connect to postgres database: %w", err)
	}

	defer func() {
		if err := conn.Close(ctx); err != nil {
			logger.Warn("Failed to close bootstrap database connection", "error", err)
		}
	}()

	var exists bool

	err = conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", dbName).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}

	if exists {
		return nil
	}

	// Database names can't be parameterized; pgx.Identifier quotes them.
	sql := "CREATE DATABASE " + pgx.Identifier{dbName}.Sanitize()

	if _, err = conn.Exec(ctx, sql); err != nil {
		// Ignore error if database was created by another process
		if !strings.Contains(err.Error(), "already exists") {
			return fmt.Errorf("failed to create database: %w", err)
		}
	}

	logger.Info("Created database", "name", dbName)

	return nil
}
