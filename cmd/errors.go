/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import "errors"

var (
	errDatabaseURLRequired   = errors.New("database-url is required (set via --database-url or DATABASE_URL env var)")
	errMigrationNameRequired = errors.New("migration name is required")
	errQueryTextRequired     = errors.New("query text is required")
	errClassifyUsage         = errors.New("usage: classify <value> <reference range>")
	errInvalidValue          = errors.New("value must be a finite number")
)
