/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import "errors"

var (
	// ErrDatabaseURLRequired is returned when no connection string is given.
	ErrDatabaseURLRequired = errors.New("database URL is required")
	// ErrDatabaseNameNotSpecified is returned when the URL has no database.
	ErrDatabaseNameNotSpecified = errors.New("database name not specified in connection string")
	// ErrReportNotFound is returned for unknown reports and for reports
	// owned by another user.
	ErrReportNotFound = errors.New("report not found")
	// ErrUserIDRequired is returned when a report has no owner.
	ErrUserIDRequired = errors.New("user id is required")
	// ErrUnexpectedResult is returned when a loaded test result belongs to
	// none of the reports being assembled.
	ErrUnexpectedResult = errors.New("test result for unexpected report")
)
