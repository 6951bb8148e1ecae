/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import "errors"

var (
	errUserIDMissing     = errors.New("X-User-ID header is required")
	errInvalidReportID   = errors.New("invalid report id")
	errInvalidReportDate = errors.New("invalid report date")
	errReportFileMissing = errors.New("report file is required")
	errTestNameMissing   = errors.New("testName is required")
	errNotConfigured     = errors.New("feature not configured")
)
