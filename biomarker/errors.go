/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package biomarker

import "errors"

var (
	// ErrNoValidResults is returned when every extracted record was rejected.
	ErrNoValidResults = errors.New("no valid test results in report")
)
