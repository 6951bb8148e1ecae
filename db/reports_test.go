// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package db

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/humaidq/vitalsense/biomarker"
)

func TestAppendResult(t *testing.T) {
	t.Parallel()

	known := uuid.New()
	reports := []biomarker.Report{{ID: known}}
	index := map[uuid.UUID]int{known: 0}

	res := biomarker.NewTestResult("Glucose", 95, "mg/dL", "70-100")
	if err := appendResult(reports, index, known, res); err != nil {
		t.Fatalf("appendResult failed: %v", err)
	}

	if len(reports[0].Results) != 1 || reports[0].Results[0].TestName != "Glucose" {
		t.Fatalf("unexpected results: %+v", reports[0].Results)
	}

	err := appendResult(reports, index, uuid.New(), res)
	if !errors.Is(err, ErrUnexpectedResult) {
		t.Fatalf("expected ErrUnexpectedResult, got %v", err)
	}

	if len(reports[0].Results) != 1 {
		t.Fatalf("stray result attached: %+v", reports[0].Results)
	}
}
