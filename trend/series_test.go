// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package trend

import (
	"testing"

	"github.com/google/uuid"

	"github.com/humaidq/vitalsense/biomarker"
)

func report(d int, results ...biomarker.TestResult) biomarker.Report {
	return biomarker.Report{
		ID:         uuid.New(),
		UserID:     "user-1",
		ReportDate: day(d),
		Results:    results,
	}
}

func result(name string, value float64, rangeText string) biomarker.TestResult {
	return biomarker.NewTestResult(name, value, "mg/dL", rangeText)
}

func TestBuildSeriesSortsAndMatchesNames(t *testing.T) {
	t.Parallel()

	reports := []biomarker.Report{
		report(60, result("glucose ", 130, "70 - 100")),
		report(0, result("Glucose", 95, "70 - 100")),
		report(30, result("HbA1c", 5.4, "< 5.7")),
	}

	series := BuildSeries("GLUCOSE", reports)

	if len(series.Points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(series.Points))
	}

	if !series.Points[0].Date.Equal(day(0)) || !series.Points[1].Date.Equal(day(60)) {
		t.Fatalf("points not in date order: %+v", series.Points)
	}

	if series.LatestValue == nil || *series.LatestValue != 130 {
		t.Fatalf("latest value = %v, want 130", series.LatestValue)
	}

	if series.LatestStatus != biomarker.StatusHigh {
		t.Fatalf("latest status = %s, want HIGH", series.LatestStatus)
	}

	if !reports[0].ReportDate.Equal(day(60)) {
		t.Fatal("BuildSeries reordered the caller's slice")
	}

	analysis := Analyze(series.TestName, series.Points)
	if analysis.Direction != DirectionIncreasing {
		t.Fatalf("direction = %s, want increasing", analysis.Direction)
	}

	assertFloatClose(t, analysis.PercentChange, 36.8, 0.05)
}

func TestBuildSeriesMissingTest(t *testing.T) {
	t.Parallel()

	series := BuildSeries("Ferritin", []biomarker.Report{report(0, result("Glucose", 95, "70 - 100"))})

	if len(series.Points) != 0 || series.LatestValue != nil {
		t.Fatalf("expected empty series, got %+v", series)
	}
}

func TestBuildSeriesSameDateKeepsOrder(t *testing.T) {
	t.Parallel()

	reports := []biomarker.Report{
		report(5, result("LDL", 120, "< 100")),
		report(5, result("LDL", 90, "< 100")),
	}

	series := BuildSeries("LDL", reports)
	if series.Points[0].Value != 120 || series.Points[1].Value != 90 {
		t.Fatalf("same-date reports reordered: %+v", series.Points)
	}
}

func TestOverview(t *testing.T) {
	t.Parallel()

	reports := []biomarker.Report{
		report(30, result("glucose", 101, "70 - 100"), result("HDL", 55, "> 40")),
		report(0, result("Glucose", 95, "70 - 100")),
	}

	overview := Overview(reports)

	if len(overview) != 2 {
		t.Fatalf("expected 2 series, got %d", len(overview))
	}

	if overview[0].TestName != "Glucose" || len(overview[0].Points) != 2 {
		t.Fatalf("unexpected first series %+v", overview[0])
	}

	if overview[1].TestName != "HDL" || len(overview[1].Points) != 1 {
		t.Fatalf("unexpected second series %+v", overview[1])
	}
}
