/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package trend

import (
	"sort"
	"strings"

	"github.com/humaidq/vitalsense/biomarker"
)

// Series is the history of one test across a user's reports.
type Series struct {
	TestName     string           `json:"testName"`
	Points       []Point          `json:"trendData"`
	LatestValue  *float64         `json:"latestValue,omitempty"`
	LatestStatus biomarker.Status `json:"latestStatus,omitempty"`
}

// chronological returns reports sorted by ascending report date. Reports on
// the same date keep their relative order.
func chronological(reports []biomarker.Report) []biomarker.Report {
	sorted := make([]biomarker.Report, len(reports))
	copy(sorted, reports)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ReportDate.Before(sorted[j].ReportDate)
	})

	return sorted
}

// BuildSeries collects one point per report for testName, matching names
// case-insensitively, ordered by report date.
func BuildSeries(testName string, reports []biomarker.Report) Series {
	series := Series{TestName: strings.TrimSpace(testName)}

	for _, report := range chronological(reports) {
		result, ok := report.Find(testName)
		if !ok {
			continue
		}

		series.Points = append(series.Points, Point{
			Date:           report.ReportDate,
			Value:          result.Value,
			Unit:           result.Unit,
			Status:         result.Status,
			ReferenceRange: result.ReferenceRange,
		})
	}

	if n := len(series.Points); n > 0 {
		latest := series.Points[n-1]
		series.LatestValue = &latest.Value
		series.LatestStatus = latest.Status
	}

	return series
}

// Overview builds a series for every distinct test name across reports, in
// the order names first appear chronologically.
func Overview(reports []biomarker.Report) []Series {
	sorted := chronological(reports)

	seen := make(map[string]bool)

	var names []string

	for _, report := range sorted {
		for _, result := range report.Results {
			key := strings.ToLower(strings.TrimSpace(result.TestName))
			if key == "" || seen[key] {
				continue
			}

			seen[key] = true
			names = append(names, result.TestName)
		}
	}

	overview := make([]Series, 0, len(names))
	for _, name := range names {
		overview = append(overview, BuildSeries(name, sorted))
	}

	return overview
}
