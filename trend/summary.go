/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package trend

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/humaidq/vitalsense/biomarker"
)

// AbnormalFinding is an out-of-range result with the report it came from.
type AbnormalFinding struct {
	TestName       string           `json:"testName"`
	Value          float64          `json:"value"`
	Unit           string           `json:"unit"`
	ReferenceRange string           `json:"referenceRange"`
	Status         biomarker.Status `json:"status"`
	ReportID       uuid.UUID        `json:"reportId"`
	ReportDate     time.Time        `json:"reportDate"`
}

// AbnormalFindings lists every abnormal result, following the order of
// reports and of results within each report.
func AbnormalFindings(reports []biomarker.Report) []AbnormalFinding {
	var findings []AbnormalFinding

	for _, report := range reports {
		for _, result := range report.Abnormal() {
			findings = append(findings, AbnormalFinding{
				TestName:       result.TestName,
				Value:          result.Value,
				Unit:           result.Unit,
				ReferenceRange: result.ReferenceRange,
				Status:         result.Status,
				ReportID:       report.ID,
				ReportDate:     report.ReportDate,
			})
		}
	}

	return findings
}

// Score is the share of normal results in a report.
type Score struct {
	Score  int `json:"score"`
	Normal int `json:"normal"`
	Total  int `json:"total"`
}

// HealthScore returns the rounded percentage of normal results.
func HealthScore(report biomarker.Report) Score {
	total := len(report.Results)
	if total == 0 {
		return Score{}
	}

	normal := total - len(report.Abnormal())

	return Score{
		Score:  int(math.Round(float64(normal) / float64(total) * 100)),
		Normal: normal,
		Total:  total,
	}
}

// FallbackDoctorSummary is used when the summary model is unavailable.
func FallbackDoctorSummary(abnormalCount, reportCount int) []string {
	return []string{
		fmt.Sprintf("Found %d abnormal biomarker(s) across %d report(s)", abnormalCount, reportCount),
		"Review all abnormal values with healthcare provider",
		"Monitor trends over time",
		"Consider lifestyle modifications",
		"Schedule follow-up consultation",
	}
}

// ChatTrendLines describes every test across reports in one line each, for
// use as chat context.
func (a Analyzer) ChatTrendLines(reports []biomarker.Report) []string {
	overview := Overview(reports)

	lines := make([]string, 0, len(overview))

	for _, series := range overview {
		if len(series.Points) < 2 {
			lines = append(lines, series.TestName+": only one data point so far.")
			continue
		}

		first := series.Points[0]
		last := series.Points[len(series.Points)-1]
		pct := PercentChange(first.Value, last.Value)

		lines = append(lines, fmt.Sprintf("%s: %s from %s to %s (%.1f%% change).",
			series.TestName, a.Direction(pct), FormatValue(first.Value), FormatValue(last.Value), pct))
	}

	return lines
}
