/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"net/http"
	"strings"

	"github.com/flamego/flamego"

	"github.com/humaidq/vitalsense/biomarker"
	"github.com/humaidq/vitalsense/trend"
)

// doctorSummaryFindingLimit caps the findings echoed back with a summary.
const doctorSummaryFindingLimit = 10

type trendResponse struct {
	trend.Series
	trend.Analysis
}

func newTrendResponse(analyzer trend.Analyzer, series trend.Series) trendResponse {
	if series.Points == nil {
		series.Points = []trend.Point{}
	}

	return trendResponse{
		Series:   series,
		Analysis: analyzer.Analyze(series.TestName, series.Points),
	}
}

// ListTrends returns a series and analysis for every test the user has.
func ListTrends(c flamego.Context, user UserID, store ReportStore, analyzer trend.Analyzer) {
	reports, err := store.ListReportsChronological(c.Request().Context(), string(user))
	if err != nil {
		writeError(c, http.StatusInternalServerError, "Failed to load trends", err)
		return
	}

	overview := trend.Overview(reports)
	trends := make([]trendResponse, 0, len(overview))

	for _, series := range overview {
		trends = append(trends, newTrendResponse(analyzer, series))
	}

	writeJSON(c, http.StatusOK, map[string]any{"trends": trends})
}

func trendTestName(c flamego.Context) (string, bool) {
	testName := strings.TrimSpace(c.Param("testName"))
	if testName == "" {
		testName = strings.TrimSpace(c.Query("testName"))
	}

	if testName == "" {
		writeError(c, http.StatusBadRequest, "testName is required", errTestNameMissing)
		return "", false
	}

	return testName, true
}

// GetTrend returns the series and analysis for one test.
func GetTrend(c flamego.Context, user UserID, store ReportStore, analyzer trend.Analyzer) {
	testName, ok := trendTestName(c)
	if !ok {
		return
	}

	reports, err := store.ListReportsChronological(c.Request().Context(), string(user))
	if err != nil {
		writeError(c, http.StatusInternalServerError, "Failed to load trend", err)
		return
	}

	writeJSON(c, http.StatusOK, newTrendResponse(analyzer, trend.BuildSeries(testName, reports)))
}

// GetTrendChart renders an HTML line chart for one test with its reference
// range drawn as dashed lines.
func GetTrendChart(c flamego.Context, user UserID, store ReportStore) {
	testName, ok := trendTestName(c)
	if !ok {
		return
	}

	reports, err := store.ListReportsChronological(c.Request().Context(), string(user))
	if err != nil {
		writeError(c, http.StatusInternalServerError, "Failed to load trend", err)
		return
	}

	series := trend.BuildSeries(testName, reports)
	if len(series.Points) == 0 {
		writeError(c, http.StatusNotFound, "No results for test", nil)
		return
	}

	chart, err := renderTrendChart(series)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "Failed to render chart", err)
		return
	}

	c.ResponseWriter().Header().Set("Content-Type", "text/html; charset=utf-8")
	c.ResponseWriter().WriteHeader(http.StatusOK)

	if _, err := c.ResponseWriter().Write(chart); err != nil {
		logger.Error("Error writing chart response", "test", testName, "error", err)
	}
}

type doctorSummaryResponse struct {
	Summary       []string                `json:"summary"`
	ReportCount   int                     `json:"reportCount"`
	AbnormalCount int                     `json:"abnormalCount"`
	Abnormal      []trend.AbnormalFinding `json:"abnormalBiomarkers"`
}

// GetDoctorSummary summarises the most recent reports for a clinician.
func GetDoctorSummary(c flamego.Context, user UserID, store ReportStore, ai *Assistant) {
	ctx := c.Request().Context()

	reports, err := store.RecentReports(ctx, string(user), recentReportLimit)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "Failed to load reports", err)
		return
	}

	abnormal := trend.AbnormalFindings(reports)
	summary := doctorSummary(c, ai, reports, abnormal)

	if summary == nil {
		summary = trend.FallbackDoctorSummary(len(abnormal), len(reports))
	}

	top := abnormal
	if len(top) > doctorSummaryFindingLimit {
		top = top[:doctorSummaryFindingLimit]
	}

	if top == nil {
		top = []trend.AbnormalFinding{}
	}

	writeJSON(c, http.StatusOK, doctorSummaryResponse{
		Summary:       summary,
		ReportCount:   len(reports),
		AbnormalCount: len(abnormal),
		Abnormal:      top,
	})
}

// doctorSummary returns nil when no summarizer is configured or it fails.
func doctorSummary(c flamego.Context, ai *Assistant, reports []biomarker.Report, abnormal []trend.AbnormalFinding) []string {
	if ai == nil || ai.Summarizer == nil || len(reports) == 0 {
		return nil
	}

	summary, err := ai.Summarizer.DoctorSummary(c.Request().Context(), reports, abnormal)
	if err != nil {
		logger.Warn("Doctor summary failed", "reports", len(reports), "error", err)
		return nil
	}

	return summary
}
