/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"net/http"
	"strings"

	"github.com/flamego/flamego"
	"github.com/google/uuid"

	"github.com/humaidq/vitalsense/assistant"
	"github.com/humaidq/vitalsense/biomarker"
	"github.com/humaidq/vitalsense/knowledge"
	"github.com/humaidq/vitalsense/trend"
)

type biomarkerDetails struct {
	Result      biomarker.TestResult   `json:"biomarker"`
	Explanation *assistant.Explanation `json:"explanation"`
	Context     *knowledge.Context     `json:"ragContext"`
}

// GetBiomarkerDetails returns one result from a report. Abnormal results
// also carry retrieved context and an explanation.
func GetBiomarkerDetails(c flamego.Context, user UserID, store ReportStore, contexts ContextProvider, ai *Assistant) {
	testName := strings.TrimSpace(c.Query("testName"))
	reportID := strings.TrimSpace(c.Query("reportId"))

	if testName == "" || reportID == "" {
		writeError(c, http.StatusBadRequest, "testName and reportId are required", errTestNameMissing)
		return
	}

	id, err := uuid.Parse(reportID)
	if err != nil {
		writeError(c, http.StatusBadRequest, "Invalid report id", errInvalidReportID)
		return
	}

	ctx := c.Request().Context()

	report, err := store.GetReport(ctx, string(user), id)
	if err != nil {
		writeStoreError(c, err, "Failed to load report")
		return
	}

	result, ok := report.Find(testName)
	if !ok {
		writeError(c, http.StatusNotFound, "Biomarker not found in report", nil)
		return
	}

	details := biomarkerDetails{Result: result}

	if result.Status.IsAbnormal() {
		kc := contexts.Context(ctx, result.TestName)
		details.Context = &kc
		details.Explanation = explain(c, ai, result, kc)
	}

	writeJSON(c, http.StatusOK, details)
}

func explain(c flamego.Context, ai *Assistant, result biomarker.TestResult, kc knowledge.Context) *assistant.Explanation {
	if ai == nil || ai.Explainer == nil {
		fallback := assistant.FallbackExplanation(result)
		return &fallback
	}

	profile := assistant.Profile{
		Age:            c.Query("age"),
		Gender:         c.Query("gender"),
		DietPreference: c.Query("dietPreference"),
	}

	exp, err := ai.Explainer.Explain(c.Request().Context(), result, kc, profile)
	if err != nil {
		logger.Error("Error generating explanation", "test", result.TestName, "error", err)
		return nil
	}

	return &exp
}

// ListAbnormalBiomarkers returns every abnormal result, newest report first.
func ListAbnormalBiomarkers(c flamego.Context, user UserID, store ReportStore) {
	reports, err := store.ListReports(c.Request().Context(), string(user))
	if err != nil {
		writeError(c, http.StatusInternalServerError, "Failed to load reports", err)
		return
	}

	findings := trend.AbnormalFindings(reports)
	if findings == nil {
		findings = []trend.AbnormalFinding{}
	}

	writeJSON(c, http.StatusOK, map[string]any{"abnormalBiomarkers": findings})
}
