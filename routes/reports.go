/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/flamego/flamego"
	"github.com/google/uuid"

	"github.com/humaidq/vitalsense/assistant"
	"github.com/humaidq/vitalsense/biomarker"
	"github.com/humaidq/vitalsense/db"
)

// reportFormField is the multipart field holding the lab report file.
const reportFormField = "report"

// reportDateLayout is the accepted format of the optional reportDate field.
const reportDateLayout = "2006-01-02"

// uploadFormOverhead leaves room for multipart framing around the file.
const uploadFormOverhead = 1 << 20

type uploadedReport struct {
	ID          uuid.UUID              `json:"id"`
	ReportDate  time.Time              `json:"reportDate"`
	Results     []biomarker.TestResult `json:"biomarkers"`
	Retest      *string                `json:"retestRecommendation,omitempty"`
	ProcessedAt time.Time              `json:"processedAt"`
}

// UploadReport extracts results from an uploaded report and stores them.
// The file itself is discarded once processed.
func UploadReport(c flamego.Context, user UserID, store ReportStore, ai *Assistant) {
	if ai == nil || ai.Extractor == nil {
		writeError(c, http.StatusServiceUnavailable, "Report extraction is not configured", errNotConfigured)
		return
	}

	req := c.Request().Request
	req.Body = http.MaxBytesReader(c.ResponseWriter(), req.Body, assistant.MaxUploadBytes+uploadFormOverhead)

	if err := req.ParseMultipartForm(assistant.MaxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(c, http.StatusRequestEntityTooLarge, "File too large", assistant.ErrFileTooLarge)
			return
		}

		writeError(c, http.StatusBadRequest, "Failed to parse upload form", err)

		return
	}

	reportDate, err := parseReportDate(req.FormValue("reportDate"))
	if err != nil {
		writeError(c, http.StatusBadRequest, "Invalid report date", err)
		return
	}

	file, header, err := req.FormFile(reportFormField)
	if err != nil {
		writeError(c, http.StatusBadRequest, "No file uploaded", errReportFileMissing)
		return
	}

	defer func() {
		if err := file.Close(); err != nil {
			logger.Error("Error closing upload file", "error", err)
		}
	}()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(c, http.StatusBadRequest, "Failed to read uploaded file", err)
		return
	}

	mimeType := uploadMIMEType(header.Header.Get("Content-Type"), data)
	ctx := c.Request().Context()

	raw, err := ai.Extractor.ExtractResults(ctx, data, mimeType)
	if err != nil {
		status, message := extractionErrorStatus(err)
		writeError(c, status, message, err)

		return
	}

	if len(raw) == 0 {
		writeError(c, http.StatusBadRequest, "No biomarkers found in report", assistant.ErrNoJSON)
		return
	}

	results, rejected, err := biomarker.BuildResults(raw)
	for _, r := range rejected {
		logger.Warn("Rejected extracted result", "test", r.TestName, "reason", r.Reason)
	}

	if err != nil {
		writeError(c, http.StatusBadRequest, "Invalid biomarker data", err)
		return
	}

	for _, r := range results {
		if ref, ok := biomarker.ParseRange(r.ReferenceRange); ok && ref.Inverted() {
			logger.Warn("Inverted reference range, classified as written", "test", r.TestName, "range", r.ReferenceRange, "status", r.Status)
		}
	}

	report := &biomarker.Report{
		UserID:     string(user),
		ReportDate: reportDate,
		Results:    results,
		FileName:   header.Filename,
		FileType:   mimeType,
	}

	if interval, ok := biomarker.RecommendRetest(results); ok {
		report.RetestRecommendation = &interval
	}

	if err := store.CreateReport(ctx, report); err != nil {
		writeError(c, http.StatusInternalServerError, "Failed to save report", err)
		return
	}

	logger.Info("Report processed", "report_id", report.ID, "results", len(results), "rejected", len(rejected))

	writeJSON(c, http.StatusCreated, map[string]any{
		"message": "Report processed successfully",
		"report": uploadedReport{
			ID:          report.ID,
			ReportDate:  report.ReportDate,
			Results:     report.Results,
			Retest:      report.RetestRecommendation,
			ProcessedAt: report.ProcessedAt,
		},
	})
}

func parseReportDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Now().UTC(), nil
	}

	t, err := time.Parse(reportDateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", errInvalidReportDate, raw)
	}

	return t, nil
}

// uploadMIMEType prefers the declared part type and sniffs the content when
// the client sent none.
func uploadMIMEType(declared string, data []byte) string {
	if declared != "" && declared != "application/octet-stream" {
		if mediaType, _, err := mime.ParseMediaType(declared); err == nil {
			return mediaType
		}
	}

	mediaType, _, _ := mime.ParseMediaType(http.DetectContentType(data))

	return mediaType
}

func extractionErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, assistant.ErrUnsupportedFileType):
		return http.StatusBadRequest, "Invalid file type"
	case errors.Is(err, assistant.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "File too large"
	case errors.Is(err, assistant.ErrNoJSON):
		return http.StatusUnprocessableEntity, "No biomarkers found in report"
	case errors.Is(err, assistant.ErrQuotaExceeded):
		return http.StatusTooManyRequests, "Extraction quota exceeded, please try again later"
	case errors.Is(err, assistant.ErrContentBlocked):
		return http.StatusUnprocessableEntity, "Report content was blocked by safety filters"
	case errors.Is(err, assistant.ErrInvalidAPIKey):
		return http.StatusServiceUnavailable, "Report extraction is misconfigured"
	}

	return http.StatusInternalServerError, "Failed to extract biomarkers from report"
}

func parseReportID(c flamego.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		writeError(c, http.StatusBadRequest, "Invalid report id", errInvalidReportID)
		return uuid.Nil, false
	}

	return id, true
}

func writeStoreError(c flamego.Context, err error, message string) {
	if errors.Is(err, db.ErrReportNotFound) {
		writeError(c, http.StatusNotFound, "Report not found", err)
		return
	}

	writeError(c, http.StatusInternalServerError, message, err)
}

// ListReports returns the user's reports, newest first.
func ListReports(c flamego.Context, user UserID, store ReportStore) {
	reports, err := store.ListReports(c.Request().Context(), string(user))
	if err != nil {
		writeError(c, http.StatusInternalServerError, "Failed to load reports", err)
		return
	}

	if reports == nil {
		reports = []biomarker.Report{}
	}

	writeJSON(c, http.StatusOK, map[string]any{"reports": reports})
}

// GetReport returns one report owned by the user.
func GetReport(c flamego.Context, user UserID, store ReportStore) {
	id, ok := parseReportID(c)
	if !ok {
		return
	}

	report, err := store.GetReport(c.Request().Context(), string(user), id)
	if err != nil {
		writeStoreError(c, err, "Failed to load report")
		return
	}

	writeJSON(c, http.StatusOK, map[string]any{"report": report})
}

// DeleteReport removes one report owned by the user.
func DeleteReport(c flamego.Context, user UserID, store ReportStore) {
	id, ok := parseReportID(c)
	if !ok {
		return
	}

	if err := store.DeleteReport(c.Request().Context(), string(user), id); err != nil {
		writeStoreError(c, err, "Failed to delete report")
		return
	}

	writeJSON(c, http.StatusOK, map[string]string{"message": "Report deleted successfully"})
}
