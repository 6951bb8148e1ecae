/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"context"

	"github.com/google/uuid"

	"github.com/humaidq/vitalsense/assistant"
	"github.com/humaidq/vitalsense/biomarker"
	"github.com/humaidq/vitalsense/knowledge"
	"github.com/humaidq/vitalsense/trend"
)

// recentReportLimit bounds the reports used for doctor summaries.
const recentReportLimit = 5

// chatReportLimit bounds the reports used as chat trend context.
const chatReportLimit = 3

// ReportStore persists reports per user. Unknown or foreign IDs return
// db.ErrReportNotFound.
type ReportStore interface {
	CreateReport(ctx context.Context, report *biomarker.Report) error
	ListReports(ctx context.Context, userID string) ([]biomarker.Report, error)
	ListReportsChronological(ctx context.Context, userID string) ([]biomarker.Report, error)
	RecentReports(ctx context.Context, userID string, n int) ([]biomarker.Report, error)
	GetReport(ctx context.Context, userID string, id uuid.UUID) (*biomarker.Report, error)
	DeleteReport(ctx context.Context, userID string, id uuid.UUID) error
}

// Extractor turns an uploaded lab report file into raw results.
type Extractor interface {
	ExtractResults(ctx context.Context, data []byte, mimeType string) ([]biomarker.RawResult, error)
}

// Explainer writes a plain-language explanation for one result.
type Explainer interface {
	Explain(ctx context.Context, result biomarker.TestResult, kc knowledge.Context, profile assistant.Profile) (assistant.Explanation, error)
}

// Summarizer writes doctor-ready bullet points.
type Summarizer interface {
	DoctorSummary(ctx context.Context, reports []biomarker.Report, abnormal []trend.AbnormalFinding) ([]string, error)
}

// ChatStreamer streams a chat completion chunk by chunk.
type ChatStreamer interface {
	StreamChat(ctx context.Context, system, user string, onChunk func(string) error) error
}

// ContextProvider returns retrieval context for a test name. It never fails.
type ContextProvider interface {
	Context(ctx context.Context, testName string) knowledge.Context
}

// Assistant groups the optional model-backed collaborators. A nil field
// means the feature is not configured.
type Assistant struct {
	Extractor  Extractor
	Explainer  Explainer
	Summarizer Summarizer
	Chat       ChatStreamer
}
