/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package biomarker

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Report is one uploaded lab report. Results keep extraction order, which
// carries no meaning.
type Report struct {
	ID                   uuid.UUID    `json:"id"`
	UserID               string       `json:"userId"`
	ReportDate           time.Time    `json:"reportDate"`
	Results              []TestResult `json:"biomarkers"`
	FileName             string       `json:"fileName,omitempty"`
	FileType             string       `json:"fileType,omitempty"`
	RetestRecommendation *string      `json:"retestRecommendation,omitempty"`
	ProcessedAt          time.Time    `json:"processedAt"`
	CreatedAt            time.Time    `json:"createdAt"`
}

// Find returns the first result whose name matches testName, ignoring case
// and surrounding whitespace.
func (r *Report) Find(testName string) (TestResult, bool) {
	want := strings.TrimSpace(testName)
	for _, res := range r.Results {
		if strings.EqualFold(strings.TrimSpace(res.TestName), want) {
			return res, true
		}
	}

	return TestResult{}, false
}

// Abnormal returns the results that are outside their reference range.
func (r *Report) Abnormal() []TestResult {
	var out []TestResult
	for _, res := range r.Results {
		if res.Status.IsAbnormal() {
			out = append(out, res)
		}
	}

	return out
}
