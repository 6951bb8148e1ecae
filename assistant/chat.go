/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package assistant

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/humaidq/vitalsense/biomarker"
	"github.com/humaidq/vitalsense/trend"
)

// OutOfScopeReply is sent instead of calling the model for questions that
// are not about the user's report.
const OutOfScopeReply = "I can explain your report. For general health information, please switch to General Info mode."

const noRetestReply = "Based on general wellness guidelines, please consult your healthcare provider for the recommended retest interval."

var (
	inScopeKeywords = []string{
		"report", "result", "value", "test", "biomarker", "trend",
		"hba1c", "cholesterol", "vitamin", "creatinine", "urea", "glucose",
	}
	forbiddenKeywords = []string{"diagnosis", "diagnose", "treat", "cure", "medication", "drug"}
)

// OutOfScope reports whether a chat message should be refused: it either
// mentions nothing report-related or asks for diagnosis or treatment.
func OutOfScope(message string) bool {
	text := strings.ToLower(strings.TrimSpace(message))
	if text == "" {
		return true
	}

	inScope := false

	for _, kw := range inScopeKeywords {
		if strings.Contains(text, kw) {
			inScope = true
			break
		}
	}

	for _, kw := range forbiddenKeywords {
		if strings.Contains(text, kw) {
			return true
		}
	}

	return !inScope
}

// ChatContext is the report data the chat model may use.
type ChatContext struct {
	HealthScore          trend.Score            `json:"healthScore"`
	AbnormalBiomarkers   []biomarker.TestResult `json:"abnormalBiomarkers"`
	TrendSummaries       []string               `json:"trendSummaries"`
	DoctorSummary        []string               `json:"doctorSummary"`
	RetestRecommendation string                 `json:"retestRecommendation,omitempty"`
}

// NewChatContext assembles chat context for current, using recent reports
// for trend lines.
func NewChatContext(current biomarker.Report, recent []biomarker.Report, analyzer trend.Analyzer, doctorSummary []string) ChatContext {
	abnormal := current.Abnormal()
	if abnormal == nil {
		abnormal = []biomarker.TestResult{}
	}

	cc := ChatContext{
		HealthScore:        trend.HealthScore(current),
		AbnormalBiomarkers: abnormal,
		TrendSummaries:     analyzer.ChatTrendLines(recent),
		DoctorSummary:      doctorSummary,
	}

	if current.RetestRecommendation != nil {
		cc.RetestRecommendation = *current.RetestRecommendation
	} else if interval, ok := biomarker.RecommendRetest(current.Results); ok {
		cc.RetestRecommendation = interval
	}

	return cc
}

const chatSystemPrompt = `You are a calm, friendly wellness assistant for a lab report app.
You MUST base every answer only on the provided report context.
You are NOT a doctor and must NOT provide diagnosis, prescriptions, or treatment plans.
You ONLY:
- explain biomarker values and whether they are high, low, or normal
- explain simple trends (improving, worsening or stable)
- explain the overall health score
- suggest when the user might consider repeating the test

When discussing retest timing:
- If retestRecommendation is present, say: "Based on general wellness guidelines, you might consider retesting after [interval]."
- Otherwise reply with: "` + noRetestReply + `"

If the user asks anything outside the report, reply EXACTLY with:
"` + OutOfScopeReply + `"

Keep answers short (3-6 sentences), simple and reassuring.`

// ChatPrompts returns the system and user messages for a report question.
func ChatPrompts(cc ChatContext, message string) (string, string, error) {
	contextJSON, err := json.MarshalIndent(cc, "", "  ")
	if err != nil {
		return "", "", fmt.Errorf("failed to marshal chat context: %w", err)
	}

	user := fmt.Sprintf("Here is the context for the current user and report (JSON):\n%s\n\nUser question:\n%s\n",
		contextJSON, strings.TrimSpace(message))

	return chatSystemPrompt, user, nil
}
