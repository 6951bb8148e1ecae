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
	"github.com/humaidq/vitalsense/knowledge"
	"github.com/humaidq/vitalsense/trend"
)

const extractionPrompt = `You are a medical lab report analyzer. Extract ALL biomarker test results from this lab report image/PDF.

Return ONLY a valid JSON array with this exact structure:
[
  {
    "testName": "HbA1c",
    "value": 6.2,
    "unit": "%",
    "referenceRange": "4.0 - 5.6"
  }
]

EXTRACTION RULES:
1. testName: use standard names or abbreviations as printed (HbA1c, HDL, LDL, Total Cholesterol, Triglycerides, Glucose, Creatinine, Hemoglobin, Urea, Vitamin D, ...).
2. value: the numeric value only. If the value is not numeric, set it to null and still include the entry.
3. unit: exactly as shown ("%", "mg/dL", "g/dL", "mmol/L", "IU/L", "U/L", "ng/mL"). Use "N/A" if missing.
4. referenceRange: "low - high" (e.g. "4.0 - 5.6") or a single threshold ("< 5.6", "> 4.0"). Normalise "4.0-5.6", "4.0 to 5.6" and "4.0–5.6" to "4.0 - 5.6". Use "N/A" if missing.
5. Include repeated tests as separate entries.
6. Output ONLY the JSON array, no markdown and no explanations.

JSON array:`

func orNotSpecified(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Not specified"
	}

	return s
}

func orNoContext(s string) string {
	if strings.TrimSpace(s) == "" {
		return "No specific context available"
	}

	return s
}

func explanationPrompt(result biomarker.TestResult, kc knowledge.Context, profile Profile) string {
	var sb strings.Builder

	sb.WriteString("You are a wellness information assistant. Provide clear, simple, wellness-focused guidance about this biomarker result.\n\n")
	fmt.Fprintf(&sb, "Biomarker: %s\n", result.TestName)
	fmt.Fprintf(&sb, "Value: %s %s\n", trend.FormatValue(result.Value), result.Unit)
	fmt.Fprintf(&sb, "Reference Range: %s\n", result.ReferenceRange)
	fmt.Fprintf(&sb, "Status: %s\n\n", result.Status)

	fmt.Fprintf(&sb, "Relevant Context:\n%s\n\n", orNoContext(kc.BiomarkerInfo))
	fmt.Fprintf(&sb, "Nutrition & Lifestyle Context:\n%s\n\n", orNoContext(kc.NutritionInfo))

	sb.WriteString("User Profile:\n")
	fmt.Fprintf(&sb, "- Age: %s\n", orNotSpecified(profile.Age))
	fmt.Fprintf(&sb, "- Gender: %s\n", orNotSpecified(profile.Gender))
	fmt.Fprintf(&sb, "- Diet Preference: %s\n\n", orNotSpecified(profile.DietPreference))

	sb.WriteString("Use simple, non-medical language. Focus on wellness and lifestyle, not diagnosis or treatment. Avoid prescription-style language.\n\n")
	sb.WriteString("Provide:\n")
	sb.WriteString("1. A simple explanation (2-3 sentences) of what this biomarker means\n")
	fmt.Fprintf(&sb, "2. Why the value might be %s (simple, non-medical reasons)\n", strings.ToLower(string(result.Status)))
	fmt.Fprintf(&sb, "3. Dietary suggestions (2-3 items, considering diet preference: %s)\n", orNotSpecified(profile.DietPreference))
	sb.WriteString("4. Lifestyle recommendations (2-3 actionable items)\n\n")
	sb.WriteString("Format as JSON:\n")
	sb.WriteString(`{"explanation": "...", "dietarySuggestions": ["..."], "lifestyleRecommendations": ["..."]}`)

	return sb.String()
}

func doctorSummaryPrompt(reports []biomarker.Report, abnormal []trend.AbnormalFinding) (string, error) {
	reportsJSON, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal reports: %w", err)
	}

	abnormalJSON, err := json.MarshalIndent(abnormal, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal abnormal findings: %w", err)
	}

	var sb strings.Builder

	sb.WriteString("Generate a concise, professional doctor-ready summary from these lab reports.\n\n")
	fmt.Fprintf(&sb, "Reports Summary:\n%s\n\n", reportsJSON)
	fmt.Fprintf(&sb, "Abnormal Biomarkers:\n%s\n\n", abnormalJSON)
	sb.WriteString("Generate exactly 5 professional bullet points:\n")
	sb.WriteString("1. Persistent abnormalities or chronic patterns\n")
	sb.WriteString("2. Improving trends, if any\n")
	sb.WriteString("3. Critical alerts requiring prompt medical attention, if any\n")
	sb.WriteString("4. Considerations for medication or supplement review\n")
	sb.WriteString("5. Recommended consultation focus areas\n\n")
	sb.WriteString("Keep each point to 1-2 sentences. Format as a JSON array of strings.")

	return sb.String(), nil
}
