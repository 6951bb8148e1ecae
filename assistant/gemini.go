/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */

// Package assistant talks to the language models: Gemini for report
// extraction, explanations and summaries, and an OpenAI-compatible endpoint
// for streaming report chat.
package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"google.golang.org/genai"

	"github.com/humaidq/vitalsense/biomarker"
	"github.com/humaidq/vitalsense/knowledge"
	"github.com/humaidq/vitalsense/trend"
)

// DefaultGeminiModel is used when no model is configured.
const DefaultGeminiModel = "gemini-2.5-flash"

// MaxUploadBytes is the largest report file accepted for extraction.
const MaxUploadBytes = 20 << 20

var allowedMIMETypes = map[string]bool{
	"image/jpeg":      true,
	"image/jpg":       true,
	"image/png":       true,
	"image/gif":       true,
	"application/pdf": true,
}

// AllowedMIMEType reports whether mimeType can be sent for extraction.
func AllowedMIMEType(mimeType string) bool {
	return allowedMIMETypes[strings.ToLower(strings.TrimSpace(mimeType))]
}

var (
	codeFencePattern = regexp.MustCompile("```(?:json)?\\n?")
	jsonArrayPattern = regexp.MustCompile(`(?s)\[.*\]`)
	jsonObjPattern   = regexp.MustCompile(`(?s)\{.*\}`)
)

// Gemini wraps a genai client for the report workflows.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini API client.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	return newGemini(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}, model)
}

func newGemini(ctx context.Context, cc *genai.ClientConfig, model string) (*Gemini, error) {
	if strings.TrimSpace(cc.APIKey) == "" {
		return nil, fmt.Errorf("%w: GEMINI_API_KEY must be set", ErrNotConfigured)
	}

	if model == "" {
		model = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Gemini{client: client, model: model}, nil
}

func (g *Gemini) generate(ctx context.Context, parts []*genai.Part) (string, error) {
	contents := []*genai.Content{{Role: genai.RoleUser, Parts: parts}}

	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", classifyError(fmt.Errorf("gemini GenerateContent failed: %w", err))
	}

	return stripCodeFences(result.Text()), nil
}

func stripCodeFences(text string) string {
	return strings.TrimSpace(codeFencePattern.ReplaceAllString(text, ""))
}

// ExtractResults asks the model to read every test result from a report
// image or PDF. The records are not validated; see biomarker.BuildResults.
func (g *Gemini) ExtractResults(ctx context.Context, data []byte, mimeType string) ([]biomarker.RawResult, error) {
	if !AllowedMIMEType(mimeType) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFileType, mimeType)
	}

	if len(data) > MaxUploadBytes {
		return nil, fmt.Errorf("%w: %.2fMB exceeds %dMB", ErrFileTooLarge,
			float64(len(data))/(1<<20), MaxUploadBytes>>20)
	}

	text, err := g.generate(ctx, []*genai.Part{
		{Text: extractionPrompt},
		{InlineData: &genai.Blob{Data: data, MIMEType: mimeType}},
	})
	if err != nil {
		return nil, fmt.Errorf("biomarker extraction failed: %w", err)
	}

	return parseRawResults(text)
}

func parseRawResults(text string) ([]biomarker.RawResult, error) {
	match := jsonArrayPattern.FindString(text)
	if match == "" {
		return nil, ErrNoJSON
	}

	var raw []biomarker.RawResult
	if err := json.Unmarshal([]byte(match), &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoJSON, err)
	}

	return raw, nil
}

// Profile personalises explanations. Empty fields are reported as not
// specified.
type Profile struct {
	Age            string `json:"age"`
	Gender         string `json:"gender"`
	DietPreference string `json:"dietPreference"`
}

// Explanation is the wellness guidance for one result.
type Explanation struct {
	Explanation              string   `json:"explanation"`
	DietarySuggestions       []string `json:"dietarySuggestions"`
	LifestyleRecommendations []string `json:"lifestyleRecommendations"`
}

// FallbackExplanation is returned when the model cannot be reached.
func FallbackExplanation(result biomarker.TestResult) Explanation {
	return Explanation{
		Explanation: fmt.Sprintf("This biomarker (%s) has a %s value of %s %s. Please consult with a healthcare provider for detailed interpretation.",
			result.TestName, result.Status, trend.FormatValue(result.Value), result.Unit),
		DietarySuggestions:       []string{"Maintain a balanced diet", "Stay hydrated", "Follow your healthcare provider's recommendations"},
		LifestyleRecommendations: []string{"Regular exercise", "Adequate sleep", "Stress management"},
	}
}

// Explain produces guidance for a result using retrieved context. Only an
// invalid API key is reported as an error; other failures yield
// FallbackExplanation.
func (g *Gemini) Explain(ctx context.Context, result biomarker.TestResult, kc knowledge.Context, profile Profile) (Explanation, error) {
	text, err := g.generate(ctx, []*genai.Part{{Text: explanationPrompt(result, kc, profile)}})
	if err != nil {
		if errors.Is(err, ErrInvalidAPIKey) {
			return Explanation{}, err
		}

		logger.Warn("Explanation failed, using fallback", "test", result.TestName, "error", err)

		return FallbackExplanation(result), nil
	}

	return parseExplanation(text), nil
}

func parseExplanation(text string) Explanation {
	if match := jsonObjPattern.FindString(text); match != "" {
		var exp Explanation
		if err := json.Unmarshal([]byte(match), &exp); err == nil {
			if exp.DietarySuggestions == nil {
				exp.DietarySuggestions = []string{}
			}

			if exp.LifestyleRecommendations == nil {
				exp.LifestyleRecommendations = []string{}
			}

			return exp
		}
	}

	return Explanation{
		Explanation:              text,
		DietarySuggestions:       []string{},
		LifestyleRecommendations: []string{},
	}
}

// DoctorSummary asks for five clinician-facing bullet points. Callers fall
// back to trend.FallbackDoctorSummary on error.
func (g *Gemini) DoctorSummary(ctx context.Context, reports []biomarker.Report, abnormal []trend.AbnormalFinding) ([]string, error) {
	prompt, err := doctorSummaryPrompt(reports, abnormal)
	if err != nil {
		return nil, err
	}

	text, err := g.generate(ctx, []*genai.Part{{Text: prompt}})
	if err != nil {
		return nil, fmt.Errorf("doctor summary failed: %w", err)
	}

	match := jsonArrayPattern.FindString(text)
	if match == "" {
		return nil, ErrNoJSON
	}

	var bullets []string
	if err := json.Unmarshal([]byte(match), &bullets); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoJSON, err)
	}

	return bullets, nil
}
