// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"google.golang.org/genai"

	"github.com/humaidq/vitalsense/biomarker"
	"github.com/humaidq/vitalsense/knowledge"
)

// fakeGemini answers generateContent calls with a fixed reply or status.
func fakeGemini(t *testing.T, status int, reply string) *Gemini {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, ":generateContent") {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if status != http.StatusOK {
			w.WriteHeader(status)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]any{"code": status, "message": reply, "status": "ERROR"},
			})

			return
		}

		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{{
				"content": map[string]any{
					"role":  "model",
					"parts": []map[string]any{{"text": reply}},
				},
			}},
		})
	}))
	t.Cleanup(server.Close)

	g, err := newGemini(context.Background(), &genai.ClientConfig{
		APIKey:      "test-key",
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: server.URL},
	}, "")
	if err != nil {
		t.Fatalf("newGemini failed: %v", err)
	}

	return g
}

func TestNewGeminiRequiresKey(t *testing.T) {
	t.Parallel()

	if _, err := NewGemini(context.Background(), " ", ""); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestExtractResults(t *testing.T) {
	t.Parallel()

	reply := "```json\n[{\"testName\":\"HbA1c\",\"value\":6.2,\"unit\":\"%\",\"referenceRange\":\"4.0 - 5.6\"}," +
		"{\"testName\":\"Glucose\",\"value\":null,\"unit\":\"mg/dl\",\"referenceRange\":\"70 - 100\"}]\n```"
	g := fakeGemini(t, http.StatusOK, reply)

	raw, err := g.ExtractResults(context.Background(), []byte("%PDF-1.4"), "application/pdf")
	if err != nil {
		t.Fatalf("ExtractResults failed: %v", err)
	}

	if len(raw) != 2 || raw[0].TestName != "HbA1c" || raw[1].Value != nil {
		t.Fatalf("unexpected records %+v", raw)
	}

	results, rejected, err := biomarker.BuildResults(raw)
	if err != nil {
		t.Fatalf("BuildResults failed: %v", err)
	}

	if len(results) != 1 || len(rejected) != 1 || results[0].Status != biomarker.StatusHigh {
		t.Fatalf("unexpected build output %+v / %+v", results, rejected)
	}
}

func TestExtractResultsValidation(t *testing.T) {
	t.Parallel()

	g := fakeGemini(t, http.StatusOK, "[]")

	if _, err := g.ExtractResults(context.Background(), []byte("x"), "text/plain"); !errors.Is(err, ErrUnsupportedFileType) {
		t.Fatalf("expected ErrUnsupportedFileType, got %v", err)
	}

	big := make([]byte, MaxUploadBytes+1)
	if _, err := g.ExtractResults(context.Background(), big, "image/png"); !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("expected ErrFileTooLarge, got %v", err)
	}
}

func TestExtractResultsNoJSON(t *testing.T) {
	t.Parallel()

	g := fakeGemini(t, http.StatusOK, "I could not read this report.")

	if _, err := g.ExtractResults(context.Background(), []byte("x"), "image/jpeg"); !errors.Is(err, ErrNoJSON) {
		t.Fatalf("expected ErrNoJSON, got %v", err)
	}
}

func TestExtractResultsQuota(t *testing.T) {
	t.Parallel()

	g := fakeGemini(t, http.StatusTooManyRequests, "Resource has been exhausted (e.g. check quota).")

	if _, err := g.ExtractResults(context.Background(), []byte("x"), "image/png"); !errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("expected ErrQuotaExceeded, got %v", err)
	}
}

func TestExplain(t *testing.T) {
	t.Parallel()

	result := biomarker.NewTestResult("LDL", 160, "mg/dL", "< 100")
	kc := knowledge.SampleContext("ldl")

	t.Run("json reply", func(t *testing.T) {
		t.Parallel()

		g := fakeGemini(t, http.StatusOK, "Sure!\n{\"explanation\":\"LDL is high.\",\"dietarySuggestions\":[\"Oats\"],\"lifestyleRecommendations\":[\"Walk daily\"]}")

		exp, err := g.Explain(context.Background(), result, kc, Profile{})
		if err != nil {
			t.Fatalf("Explain failed: %v", err)
		}

		if exp.Explanation != "LDL is high." || len(exp.DietarySuggestions) != 1 {
			t.Fatalf("unexpected explanation %+v", exp)
		}
	})

	t.Run("plain text reply", func(t *testing.T) {
		t.Parallel()

		g := fakeGemini(t, http.StatusOK, "LDL carries cholesterol.")

		exp, err := g.Explain(context.Background(), result, kc, Profile{})
		if err != nil {
			t.Fatalf("Explain failed: %v", err)
		}

		if exp.Explanation != "LDL carries cholesterol." || exp.DietarySuggestions == nil {
			t.Fatalf("unexpected explanation %+v", exp)
		}
	})

	t.Run("server error falls back", func(t *testing.T) {
		t.Parallel()

		g := fakeGemini(t, http.StatusInternalServerError, "internal")

		exp, err := g.Explain(context.Background(), result, kc, Profile{})
		if err != nil {
			t.Fatalf("Explain failed: %v", err)
		}

		if exp.Explanation != FallbackExplanation(result).Explanation {
			t.Fatalf("expected fallback, got %+v", exp)
		}
	})

	t.Run("invalid key is an error", func(t *testing.T) {
		t.Parallel()

		g := fakeGemini(t, http.StatusBadRequest, "API key not valid. Please pass a valid API key.")

		if _, err := g.Explain(context.Background(), result, kc, Profile{}); !errors.Is(err, ErrInvalidAPIKey) {
			t.Fatalf("expected ErrInvalidAPIKey, got %v", err)
		}
	})
}

func TestDoctorSummary(t *testing.T) {
	t.Parallel()

	g := fakeGemini(t, http.StatusOK, "```json\n[\"a\",\"b\",\"c\",\"d\",\"e\"]\n```")

	bullets, err := g.DoctorSummary(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("DoctorSummary failed: %v", err)
	}

	if len(bullets) != 5 || bullets[4] != "e" {
		t.Fatalf("unexpected bullets %v", bullets)
	}

	g = fakeGemini(t, http.StatusOK, "no bullets here")
	if _, err := g.DoctorSummary(context.Background(), nil, nil); !errors.Is(err, ErrNoJSON) {
		t.Fatalf("expected ErrNoJSON, got %v", err)
	}
}

func TestAllowedMIMEType(t *testing.T) {
	t.Parallel()

	for _, mt := range []string{"image/jpeg", "image/jpg", "image/png", "image/gif", "application/pdf", "IMAGE/PNG"} {
		if !AllowedMIMEType(mt) {
			t.Fatalf("expected %s to be allowed", mt)
		}
	}

	for _, mt := range []string{"", "text/plain", "image/webp"} {
		if AllowedMIMEType(mt) {
			t.Fatalf("expected %s to be rejected", mt)
		}
	}
}
