// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package assistant

import (
	"errors"
	"strings"
	"testing"

	"google.golang.org/genai"
)

func TestClassifyError(t *testing.T) {
	t.Parallel()

	plain := errors.New("connection reset")

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "status 429", err: genai.APIError{Code: 429, Message: "slow down"}, want: ErrQuotaExceeded},
		{name: "status 403", err: genai.APIError{Code: 403, Message: "forbidden"}, want: ErrInvalidAPIKey},
		{name: "key message", err: errors.New("API_KEY_INVALID"), want: ErrInvalidAPIKey},
		{name: "rate limit message", err: errors.New("rate limit reached"), want: ErrQuotaExceeded},
		{name: "safety message", err: errors.New("blocked due to SAFETY"), want: ErrContentBlocked},
		{name: "unknown", err: plain, want: plain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := classifyError(tt.err)
			if !errors.Is(got, tt.want) {
				t.Fatalf("classifyError(%v) = %v, want %v", tt.err, got, tt.want)
			}

			if !strings.Contains(got.Error(), tt.err.Error()) {
				t.Fatalf("classifyError(%v) lost the original error", tt.err)
			}
		})
	}

	if classifyError(nil) != nil {
		t.Fatal("expected nil for nil error")
	}
}
