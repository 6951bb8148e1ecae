// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package assistant

import (
	"strings"
	"testing"
)

func TestFinishGeneralReply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		reply string
		want  string
	}{
		{
			name:  "appends disclaimer",
			reply: "  The WHO recommends 150 minutes of activity a week. ",
			want:  "The WHO recommends 150 minutes of activity a week. " + GeneralDisclaimer,
		},
		{
			name:  "keeps existing disclaimer",
			reply: "Per the CDC, adults need 7 hours of sleep. Please consult a healthcare provider for advice.",
			want:  "Per the CDC, adults need 7 hours of sleep. Please consult a healthcare provider for advice.",
		},
		{
			name:  "unverified answer untouched",
			reply: GeneralUnverifiedReply,
			want:  GeneralUnverifiedReply,
		},
		{
			name:  "empty reply",
			reply: "  ",
			want:  GeneralUnverifiedReply,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FinishGeneralReply(tt.reply); got != tt.want {
				t.Fatalf("FinishGeneralReply() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGeneralPrompts(t *testing.T) {
	t.Parallel()

	system, user := GeneralPrompts("  How much water should I drink?  ")

	if !strings.Contains(system, "World Health Organization") || !strings.Contains(system, GeneralDisclaimer) {
		t.Fatalf("system prompt missing source rules: %q", system)
	}

	if !strings.HasPrefix(user, "User question: How much water should I drink?\n") {
		t.Fatalf("unexpected user prompt: %q", user)
	}
}
