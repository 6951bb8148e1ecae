/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package assistant

import (
	"fmt"
	"strings"
)

// Replies used by general health information chat.
const (
	GeneralUnavailableReply = "General health information mode is not currently available."
	GeneralUnverifiedReply  = "I could not find verified information from official medical sources. Please consult a healthcare provider or visit official health websites like WHO, NIH, or CDC."
	GeneralDisclaimer       = "This is general information only. Consult a healthcare provider for personalized advice."
)

const generalSystemPrompt = `You are a health information assistant that ONLY provides information from verified official medical sources.

CRITICAL RULES:
1. You MUST only answer if you can reference information from official sources like:
   - World Health Organization (WHO)
   - National Institutes of Health (NIH)
   - Centers for Disease Control and Prevention (CDC)
   - Indian Ministry of Health and Family Welfare
   - Other government health agencies

2. You MUST NOT:
   - Provide diagnosis or personalized medical advice
   - Prescribe treatments or medications
   - Generate information from your own knowledge without source verification
   - Answer questions about specific medical conditions requiring diagnosis

3. If you cannot find verified information from official sources, respond EXACTLY with:
   "` + GeneralUnverifiedReply + `"

4. Keep answers brief (2-4 sentences), educational, and always mention it's general information only.

5. Always end with: "` + GeneralDisclaimer + `"`

// GeneralPrompts returns the system and user messages for a general health
// question that is not tied to a report.
func GeneralPrompts(message string) (string, string) {
	user := fmt.Sprintf("User question: %s\n\nIMPORTANT: Only answer if you can reference verified official medical sources. Otherwise, say you could not find verified information.",
		strings.TrimSpace(message))

	return generalSystemPrompt, user
}

// FinishGeneralReply trims a model reply and appends GeneralDisclaimer
// unless the reply already points to a healthcare provider or says nothing
// verified was found. An empty reply becomes GeneralUnverifiedReply.
func FinishGeneralReply(reply string) string {
	text := strings.TrimSpace(reply)
	if text == "" {
		return GeneralUnverifiedReply
	}

	lower := strings.ToLower(text)
	if strings.Contains(lower, "could not find") || strings.Contains(lower, "consult a healthcare provider") {
		return text
	}

	return text + " " + GeneralDisclaimer
}
