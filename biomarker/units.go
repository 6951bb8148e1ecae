/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package biomarker

import "strings"

var unitSpellings = map[string]string{
	"mg/dl":  "mg/dL",
	"g/dl":   "g/dL",
	"%":      "%",
	"mmol/l": "mmol/L",
	"iu/l":   "IU/L",
	"u/l":    "U/L",
}

// NormalizeUnit maps common case variants to their canonical spelling and
// leaves unknown units untouched.
func NormalizeUnit(unit string) string {
	if canonical, ok := unitSpellings[strings.ToLower(strings.TrimSpace(unit))]; ok {
		return canonical
	}

	return unit
}
