/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package biomarker

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Range is a parsed reference interval. At least one bound is set.
//
// Bounded ranges are returned exactly as written: "10 - 5" yields Min 10 and
// Max 5. Inverted source data is not corrected here.
type Range struct {
	Min *float64
	Max *float64
}

// Bounded reports whether both bounds are present.
func (r Range) Bounded() bool {
	return r.Min != nil && r.Max != nil
}

// Inverted reports whether a bounded range has Min greater than Max.
func (r Range) Inverted() bool {
	return r.Bounded() && *r.Min > *r.Max
}

// String formats the range the way labs usually print it.
func (r Range) String() string {
	switch {
	case r.Bounded():
		return fmt.Sprintf("%s - %s", formatBound(*r.Min), formatBound(*r.Max))
	case r.Max != nil:
		return "< " + formatBound(*r.Max)
	case r.Min != nil:
		return "> " + formatBound(*r.Min)
	}

	return ""
}

func formatBound(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

type rangeGrammar struct {
	name    string
	pattern *regexp.Regexp
	build   func(match []string) (Range, bool)
}

// rangeGrammars are tried in order and the first match wins. "4.0 - 5.6 (<6)"
// is a bounded range, not an upper bound.
var rangeGrammars = []rangeGrammar{
	{
		name:    "bounded",
		pattern: regexp.MustCompile(`(\d+\.?\d*)\s*-\s*(\d+\.?\d*)`),
		build: func(m []string) (Range, bool) {
			minVal, okMin := parseBound(m[1])
			maxVal, okMax := parseBound(m[2])
			if !okMin || !okMax {
				return Range{}, false
			}

			return Range{Min: &minVal, Max: &maxVal}, true
		},
	},
	{
		name:    "upper",
		pattern: regexp.MustCompile(`<\s*(\d+\.?\d*)`),
		build: func(m []string) (Range, bool) {
			maxVal, ok := parseBound(m[1])
			if !ok {
				return Range{}, false
			}

			return Range{Max: &maxVal}, true
		},
	},
	{
		name:    "lower",
		pattern: regexp.MustCompile(`>\s*(\d+\.?\d*)`),
		build: func(m []string) (Range, bool) {
			minVal, ok := parseBound(m[1])
			if !ok {
				return Range{}, false
			}

			return Range{Min: &minVal}, true
		},
	},
}

func parseBound(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}

	return f, true
}

// ParseRange parses a free-text reference range. The second return value is
// false when no grammar matches.
func ParseRange(text string) (Range, bool) {
	cleaned := strings.TrimSpace(text)
	if cleaned == "" {
		return Range{}, false
	}

	for _, g := range rangeGrammars {
		match := g.pattern.FindStringSubmatch(cleaned)
		if match == nil {
			continue
		}

		return g.build(match)
	}

	return Range{}, false
}
