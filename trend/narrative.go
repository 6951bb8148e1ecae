/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package trend

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/humaidq/vitalsense/biomarker"
)

// narrativeRule selects a sentence for a direction and latest status. An
// empty direction or status matches anything.
type narrativeRule struct {
	direction Direction
	status    biomarker.Status
	template  string
}

// narrativeRules are matched top to bottom. Placeholders: {test}, {first},
// {last} (value with unit), {pct} (absolute, one decimal), {direction}.
var narrativeRules = []narrativeRule{
	{
		direction: DirectionDecreasing,
		status:    biomarker.StatusNormal,
		template:  "Your {test} decreased from {first} to {last} ({pct}% decrease), current lifestyle changes are working.",
	},
	{
		direction: DirectionIncreasing,
		status:    biomarker.StatusHigh,
		template:  "Your {test} increased from {first} to {last} ({pct}% increase), consider consulting your doctor.",
	},
	{
		direction: DirectionStable,
		template:  "Your {test} has remained relatively stable around {last}.",
	},
	{
		template: "Your {test} shows a {direction} trend. Current value: {last}.",
	},
}

func (r narrativeRule) matches(direction Direction, status biomarker.Status) bool {
	if r.direction != "" && r.direction != direction {
		return false
	}

	return r.status == "" || r.status == status
}

func narrate(testName string, direction Direction, first, last Point, pct float64) string {
	replacer := strings.NewReplacer(
		"{test}", testName,
		"{first}", FormatValue(first.Value),
		"{last}", withUnit(last.Value, last.Unit),
		"{pct}", fmt.Sprintf("%.1f", math.Abs(pct)),
		"{direction}", string(direction),
	)

	for _, rule := range narrativeRules {
		if rule.matches(direction, last.Status) {
			return replacer.Replace(rule.template)
		}
	}

	return ""
}

func singlePointNarrative(testName string, points []Point) string {
	if len(points) == 0 {
		return fmt.Sprintf("No %s results yet. Upload a report to start tracking this test.", testName)
	}

	p := points[0]

	return fmt.Sprintf("Current %s value: %s. Upload more reports to see trends.", testName, withUnit(p.Value, p.Unit))
}

// FormatValue prints a value with the shortest exact representation.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func withUnit(v float64, unit string) string {
	return strings.TrimSpace(FormatValue(v) + " " + unit)
}
