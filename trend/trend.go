/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */

// Package trend turns a user's reports into per-test time series and
// summarises the change between the first and last value.
package trend

import (
	"math"
	"time"

	"github.com/humaidq/vitalsense/biomarker"
)

// Direction is the three-way summary of a series.
type Direction string

// Direction values.
const (
	DirectionStable     Direction = "stable"
	DirectionIncreasing Direction = "increasing"
	DirectionDecreasing Direction = "decreasing"
)

// DefaultStableThreshold is the percent change below which a series counts
// as stable. It is a noise floor, not a clinical cut-off.
const DefaultStableThreshold = 5.0

// Point is one dated value of a single test.
type Point struct {
	Date           time.Time        `json:"date"`
	Value          float64          `json:"value"`
	Unit           string           `json:"unit"`
	Status         biomarker.Status `json:"status"`
	ReferenceRange string           `json:"referenceRange,omitempty"`
}

// Analysis is the result of comparing the first and last point.
type Analysis struct {
	Direction     Direction `json:"trendDirection"`
	PercentChange float64   `json:"percentChange"`
	Narrative     string    `json:"insight"`
}

// Analyzer computes trend analyses. The zero value uses
// DefaultStableThreshold.
type Analyzer struct {
	StableThreshold float64
}

func (a Analyzer) threshold() float64 {
	if a.StableThreshold <= 0 {
		return DefaultStableThreshold
	}

	return a.StableThreshold
}

// Analyze summarises points, which must be sorted by ascending date.
func Analyze(testName string, points []Point) Analysis {
	return Analyzer{}.Analyze(testName, points)
}

// Analyze summarises points, which must be sorted by ascending date.
func (a Analyzer) Analyze(testName string, points []Point) Analysis {
	if len(points) < 2 {
		return Analysis{
			Direction: DirectionStable,
			Narrative: singlePointNarrative(testName, points),
		}
	}

	first := points[0]
	last := points[len(points)-1]

	pct := PercentChange(first.Value, last.Value)
	direction := a.Direction(pct)

	return Analysis{
		Direction:     direction,
		PercentChange: pct,
		Narrative:     narrate(testName, direction, first, last, pct),
	}
}

// PercentChange returns (last-first)/first*100, or 0 when first is zero.
func PercentChange(first, last float64) float64 {
	if first == 0 {
		return 0
	}

	return (last - first) / first * 100
}

// Direction labels a percent change.
func (a Analyzer) Direction(pct float64) Direction {
	switch {
	case math.Abs(pct) < a.threshold():
		return DirectionStable
	case pct > 0:
		return DirectionIncreasing
	default:
		return DirectionDecreasing
	}
}
