// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package trend

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/humaidq/vitalsense/biomarker"
)

func assertFloatClose(t *testing.T, got, want, tol float64) {
	t.Helper()

	if math.Abs(got-want) > tol {
		t.Fatalf("got %v, want %v (±%v)", got, want, tol)
	}
}

func day(n int) time.Time {
	return time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func point(d int, value float64, status biomarker.Status) Point {
	return Point{Date: day(d), Value: value, Unit: "mg/dL", Status: status}
}

func TestPercentChange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		first, last float64
		want        float64
	}{
		{name: "ten percent up", first: 100, last: 110, want: 10},
		{name: "half down", first: 200, last: 100, want: -50},
		{name: "no change", first: 42, last: 42, want: 0},
		{name: "zero first", first: 0, last: 10, want: 0},
		{name: "glucose", first: 95, last: 130, want: 36.842105},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assertFloatClose(t, PercentChange(tt.first, tt.last), tt.want, 1e-5)
		})
	}
}

func TestAnalyzerDirection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		threshold float64
		pct       float64
		want      Direction
	}{
		{name: "default stable", pct: 3, want: DirectionStable},
		{name: "default negative stable", pct: -4.99, want: DirectionStable},
		{name: "default at threshold", pct: 5, want: DirectionIncreasing},
		{name: "default decreasing", pct: -5, want: DirectionDecreasing},
		{name: "custom threshold stable", threshold: 15, pct: 10, want: DirectionStable},
		{name: "custom threshold increasing", threshold: 2, pct: 3, want: DirectionIncreasing},
		{name: "negative threshold uses default", threshold: -1, pct: 4, want: DirectionStable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := Analyzer{StableThreshold: tt.threshold}
			if got := a.Direction(tt.pct); got != tt.want {
				t.Fatalf("Direction(%v) = %s, want %s", tt.pct, got, tt.want)
			}
		})
	}
}

func TestAnalyze(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		points    []Point
		direction Direction
		pct       float64
		contains  string
	}{
		{
			name:      "no points",
			direction: DirectionStable,
			contains:  "No Glucose results yet",
		},
		{
			name:      "single point",
			points:    []Point{point(0, 95, biomarker.StatusNormal)},
			direction: DirectionStable,
			contains:  "Current Glucose value: 95 mg/dL. Upload more reports",
		},
		{
			name: "rising into high",
			points: []Point{
				point(0, 95, biomarker.StatusNormal),
				point(30, 130, biomarker.StatusHigh),
			},
			direction: DirectionIncreasing,
			pct:       36.842105,
			contains:  "increased from 95 to 130 mg/dL (36.8% increase), consider consulting your doctor.",
		},
		{
			name: "falling back to normal",
			points: []Point{
				point(0, 130, biomarker.StatusHigh),
				point(30, 110, biomarker.StatusHigh),
				point(60, 90, biomarker.StatusNormal),
			},
			direction: DirectionDecreasing,
			pct:       -30.769231,
			contains:  "decreased from 130 to 90 mg/dL (30.8% decrease), current lifestyle changes are working.",
		},
		{
			name: "stable",
			points: []Point{
				point(0, 100, biomarker.StatusNormal),
				point(30, 103, biomarker.StatusNormal),
			},
			direction: DirectionStable,
			pct:       3,
			contains:  "has remained relatively stable around 103 mg/dL.",
		},
		{
			name: "rising but normal",
			points: []Point{
				point(0, 70, biomarker.StatusNormal),
				point(30, 90, biomarker.StatusNormal),
			},
			direction: DirectionIncreasing,
			pct:       28.571429,
			contains:  "shows a increasing trend. Current value: 90 mg/dL.",
		},
		{
			name: "zero baseline",
			points: []Point{
				point(0, 0, biomarker.StatusNormal),
				point(30, 10, biomarker.StatusNormal),
			},
			direction: DirectionStable,
			pct:       0,
			contains:  "stable around 10 mg/dL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Analyze("Glucose", tt.points)

			if got.Direction != tt.direction {
				t.Fatalf("direction = %s, want %s", got.Direction, tt.direction)
			}

			assertFloatClose(t, got.PercentChange, tt.pct, 1e-5)

			if !strings.Contains(got.Narrative, tt.contains) {
				t.Fatalf("narrative %q does not contain %q", got.Narrative, tt.contains)
			}
		})
	}
}

func TestAnalyzeOnlyUsesEndpoints(t *testing.T) {
	t.Parallel()

	points := []Point{
		point(0, 100, biomarker.StatusNormal),
		point(10, 500, biomarker.StatusHigh),
		point(20, 1, biomarker.StatusLow),
		point(30, 102, biomarker.StatusNormal),
	}

	got := Analyze("LDL", points)
	if got.Direction != DirectionStable {
		t.Fatalf("direction = %s, want stable", got.Direction)
	}
}

func TestFormatValue(t *testing.T) {
	t.Parallel()

	tests := map[float64]string{
		95:    "95",
		5.6:   "5.6",
		0.125: "0.125",
		-3:    "-3",
	}

	for in, want := range tests {
		if got := FormatValue(in); got != want {
			t.Fatalf("FormatValue(%v) = %q, want %q", in, got, want)
		}
	}
}
