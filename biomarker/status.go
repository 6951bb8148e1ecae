/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package biomarker

// Status is the classification of a result against its reference range.
type Status string

// Status values. Anything other than StatusNormal is abnormal.
const (
	StatusNormal Status = "NORMAL"
	StatusHigh   Status = "HIGH"
	StatusLow    Status = "LOW"
)

// IsAbnormal reports whether the status is outside the reference range.
func (s Status) IsAbnormal() bool {
	return s == StatusHigh || s == StatusLow
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusNormal, StatusHigh, StatusLow:
		return true
	}

	return false
}

// TestResult is a single classified lab value. Status is only ever set by
// Classify through BuildResults or NewTestResult.
type TestResult struct {
	TestName       string  `json:"testName"`
	Value          float64 `json:"value"`
	Unit           string  `json:"unit"`
	ReferenceRange string  `json:"referenceRange"`
	Status         Status  `json:"status"`
}

// NewTestResult classifies value against referenceRange and returns the result.
func NewTestResult(testName string, value float64, unit, referenceRange string) TestResult {
	return TestResult{
		TestName:       testName,
		Value:          value,
		Unit:           unit,
		ReferenceRange: referenceRange,
		Status:         Classify(value, referenceRange),
	}
}

// Classify returns the status of value against the free-text reference range.
// Unparseable ranges classify as NORMAL so that one bad range never blocks a
// report.
func Classify(value float64, rangeText string) Status {
	r, ok := ParseRange(rangeText)
	if !ok {
		return StatusNormal
	}

	switch {
	case r.Min != nil && r.Max != nil:
		if value < *r.Min {
			return StatusLow
		}
		if value > *r.Max {
			return StatusHigh
		}
	case r.Max != nil:
		if value > *r.Max {
			return StatusHigh
		}
	case r.Min != nil:
		if value < *r.Min {
			return StatusLow
		}
	}

	return StatusNormal
}
