/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package biomarker

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// RawResult is a record as returned by the extraction model, before any
// validation. Value may be a JSON number, a numeric string or null.
type RawResult struct {
	TestName       string `json:"testName"`
	Value          any    `json:"value"`
	Unit           string `json:"unit"`
	ReferenceRange string `json:"referenceRange"`
}

// Rejection records why a raw record was dropped during ingestion.
type Rejection struct {
	TestName string
	Reason   string
}

var leadingNumber = regexp.MustCompile(`^[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?`)

// BuildResults validates raw extraction records and classifies the survivors.
// Records missing a name, unit, range or value are rejected, as are values
// that are not finite numbers. Input order is preserved.
func BuildResults(raw []RawResult) ([]TestResult, []Rejection, error) {
	results := make([]TestResult, 0, len(raw))

	var rejected []Rejection

	for _, r := range raw {
		name := strings.TrimSpace(r.TestName)
		rangeText := strings.TrimSpace(r.ReferenceRange)

		if name == "" || strings.TrimSpace(r.Unit) == "" || rangeText == "" || r.Value == nil {
			rejected = append(rejected, Rejection{TestName: name, Reason: "missing required field"})
			continue
		}

		value, err := numericValue(r.Value)
		if err != nil {
			rejected = append(rejected, Rejection{TestName: name, Reason: err.Error()})
			continue
		}

		results = append(results, NewTestResult(name, value, NormalizeUnit(r.Unit), rangeText))
	}

	if len(results) == 0 {
		return nil, rejected, ErrNoValidResults
	}

	return results, rejected, nil
}

// numericValue accepts JSON numbers and strings that start with a number,
// so "6.2 %" reads as 6.2.
func numericValue(v any) (float64, error) {
	var f float64

	switch val := v.(type) {
	case float64:
		f = val
	case float32:
		f = float64(val)
	case int:
		f = float64(val)
	case int64:
		f = float64(val)
	case json.Number:
		parsed, err := val.Float64()
		if err != nil {
			return 0, fmt.Errorf("invalid value %q", val.String())
		}
		f = parsed
	case string:
		match := leadingNumber.FindString(strings.TrimSpace(val))
		if match == "" {
			return 0, fmt.Errorf("invalid value %q", val)
		}
		parsed, err := strconv.ParseFloat(match, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid value %q", val)
		}
		f = parsed
	default:
		return 0, fmt.Errorf("invalid value type %T", v)
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("non-finite value")
	}

	return f, nil
}
