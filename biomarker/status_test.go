// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package biomarker

import "testing"

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value float64
		text  string
		want  Status
	}{
		{name: "bounded inside", value: 85, text: "70 - 100", want: StatusNormal},
		{name: "bounded at min", value: 70, text: "70 - 100", want: StatusNormal},
		{name: "bounded at max", value: 100, text: "70 - 100", want: StatusNormal},
		{name: "bounded below", value: 69.9, text: "70 - 100", want: StatusLow},
		{name: "bounded above", value: 130, text: "70 - 100", want: StatusHigh},
		{name: "upper at bound", value: 5.6, text: "< 5.6", want: StatusNormal},
		{name: "upper above", value: 5.7, text: "< 5.6", want: StatusHigh},
		{name: "upper far below", value: 0, text: "< 5.6", want: StatusNormal},
		{name: "lower below", value: 3.9, text: "> 4.0", want: StatusLow},
		{name: "lower at bound", value: 4.0, text: "> 4.0", want: StatusNormal},
		{name: "lower far above", value: 1000, text: "> 4.0", want: StatusNormal},
		{name: "empty fails open", value: 999, text: "", want: StatusNormal},
		{name: "garbage fails open", value: -5, text: "garbage", want: StatusNormal},
		// Inverted source data is classified with the bounds as written.
		{name: "inverted between", value: 7, text: "10 - 5", want: StatusLow},
		{name: "inverted above both", value: 11, text: "10 - 5", want: StatusHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Classify(tt.value, tt.text); got != tt.want {
				t.Fatalf("Classify(%v, %q) = %s, want %s", tt.value, tt.text, got, tt.want)
			}
		})
	}
}

func TestClassifyBoundedProperty(t *testing.T) {
	t.Parallel()

	text := "2.5 - 7.5"
	for v := 0.0; v <= 10.0; v += 0.25 {
		want := StatusNormal
		if v < 2.5 {
			want = StatusLow
		} else if v > 7.5 {
			want = StatusHigh
		}

		if got := Classify(v, text); got != want {
			t.Fatalf("Classify(%v) = %s, want %s", v, got, want)
		}
	}
}

func TestStatusHelpers(t *testing.T) {
	t.Parallel()

	if StatusNormal.IsAbnormal() {
		t.Fatalf("NORMAL must not be abnormal")
	}
	if !StatusHigh.IsAbnormal() || !StatusLow.IsAbnormal() {
		t.Fatalf("HIGH and LOW must be abnormal")
	}
	if Status("UNKNOWN").Valid() {
		t.Fatalf("unexpected valid status")
	}

	r := NewTestResult("Glucose", 130, "mg/dL", "70 - 100")
	if r.Status != StatusHigh {
		t.Fatalf("expected HIGH, got %s", r.Status)
	}
}
