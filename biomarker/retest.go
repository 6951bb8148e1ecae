/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package biomarker

import "regexp"

// RetestRule maps a test-name pattern to a suggested retest interval.
// Months is the interval's comparable length.
type RetestRule struct {
	Pattern      *regexp.Regexp
	Interval     string
	Months       float64
	AbnormalOnly bool
}

// RetestRules are wellness heuristics, not clinical guidance. The first
// matching rule decides for a given test.
var RetestRules = []RetestRule{
	{Pattern: regexp.MustCompile(`(?i)hba1c`), Interval: "3 months", Months: 3},
	{Pattern: regexp.MustCompile(`(?i)(total cholesterol|ldl|hdl|triglycerides|lipid profile)`), Interval: "6 months", Months: 6},
	{Pattern: regexp.MustCompile(`(?i)vitamin d`), Interval: "2–3 months", Months: 2.5},
	{Pattern: regexp.MustCompile(`(?i)creatinine`), Interval: "3 months", Months: 3, AbnormalOnly: true},
}

// RetestRuleFor returns the rule that applies to a single result. A matching
// abnormal-only rule on a normal result applies nothing; later rules are not
// consulted.
func RetestRuleFor(testName string, status Status) (RetestRule, bool) {
	if testName == "" {
		return RetestRule{}, false
	}

	for _, rule := range RetestRules {
		if !rule.Pattern.MatchString(testName) {
			continue
		}

		if rule.AbnormalOnly && !status.IsAbnormal() {
			return RetestRule{}, false
		}

		return rule, true
	}

	return RetestRule{}, false
}

// RecommendRetest returns the shortest retest interval implied by any result
// in the report, or false when no rule applies.
func RecommendRetest(results []TestResult) (string, bool) {
	var (
		best  RetestRule
		found bool
	)

	for _, r := range results {
		rule, ok := RetestRuleFor(r.TestName, r.Status)
		if !ok {
			continue
		}

		if !found || rule.Months < best.Months {
			best = rule
			found = true
		}
	}

	if !found {
		return "", false
	}

	return best.Interval, true
}
