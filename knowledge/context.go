/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package knowledge

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/humaidq/vitalsense/embedding"
)

// Per-namespace result limits used by Contextualizer.
const (
	BiomarkerTopK = 3
	NutritionTopK = 2
)

// Context is the background text passed to the explanation model.
type Context struct {
	BiomarkerInfo string `json:"biomarkerInfo"`
	NutritionInfo string `json:"nutritionInfo"`
}

// Contextualizer gathers knowledge snippets for a test name.
type Contextualizer struct {
	encoder   embedding.Encoder
	retriever *Retriever
}

// NewContextualizer returns a Contextualizer using enc for queries against
// retriever.
func NewContextualizer(enc embedding.Encoder, retriever *Retriever) *Contextualizer {
	return &Contextualizer{encoder: enc, retriever: retriever}
}

// Context returns snippets about testName from both namespaces. It never
// fails: retrieval problems are logged and answered with built-in text.
func (c *Contextualizer) Context(ctx context.Context, testName string) Context {
	vector, err := c.encoder.Encode(ctx, strings.ToLower(testName))
	if err != nil {
		logger.Warn("Failed to encode knowledge query", "test", testName, "error", err)
		return SampleContext(testName)
	}

	var biomarkerInfo, nutritionInfo string

	var g errgroup.Group

	g.Go(func() error {
		text, err := c.joined(ctx, NamespaceBiomarkers, vector, BiomarkerTopK)
		if err != nil {
			return err
		}

		biomarkerInfo = text

		return nil
	})
	g.Go(func() error {
		text, err := c.joined(ctx, NamespaceNutrition, vector, NutritionTopK)
		if err != nil {
			return err
		}

		nutritionInfo = text

		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Warn("Knowledge query failed", "test", testName, "error", err)
	}

	if biomarkerInfo == "" && nutritionInfo == "" {
		return SampleContext(testName)
	}

	if biomarkerInfo == "" {
		biomarkerInfo = "Information about " + testName
	}

	if nutritionInfo == "" {
		nutritionInfo = "General nutrition guidelines for " + testName
	}

	return Context{BiomarkerInfo: biomarkerInfo, NutritionInfo: nutritionInfo}
}

func (c *Contextualizer) joined(ctx context.Context, ns Namespace, vector []float32, topK int) (string, error) {
	matches, err := c.retriever.Query(ctx, ns, vector, topK)
	if err != nil {
		return "", fmt.Errorf("failed to query %s: %w", ns, err)
	}

	texts := make([]string, 0, len(matches))

	for _, m := range matches {
		if m.Text != "" {
			texts = append(texts, m.Text)
		}
	}

	return strings.Join(texts, " "), nil
}

var sampleContexts = map[string]Context{
	"hba1c": {
		BiomarkerInfo: "HbA1c (Hemoglobin A1c) measures average blood sugar over 2-3 months. Normal range is 4.0-5.6%. Higher values indicate diabetes risk.",
		NutritionInfo: "For high HbA1c: Reduce refined carbs, increase fiber, choose low-glycemic foods. Include whole grains, vegetables, lean proteins.",
	},
	"hdl": {
		BiomarkerInfo: "HDL (High-Density Lipoprotein) is \"good cholesterol\" that helps remove LDL. Higher values (above 40 mg/dL for men, 50 for women) are better.",
		NutritionInfo: "To raise HDL: Include healthy fats (olive oil, avocados, nuts), omega-3 fatty acids, regular exercise, moderate alcohol (if appropriate).",
	},
	"ldl": {
		BiomarkerInfo: "LDL (Low-Density Lipoprotein) is \"bad cholesterol\" that can build up in arteries. Optimal is below 100 mg/dL.",
		NutritionInfo: "To lower LDL: Reduce saturated and trans fats, increase soluble fiber (oats, beans), include plant sterols, limit processed foods.",
	},
	"glucose": {
		BiomarkerInfo: "Glucose measures blood sugar at the time of test. Normal fasting is 70-100 mg/dL. High values indicate diabetes risk.",
		NutritionInfo: "For high glucose: Eat balanced meals, avoid sugary drinks, include protein with carbs, maintain regular meal timing.",
	},
	"creatinine": {
		BiomarkerInfo: "Creatinine measures kidney function. Normal range varies by age/gender. High values may indicate kidney issues.",
		NutritionInfo: "For high creatinine: Stay hydrated, reduce protein if advised, limit sodium, avoid nephrotoxic substances, consult nephrologist.",
	},
}

// SampleContext returns built-in text for common tests, keyed by the
// lower-cased name with whitespace removed, or a generic sentence pair.
func SampleContext(testName string) Context {
	key := strings.Join(strings.Fields(strings.ToLower(testName)), "")
	if c, ok := sampleContexts[key]; ok {
		return c
	}

	return Context{
		BiomarkerInfo: fmt.Sprintf("%s is a biomarker that should be interpreted by a healthcare professional.", testName),
		NutritionInfo: fmt.Sprintf("General healthy eating and lifestyle modifications may help optimize %s levels.", testName),
	}
}
