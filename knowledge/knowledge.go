/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */

// Package knowledge holds the biomarker and nutrition snippets used to ground
// explanations, and ranks them against a query vector.
package knowledge

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/humaidq/vitalsense/embedding"
)

// Namespace partitions the corpus.
type Namespace string

// Known namespaces.
const (
	NamespaceBiomarkers Namespace = "biomarkers"
	NamespaceNutrition  Namespace = "nutrition_guidelines"
)

// Valid reports whether ns is a known namespace.
func (ns Namespace) Valid() bool {
	return ns == NamespaceBiomarkers || ns == NamespaceNutrition
}

// Item is one stored snippet with its vector.
type Item struct {
	ID        string    `json:"id"`
	Namespace Namespace `json:"namespace"`
	Text      string    `json:"text"`
	Category  string    `json:"category"`
	Vector    []float32 `json:"-"`
	// Encoder names the encoder that produced Vector.
	Encoder string `json:"-"`
}

// Match is an item with its similarity to the query.
type Match struct {
	Item
	Score float64 `json:"score"`
}

// Store returns the items of a namespace in insertion order.
type Store interface {
	Items(ctx context.Context, ns Namespace) ([]Item, error)
}

// Retriever ranks stored items by cosine similarity.
type Retriever struct {
	store      Store
	dimensions int
}

// NewRetriever returns a Retriever over store expecting vectors of the given
// size. A non-positive size means embedding.Dimension.
func NewRetriever(store Store, dimensions int) *Retriever {
	if dimensions <= 0 {
		dimensions = embedding.Dimension
	}

	return &Retriever{store: store, dimensions: dimensions}
}

// Query returns at most topK items from ns, most similar first. Items with
// equal scores keep their store order.
func (r *Retriever) Query(ctx context.Context, ns Namespace, vector []float32, topK int) ([]Match, error) {
	if err := embedding.CheckDimension(vector, r.dimensions); err != nil {
		return nil, err
	}

	if topK <= 0 {
		return []Match{}, nil
	}

	items, err := r.store.Items(ctx, ns)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s items: %w", ns, err)
	}

	matches := make([]Match, 0, len(items))
	for _, item := range items {
		if err := embedding.CheckDimension(item.Vector, r.dimensions); err != nil {
			return nil, fmt.Errorf("stored %s item %q: %w", ns, item.ID, err)
		}

		matches = append(matches, Match{Item: item, Score: CosineSimilarity(vector, item.Vector)})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > topK {
		matches = matches[:topK]
	}

	return matches, nil
}

// CosineSimilarity returns the cosine of the angle between a and b, or 0 if
// the lengths differ or either vector is zero.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64

	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
