/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package embedding

import (
	"context"
	"math"
	"math/rand/v2"
	"regexp"
	"strings"
)

const (
	hashSeeds     = 3
	bigramWeight  = 0.5
	minTokenLen   = 3
	fallbackScale = 0.01
)

var nonWordPattern = regexp.MustCompile(`[^A-Za-z0-9_\s]`)

// HashEncoder is a dependency-free feature-hashing encoder. Equal input
// always produces the same vector, except for text with no usable tokens,
// which gets a small random vector.
type HashEncoder struct {
	random func() float64
}

// NewHashEncoder returns a HashEncoder using the global random source for
// its empty-input fallback.
func NewHashEncoder() *HashEncoder {
	return &HashEncoder{random: rand.Float64}
}

// Name implements Encoder.
func (e *HashEncoder) Name() string { return ProviderHash }

// Dimensions implements Encoder.
func (e *HashEncoder) Dimensions() int { return Dimension }

// Encode implements Encoder. It never fails.
func (e *HashEncoder) Encode(_ context.Context, text string) ([]float32, error) {
	return e.Vector(text), nil
}

// Vector computes the hashed embedding of text.
func (e *HashEncoder) Vector(text string) []float32 {
	tokens := Tokenize(text)
	acc := make([]float64, Dimension)

	freq := make(map[string]int, len(tokens))

	var order []string

	for _, tok := range tokens {
		if freq[tok] == 0 {
			order = append(order, tok)
		}

		freq[tok]++
	}

	for _, tok := range order {
		for seed := range hashSeeds {
			acc[bucket(tok, int32(seed))] += float64(freq[tok]) / float64(seed+1)
		}
	}

	for i := 0; i+1 < len(tokens); i++ {
		acc[bucket(tokens[i]+"_"+tokens[i+1], 0)] += bigramWeight
	}

	var sum float64
	for _, v := range acc {
		sum += v * v
	}

	out := make([]float32, Dimension)

	if sum == 0 {
		random := e.random
		if random == nil {
			random = rand.Float64
		}

		for i := range out {
			v := (random() - 0.5) * fallbackScale
			if v == 0 {
				v = fallbackScale / 4
			}

			out[i] = float32(v)
		}

		return out
	}

	norm := math.Sqrt(sum)
	for i, v := range acc {
		out[i] = float32(v / norm)
	}

	return out
}

// Tokenize lower-cases text, turns every character outside [A-Za-z0-9_]
// into a separator and keeps tokens of at least three characters.
func Tokenize(text string) []string {
	cleaned := nonWordPattern.ReplaceAllString(strings.ToLower(text), " ")

	var tokens []string

	for _, tok := range strings.Fields(cleaned) {
		if len(tok) >= minTokenLen {
			tokens = append(tokens, tok)
		}
	}

	return tokens
}

// hash32 is the 31-multiplier string hash with wrapping signed 32-bit
// arithmetic. Tokens are ASCII after Tokenize.
func hash32(s string, seed int32) int32 {
	h := seed
	for i := 0; i < len(s); i++ {
		h = h*31 + int32(s[i])
	}

	return h
}

func bucket(s string, seed int32) int {
	h := int64(hash32(s, seed))
	if h < 0 {
		h = -h
	}

	return int(h % Dimension)
}
