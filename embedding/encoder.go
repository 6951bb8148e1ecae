/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */

// Package embedding maps text to fixed-size vectors for knowledge
// retrieval.
package embedding

import (
	"context"
	"fmt"
	"strings"
)

// Dimension is the vector size shared by every encoder and the stored
// knowledge corpus.
const Dimension = 1536

// Encoder turns text into a vector of Dimensions() floats.
type Encoder interface {
	Encode(ctx context.Context, text string) ([]float32, error)
	Dimensions() int
	Name() string
}

// Provider names accepted by NewEncoder.
const (
	ProviderHash  = "hash"
	ProviderGenAI = "genai"
)

// Config selects and configures an encoder.
type Config struct {
	Provider string
	APIKey   string
	Model    string
}

// NewEncoder builds the encoder named by cfg.Provider. An empty provider
// selects the hash encoder.
func NewEncoder(ctx context.Context, cfg Config) (Encoder, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", ProviderHash:
		return NewHashEncoder(), nil
	case ProviderGenAI:
		return NewGenAIEncoder(ctx, cfg.APIKey, cfg.Model)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}

// CheckDimension returns ErrDimensionMismatch unless len(vec) == want.
func CheckDimension(vec []float32, want int) error {
	if len(vec) != want {
		return fmt.Errorf("%w: got %d, want %d", ErrDimensionMismatch, len(vec), want)
	}

	return nil
}
