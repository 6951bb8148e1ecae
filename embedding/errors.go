/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package embedding

import "errors"

var (
	// ErrDimensionMismatch is returned when a vector does not have the
	// configured number of dimensions.
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")
	// ErrUnknownProvider is returned for an unsupported encoder name.
	ErrUnknownProvider = errors.New("unknown embedding provider")
	// ErrMissingAPIKey is returned when a remote provider has no API key.
	ErrMissingAPIKey = errors.New("embedding provider requires an API key")
	// ErrEmptyEmbedding is returned when a provider returns no vector.
	ErrEmptyEmbedding = errors.New("provider returned no embedding")
)
