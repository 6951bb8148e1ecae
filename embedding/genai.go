/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package embedding

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// DefaultGenAIModel is used when no embedding model is configured.
const DefaultGenAIModel = "gemini-embedding-001"

// GenAIEncoder embeds text with the Gemini embedding API, truncated to
// Dimension outputs so that it is interchangeable with HashEncoder.
type GenAIEncoder struct {
	client   *genai.Client
	model    string
	taskType string
}

// NewGenAIEncoder creates a Gemini API client for embeddings.
func NewGenAIEncoder(ctx context.Context, apiKey, model string) (*GenAIEncoder, error) {
	return newGenAIEncoder(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}, model)
}

func newGenAIEncoder(ctx context.Context, cc *genai.ClientConfig, model string) (*GenAIEncoder, error) {
	if strings.TrimSpace(cc.APIKey) == "" {
		return nil, ErrMissingAPIKey
	}

	if model == "" {
		model = DefaultGenAIModel
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GenAIEncoder{
		client:   client,
		model:    model,
		taskType: "SEMANTIC_SIMILARITY",
	}, nil
}

// Name implements Encoder.
func (e *GenAIEncoder) Name() string {
	return fmt.Sprintf("%s:%s", ProviderGenAI, e.model)
}

// Dimensions implements Encoder.
func (e *GenAIEncoder) Dimensions() int { return Dimension }

// Encode implements Encoder.
func (e *GenAIEncoder) Encode(ctx context.Context, text string) ([]float32, error) {
	dims := int32(Dimension)

	result, err := e.client.Models.EmbedContent(ctx,
		e.model,
		[]*genai.Content{genai.NewContentFromText(text, genai.RoleUser)},
		&genai.EmbedContentConfig{
			TaskType:             e.taskType,
			OutputDimensionality: &dims,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to embed text: %w", err)
	}

	if len(result.Embeddings) == 0 || result.Embeddings[0] == nil {
		return nil, ErrEmptyEmbedding
	}

	values := result.Embeddings[0].Values
	if err := CheckDimension(values, Dimension); err != nil {
		return nil, err
	}

	return values, nil
}
