/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package knowledge

import (
	"context"
	"fmt"

	"github.com/humaidq/vitalsense/embedding"
)

// Sink persists encoded items.
type Sink interface {
	UpsertKnowledgeItems(ctx context.Context, items []Item) error
}

// Ingest encodes items with enc and writes them to sink. Every item must
// belong to a known namespace and every vector must match the encoder's
// dimensions; otherwise nothing is written.
func Ingest(ctx context.Context, enc embedding.Encoder, sink Sink, items []Item) (int, error) {
	encoded := make([]Item, 0, len(items))

	for _, item := range items {
		if !item.Namespace.Valid() {
			return 0, fmt.Errorf("%w: %q (item %s)", ErrUnknownNamespace, item.Namespace, item.ID)
		}

		vec, err := enc.Encode(ctx, item.Text)
		if err != nil {
			return 0, fmt.Errorf("failed to encode item %s: %w", item.ID, err)
		}

		if err := embedding.CheckDimension(vec, enc.Dimensions()); err != nil {
			return 0, fmt.Errorf("item %s: %w", item.ID, err)
		}

		item.Vector = vec
		item.Encoder = enc.Name()
		encoded = append(encoded, item)

		logger.Debug("Encoded knowledge item", "id", item.ID, "namespace", item.Namespace)
	}

	if len(encoded) == 0 {
		return 0, nil
	}

	if err := sink.UpsertKnowledgeItems(ctx, encoded); err != nil {
		return 0, fmt.Errorf("failed to store knowledge items: %w", err)
	}

	logger.Info("Ingested knowledge items", "count", len(encoded), "encoder", enc.Name())

	return len(encoded), nil
}
