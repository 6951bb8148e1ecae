/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"context"
	"fmt"

	"github.com/humaidq/vitalsense/knowledge"
)

// UpsertKnowledgeItems inserts or replaces corpus items. Replaced items keep
// their original position in the namespace.
func (s *Store) UpsertKnowledgeItems(ctx context.Context, items []knowledge.Item) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO knowledge_items (namespace, item_id, text, category, vector, encoder)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (namespace, item_id) DO UPDATE
		SET text = EXCLUDED.text,
		    category = EXCLUDED.category,
		    vector = EXCLUDED.vector,
		    encoder = EXCLUDED.encoder,
		    updated_at = now()
	`

	for _, item := range items {
		if !item.Namespace.Valid() {
			return fmt.Errorf("%w: %q", knowledge.ErrUnknownNamespace, item.Namespace)
		}

		if _, err := tx.Exec(ctx, query, string(item.Namespace), item.ID, item.Text, item.Category, item.Vector, item.Encoder); err != nil {
			return fmt.Errorf("failed to upsert knowledge item %s: %w", item.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit knowledge items: %w", err)
	}

	return nil
}

// Items implements knowledge.Store.
func (s *Store) Items(ctx context.Context, ns knowledge.Namespace) ([]knowledge.Item, error) {
	query := `
		SELECT item_id, namespace, text, category, vector, encoder
		FROM knowledge_items
		WHERE namespace = $1
		ORDER BY seq
	`

	rows, err := s.pool.Query(ctx, query, string(ns))
	if err != nil {
		return nil, fmt.Errorf("failed to list knowledge items: %w", err)
	}
	defer rows.Close()

	var items []knowledge.Item

	for rows.Next() {
		var (
			item      knowledge.Item
			namespace string
		)

		if err := rows.Scan(&item.ID, &namespace, &item.Text, &item.Category, &item.Vector, &item.Encoder); err != nil {
			return nil, fmt.Errorf("failed to scan knowledge item: %w", err)
		}

		item.Namespace = knowledge.Namespace(namespace)
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating knowledge items: %w", err)
	}

	return items, nil
}

// KnowledgeItemCount returns the number of stored items in ns.
func (s *Store) KnowledgeItemCount(ctx context.Context, ns knowledge.Namespace) (int, error) {
	var n int
	if err := s.pool.QueryRow(ctx, `SELECT count(*) FROM knowledge_items WHERE namespace = $1`, string(ns)).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count knowledge items: %w", err)
	}

	return n, nil
}

// KnowledgeEncoders returns the distinct encoder names recorded for the
// items in ns, sorted. An unseeded namespace yields none.
func (s *Store) KnowledgeEncoders(ctx context.Context, ns knowledge.Namespace) ([]string, error) {
	rows, err := s.pool.Query(ctx, `SELECT DISTINCT encoder FROM knowledge_items WHERE namespace = $1 ORDER BY encoder`, string(ns))
	if err != nil {
		return nil, fmt.Errorf("failed to list knowledge encoders: %w", err)
	}
	defer rows.Close()

	var names []string

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan knowledge encoder: %w", err)
		}

		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating knowledge encoders: %w", err)
	}

	return names, nil
}
