/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package knowledge

import (
	"context"
	"fmt"
	"sync"
)

// MemoryStore keeps items in memory. Upserting an existing ID replaces it in
// place, so insertion order is that of first insertion.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[Namespace][]Item
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[Namespace][]Item)}
}

// UpsertKnowledgeItems adds or replaces items.
func (s *MemoryStore) UpsertKnowledgeItems(_ context.Context, items []Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range items {
		if !item.Namespace.Valid() {
			return fmt.Errorf("%w: %q", ErrUnknownNamespace, item.Namespace)
		}

		list := s.items[item.Namespace]

		replaced := false

		for i := range list {
			if list[i].ID == item.ID {
				list[i] = item
				replaced = true

				break
			}
		}

		if !replaced {
			list = append(list, item)
		}

		s.items[item.Namespace] = list
	}

	return nil
}

// Items implements Store. The returned slice is a copy.
func (s *MemoryStore) Items(_ context.Context, ns Namespace) ([]Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Item, len(s.items[ns]))
	copy(out, s.items[ns])

	return out, nil
}
