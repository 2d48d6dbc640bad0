// Package store provides the in-memory quotation archive used when no
// database is configured, and in tests.
package store

import (
	"context"
	"sync"

	"github.com/travelpro/quotes-service/internal/model"
)

type Memory struct {
	mu    sync.Mutex
	order []string
	byID  map[string]model.Quotation
}

func NewMemory() *Memory {
	return &Memory{byID: make(map[string]model.Quotation)}
}

func (m *Memory) Upsert(_ context.Context, q model.Quotation) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := q.Details.ID
	if _, exists := m.byID[id]; !exists {
		m.order = append(m.order, id)
	}
	m.byID[id] = *q.Clone()
	return nil
}

func (m *Memory) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.byID[id]; !exists {
		return nil
	}
	delete(m.byID, id)
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *Memory) List(_ context.Context) ([]model.Quotation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]model.Quotation, 0, len(m.order))
	for _, id := range m.order {
		q := m.byID[id]
		out = append(out, *q.Clone())
	}
	return out, nil
}
