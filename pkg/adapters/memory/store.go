package memory

import (
	"context"
	"sync"

	"github.com/aretw0/teamtree/pkg/domain"
)

// Store implements ports.ChartStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*domain.Chart
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*domain.Chart),
	}
}

// Save persists a deep copy of the chart.
func (s *Store) Save(ctx context.Context, chart *domain.Chart) error {
	copied := chart.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[chart.ID] = copied
	return nil
}

// Load retrieves the chart from memory.
func (s *Store) Load(ctx context.Context, id string) (*domain.Chart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	chart, ok := s.data[id]
	if !ok {
		return nil, domain.ErrChartNotFound
	}

	// Copy on read so callers can't mutate store state through the pointer
	return chart.Clone(), nil
}

// Delete removes the chart.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
	return nil
}

// List returns stored chart IDs.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	return ids, nil
}
