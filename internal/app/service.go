package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jonboulle/clockwork"
	"github.com/pscheid92/todolist/internal/adapter/metrics"
	"github.com/pscheid92/todolist/internal/domain"
)

// Service is the application layer. It orchestrates all item use cases.
type Service struct {
	items   domain.ItemRepository
	metrics *metrics.ItemMetrics
	clock   clockwork.Clock
}

// NewService creates the application layer service.
func NewService(items domain.ItemRepository, m *metrics.ItemMetrics, clock clockwork.Clock) *Service {
	m.ItemsStored.Set(float64(items.Len()))
	return &Service{
		items:   items,
		metrics: m,
		clock:   clock,
	}
}

// ListItems returns every item in insertion order.
func (s *Service) ListItems(ctx context.Context) ([]domain.Item, error) {
	items, err := s.items.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}

// AddItem stores a new item and returns the full collection after the insert.
func (s *Service) AddItem(ctx context.Context, item domain.NewItem) ([]domain.Item, error) {
	start := s.clock.Now()
	items, err := s.items.Add(ctx, item)
	s.metrics.AddDuration.Observe(s.clock.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("failed to add item: %w", err)
	}

	s.metrics.ItemsAdded.Inc()
	s.metrics.ItemsStored.Set(float64(len(items)))

	added := items[len(items)-1]
	slog.DebugContext(ctx, "Item added", "item_id", added.ID, "completed", added.Completed, "total", len(items))

	return items, nil
}

// CheckStore reports whether the item repository answers before ctx expires.
func (s *Service) CheckStore(ctx context.Context) error {
	if err := s.items.Ping(ctx); err != nil {
		return fmt.Errorf("item store unavailable: %w", err)
	}
	return nil
}
