// Package memory provides the single-process item repository.
//
// State lives only in process memory and is lost on restart.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/pscheid92/todolist/internal/domain"
)

// ItemStore is an insertion-ordered item collection guarded by one mutex.
// The lock covers only the slice copy and the id+append step.
type ItemStore struct {
	mu    sync.Mutex
	items []domain.Item
}

func NewItemStore() *ItemStore {
	return &ItemStore{items: []domain.Item{}}
}

func (s *ItemStore) List(_ context.Context) ([]domain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshot(), nil
}

// Add appends item with id = last id + 1 (1 on an empty store) and returns
// the collection after the append.
//
// The id rule only holds while the collection never shrinks or reorders. A
// delete operation would need a dedicated counter to avoid reusing ids.
func (s *ItemStore) Add(_ context.Context, item domain.NewItem) ([]domain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append(s.items, domain.Item{
		ID:        s.nextID(),
		Title:     item.Title,
		Completed: item.Completed,
	})
	return s.snapshot(), nil
}

func (s *ItemStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.items)
}

// Ping waits for the store lock and fails if ctx expires first, i.e. when a
// holder has wedged the collection. It copies nothing.
func (s *ItemStore) Ping(ctx context.Context) error {
	acquired := make(chan struct{})
	go func() {
		s.mu.Lock()
		s.mu.Unlock() //nolint:staticcheck // empty critical section: only acquisition matters
		close(acquired)
	}()

	select {
	case <-acquired:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("item store lock not acquired: %w", ctx.Err())
	}
}

// nextID must be called with mu held.
func (s *ItemStore) nextID() int64 {
	if len(s.items) == 0 {
		return 1
	}
	return s.items[len(s.items)-1].ID + 1
}

// snapshot must be called with mu held.
func (s *ItemStore) snapshot() []domain.Item {
	return slices.Clone(s.items)
}
