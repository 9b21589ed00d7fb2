// internal/store/memory/store.go
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/dippchain/studio-api/internal/query"
	"github.com/dippchain/studio-api/internal/store"
)

// Store keeps records in insertion order.
type Store[T store.Record] struct {
	mu      sync.RWMutex
	records []T
	index   map[string]int
}

func New[T store.Record](seed ...T) *Store[T] {
	s := &Store[T]{index: make(map[string]int, len(seed))}
	for _, r := range seed {
		// Seed data with duplicate ids is a programming error.
		if err := s.insert(r); err != nil {
			panic(err)
		}
	}
	return s
}

func (s *Store[T]) List(ctx context.Context, req query.Request[T]) ([]T, int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	items, total := query.Evaluate(s.records, req)
	return items, int64(total), nil
}

func (s *Store[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return zero, store.ErrNotFound
	}
	return s.records[i], nil
}

func (s *Store[T]) Create(ctx context.Context, record T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insert(record)
}

func (s *Store[T]) insert(record T) error {
	id := record.RecordID()
	if id == "" {
		return fmt.Errorf("%w: empty id", store.ErrInvalidInput)
	}
	if _, exists := s.index[id]; exists {
		return fmt.Errorf("%w: %s", store.ErrDuplicateKey, id)
	}
	s.index[id] = len(s.records)
	s.records = append(s.records, record)
	return nil
}

// Len reports the number of stored records.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
