// internal/services/resource.go
package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/dippchain/studio-api/internal/query"
	"github.com/dippchain/studio-api/internal/store"
)

// ResourceQuery runs the filter → count → paginate pipeline of one resource.
type ResourceQuery[T store.Record] struct {
	store   store.Store[T]
	filters query.Spec[T]
}

func NewResourceQuery[T store.Record](s store.Store[T], filters query.Spec[T]) *ResourceQuery[T] {
	return &ResourceQuery[T]{store: s, filters: filters}
}

// Search resolves params against the filter declaration and returns the page
// window plus the filtered total. Invalid filter values wrap
// query.ErrInvalidFilter.
func (q *ResourceQuery[T]) Search(ctx context.Context, params url.Values, page query.Page) ([]T, int64, error) {
	conditions, err := q.filters.Resolve(params)
	if err != nil {
		return nil, 0, err
	}
	items, total, err := q.store.List(ctx, query.Request[T]{Conditions: conditions, Page: page})
	if err != nil {
		return nil, 0, fmt.Errorf("list: %w", err)
	}
	return items, total, nil
}

// Count returns the number of records matching params.
func (q *ResourceQuery[T]) Count(ctx context.Context, params url.Values) (int64, error) {
	_, total, err := q.Search(ctx, params, query.Page{Limit: 0})
	return total, err
}

func one(value string) []string {
	return []string{value}
}
