// internal/store/memory/store_test.go
package memory

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dippchain/studio-api/internal/models"
	"github.com/dippchain/studio-api/internal/query"
	"github.com/dippchain/studio-api/internal/store"
)

var statusFilter = query.Spec[models.Violation]{
	{
		Param:   "status",
		Kind:    query.MatchExact,
		Columns: []string{"status"},
		Values:  func(v models.Violation) []string { return []string{string(v.Status)} },
	},
}

func violations() []models.Violation {
	return []models.Violation{
		{ID: "v1", SimilarityScore: 95, Status: models.ViolationStatusPending},
		{ID: "v2", SimilarityScore: 88, Status: models.ViolationStatusChallenged},
		{ID: "v3", SimilarityScore: 92, Status: models.ViolationStatusResolved},
		{ID: "v4", SimilarityScore: 70, Status: models.ViolationStatusPending},
	}
}

func request(t *testing.T, params url.Values, page query.Page) query.Request[models.Violation] {
	t.Helper()
	conditions, err := statusFilter.Resolve(params)
	require.NoError(t, err)
	return query.Request[models.Violation]{Conditions: conditions, Page: page}
}

func TestListKeepsInsertionOrder(t *testing.T) {
	s := New(violations()...)

	items, total, err := s.List(context.Background(), request(t, url.Values{}, query.DefaultPage()))
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	require.Len(t, items, 4)
	for i, want := range []string{"v1", "v2", "v3", "v4"} {
		assert.Equal(t, want, items[i].ID)
	}
}

func TestListFiltersBeforePaginating(t *testing.T) {
	s := New(violations()...)

	items, total, err := s.List(context.Background(),
		request(t, url.Values{"status": {"pending"}}, query.Page{Limit: 1, Offset: 1}))
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, items, 1)
	assert.Equal(t, "v4", items[0].ID)
}

func TestGet(t *testing.T) {
	s := New(violations()...)

	v, err := s.Get(context.Background(), "v3")
	require.NoError(t, err)
	assert.Equal(t, models.ViolationStatusResolved, v.Status)

	_, err = s.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCreate(t *testing.T) {
	s := New[models.Violation]()
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, models.Violation{ID: "v1"}))
	assert.ErrorIs(t, s.Create(ctx, models.Violation{ID: "v1"}), store.ErrDuplicateKey)
	assert.ErrorIs(t, s.Create(ctx, models.Violation{}), store.ErrInvalidInput)
	assert.Equal(t, 1, s.Len())
}

func TestCancelledContext(t *testing.T) {
	s := New(violations()...)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := s.List(ctx, request(t, url.Values{}, query.DefaultPage()))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConcurrentCreateAndList(t *testing.T) {
	s := New[models.Violation]()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, s.Create(ctx, models.Violation{ID: fmt.Sprintf("v%d", i)}))
		}(i)
		go func() {
			defer wg.Done()
			_, _, err := s.List(ctx, query.Request[models.Violation]{Page: query.DefaultPage()})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, s.Len())
}
