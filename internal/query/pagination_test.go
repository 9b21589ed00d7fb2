package query

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePage(t *testing.T) {
	tests := []struct {
		name    string
		limit   string
		offset  string
		want    Page
		wantErr bool
	}{
		{name: "defaults", want: Page{Limit: 20, Offset: 0}},
		{name: "explicit", limit: "5", offset: "10", want: Page{Limit: 5, Offset: 10}},
		{name: "whitespace", limit: " 7 ", offset: " 1", want: Page{Limit: 7, Offset: 1}},
		{name: "clamped", limit: "1000", want: Page{Limit: MaxLimit}},
		{name: "non numeric limit", limit: "abc", wantErr: true},
		{name: "non numeric offset", offset: "1.5", wantErr: true},
		{name: "zero limit", limit: "0", wantErr: true},
		{name: "negative limit", limit: "-3", wantErr: true},
		{name: "negative offset", offset: "-1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePage(tt.limit, tt.offset)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidPagination))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPaginateWindowLength(t *testing.T) {
	items := []int{0, 1, 2, 3, 4, 5, 6}

	for limit := 1; limit <= 9; limit++ {
		for offset := 0; offset <= 9; offset++ {
			got := Paginate(items, Page{Limit: limit, Offset: offset})
			want := len(items) - offset
			if want < 0 {
				want = 0
			}
			if limit < want {
				want = limit
			}
			require.Len(t, got, want, "limit=%d offset=%d", limit, offset)
			if want > 0 {
				assert.Equal(t, offset, got[0])
			}
		}
	}
}

func TestPaginateNeverNil(t *testing.T) {
	got := Paginate([]string{"a"}, Page{Limit: 5, Offset: 3})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestPaginateCopiesWindow(t *testing.T) {
	items := []int{1, 2, 3}
	got := Paginate(items, Page{Limit: 2})
	got[0] = 99
	assert.Equal(t, 1, items[0])
}
