// internal/query/pagination.go
package query

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

type Page struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

func DefaultPage() Page {
	return Page{Limit: DefaultLimit}
}

// ParsePage validates raw limit/offset parameters. Empty values fall back to
// the defaults; anything that is not a non-negative integer (or a positive one
// for limit) is rejected. Limits above MaxLimit are clamped.
func ParsePage(rawLimit, rawOffset string) (Page, error) {
	page := DefaultPage()

	if s := strings.TrimSpace(rawLimit); s != "" {
		limit, err := strconv.Atoi(s)
		if err != nil {
			return Page{}, fmt.Errorf("%w: limit must be an integer", ErrInvalidPagination)
		}
		if limit <= 0 {
			return Page{}, fmt.Errorf("%w: limit must be greater than 0", ErrInvalidPagination)
		}
		if limit > MaxLimit {
			limit = MaxLimit
		}
		page.Limit = limit
	}

	if s := strings.TrimSpace(rawOffset); s != "" {
		offset, err := strconv.Atoi(s)
		if err != nil {
			return Page{}, fmt.Errorf("%w: offset must be an integer", ErrInvalidPagination)
		}
		if offset < 0 {
			return Page{}, fmt.Errorf("%w: offset must not be negative", ErrInvalidPagination)
		}
		page.Offset = offset
	}

	return page, nil
}

// Paginate returns the [offset, offset+limit) window of items, clamped to the
// slice bounds. The result is never nil.
func Paginate[T any](items []T, page Page) []T {
	if page.Offset >= len(items) || page.Limit <= 0 {
		return []T{}
	}
	end := page.Offset + page.Limit
	if end > len(items) {
		end = len(items)
	}
	window := make([]T, end-page.Offset)
	copy(window, items[page.Offset:end])
	return window
}
