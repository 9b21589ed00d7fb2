// internal/query/filter.go
package query

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

var (
	ErrInvalidFilter     = errors.New("invalid filter")
	ErrInvalidPagination = errors.New("invalid pagination")
)

// MatchKind selects how a filter parameter is compared against a record.
type MatchKind string

const (
	// MatchExactCI compares after lower-casing both sides. Used for addresses and chain ids.
	MatchExactCI MatchKind = "exact-ci"
	// MatchSubstringCI matches when any target field contains the value, ignoring case.
	MatchSubstringCI MatchKind = "substring-ci"
	// MatchExact compares byte for byte. Used for enum columns.
	MatchExact MatchKind = "exact"
	// MatchBool parses the parameter as a boolean and compares it to the field.
	MatchBool MatchKind = "bool"
)

// Field declares one filterable query parameter of a resource.
//
// Columns and Values must line up: Values(record)[i] is the in-memory value of
// Columns[i]. A record matches when ANY of its values matches.
type Field[T any] struct {
	Param   string
	Aliases []string
	Kind    MatchKind
	Columns []string
	Values  func(T) []string

	// Default is used when the parameter is absent. A parameter that is present
	// but empty disables the filter.
	Default string
}

func (f Field[T]) lookup(params url.Values) (string, bool) {
	for _, name := range append([]string{f.Param}, f.Aliases...) {
		if values, ok := params[name]; ok {
			if len(values) == 0 {
				return "", true
			}
			return values[0], true
		}
	}
	return "", false
}

// Condition is a Field bound to a concrete, normalised value.
type Condition[T any] struct {
	Field Field[T]
	Value string
	Flag  bool
}

func (c Condition[T]) Match(record T) bool {
	for _, v := range c.Field.Values(record) {
		switch c.Field.Kind {
		case MatchSubstringCI:
			if strings.Contains(strings.ToLower(v), c.Value) {
				return true
			}
		case MatchExactCI:
			if strings.ToLower(v) == c.Value {
				return true
			}
		case MatchBool:
			if v == strconv.FormatBool(c.Flag) {
				return true
			}
		default:
			if v == c.Value {
				return true
			}
		}
	}
	return false
}

// Spec is the ordered filter declaration of a resource. Conditions are
// resolved in declaration order.
type Spec[T any] []Field[T]

func (s Spec[T]) Resolve(params url.Values) ([]Condition[T], error) {
	conditions := make([]Condition[T], 0, len(s))
	for _, field := range s {
		raw, present := field.lookup(params)
		if !present {
			raw = field.Default
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}

		condition := Condition[T]{Field: field}
		switch field.Kind {
		case MatchBool:
			flag, err := strconv.ParseBool(raw)
			if err != nil {
				return nil, fmt.Errorf("%w: %s must be true or false", ErrInvalidFilter, field.Param)
			}
			condition.Flag = flag
			condition.Value = strconv.FormatBool(flag)
		case MatchExact:
			condition.Value = raw
		default:
			condition.Value = strings.ToLower(raw)
		}
		conditions = append(conditions, condition)
	}
	return conditions, nil
}

// Request is what a Store receives: the resolved conditions and the page window.
type Request[T any] struct {
	Conditions []Condition[T]
	Page       Page
}

func (r Request[T]) Matches(record T) bool {
	for _, c := range r.Conditions {
		if !c.Match(record) {
			return false
		}
	}
	return true
}

// Evaluate filters records in order, counts the matches and returns the page
// window of them.
func Evaluate[T any](records []T, req Request[T]) ([]T, int) {
	matched := make([]T, 0, len(records))
	for _, record := range records {
		if req.Matches(record) {
			matched = append(matched, record)
		}
	}
	return Paginate(matched, req.Page), len(matched)
}
