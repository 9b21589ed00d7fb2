// internal/store/sqlstore/store.go
package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/dippchain/studio-api/internal/query"
	"github.com/dippchain/studio-api/internal/store"
)

// DefaultOrder keeps results in insertion order, matching the memory store.
const DefaultOrder = "seq ASC"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Store is a gorm-backed store.Store. The entity's table must carry an "id"
// column and the ordering column.
type Store[T store.Record] struct {
	db      *gorm.DB
	orderBy string
}

func New[T store.Record](db *gorm.DB, orderBy string) *Store[T] {
	if orderBy == "" {
		orderBy = DefaultOrder
	}
	return &Store[T]{db: db, orderBy: orderBy}
}

func (s *Store[T]) List(ctx context.Context, req query.Request[T]) ([]T, int64, error) {
	tx := s.db.WithContext(ctx).Model(new(T))
	for _, c := range req.Conditions {
		clause, args := where(c)
		tx = tx.Where(clause, args...)
	}
	tx = tx.Session(&gorm.Session{})

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count: %w", err)
	}

	items := make([]T, 0)
	if req.Page.Limit <= 0 || int64(req.Page.Offset) >= total {
		return items, total, nil
	}
	if err := tx.Order(s.orderBy).Offset(req.Page.Offset).Limit(req.Page.Limit).Find(&items).Error; err != nil {
		return nil, 0, fmt.Errorf("find: %w", err)
	}
	return items, total, nil
}

func (s *Store[T]) Get(ctx context.Context, id string) (T, error) {
	var record T
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return record, store.ErrNotFound
	}
	if err != nil {
		return record, fmt.Errorf("get %s: %w", id, err)
	}
	return record, nil
}

func (s *Store[T]) Create(ctx context.Context, record T) error {
	id := record.RecordID()
	if id == "" {
		return fmt.Errorf("%w: empty id", store.ErrInvalidInput)
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(new(T)).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("%w: %s", store.ErrDuplicateKey, id)
		}
		if err := tx.Create(&record).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("%w: %s", store.ErrDuplicateKey, id)
			}
			return err
		}
		return nil
	})
}

// where renders a condition as an OR over its columns.
func where[T any](c query.Condition[T]) (string, []interface{}) {
	parts := make([]string, 0, len(c.Field.Columns))
	args := make([]interface{}, 0, len(c.Field.Columns))
	for _, col := range c.Field.Columns {
		switch c.Field.Kind {
		case query.MatchSubstringCI:
			parts = append(parts, fmt.Sprintf(`LOWER(%s) LIKE ? ESCAPE '\'`, col))
			args = append(args, "%"+likeEscaper.Replace(c.Value)+"%")
		case query.MatchExactCI:
			parts = append(parts, fmt.Sprintf("LOWER(%s) = ?", col))
			args = append(args, c.Value)
		case query.MatchBool:
			parts = append(parts, fmt.Sprintf("%s = ?", col))
			args = append(args, c.Flag)
		default:
			parts = append(parts, fmt.Sprintf("%s = ?", col))
			args = append(args, c.Value)
		}
	}
	if len(parts) == 1 {
		return parts[0], args
	}
	return "(" + strings.Join(parts, " OR ") + ")", args
}
