// internal/services/violation_service.go
package services

import (
	"context"
	"net/url"

	"github.com/dippchain/studio-api/internal/models"
	"github.com/dippchain/studio-api/internal/query"
	"github.com/dippchain/studio-api/internal/store"
)

// ViolationFilters apply in this order: dippChainId, status.
var ViolationFilters = query.Spec[models.Violation]{
	{
		Param:   "dippChainId",
		Aliases: []string{"chainAssetId"},
		Kind:    query.MatchExactCI,
		Columns: []string{"dipp_chain_id"},
		Values:  func(v models.Violation) []string { return one(v.DippChainID) },
	},
	{
		Param:   "status",
		Kind:    query.MatchExact,
		Columns: []string{"status"},
		Values:  func(v models.Violation) []string { return one(string(v.Status)) },
	},
}

type ViolationService struct {
	violations *ResourceQuery[models.Violation]
}

func NewViolationService(s store.Store[models.Violation]) *ViolationService {
	return &ViolationService{violations: NewResourceQuery(s, ViolationFilters)}
}

func (s *ViolationService) Search(ctx context.Context, params url.Values, page query.Page) ([]models.Violation, int64, error) {
	items, total, err := s.violations.Search(ctx, params, page)
	if err != nil {
		return nil, 0, err
	}
	for i := range items {
		items[i] = items[i].WithSeverity()
	}
	return items, total, nil
}
