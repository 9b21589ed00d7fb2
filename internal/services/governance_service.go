// internal/services/governance_service.go
package services

import (
	"context"
	"net/url"

	"github.com/dippchain/studio-api/internal/models"
	"github.com/dippchain/studio-api/internal/query"
	"github.com/dippchain/studio-api/internal/store"
)

// ProposalFilters apply in this order: status, dippChainId.
var ProposalFilters = query.Spec[models.Proposal]{
	{
		Param:   "status",
		Kind:    query.MatchExact,
		Columns: []string{"status"},
		Values:  func(p models.Proposal) []string { return one(string(p.Status)) },
	},
	{
		Param:   "dippChainId",
		Aliases: []string{"chainAssetId"},
		Kind:    query.MatchExactCI,
		Columns: []string{"dipp_chain_id"},
		Values:  func(p models.Proposal) []string { return one(p.DippChainID) },
	},
}

type GovernanceService struct {
	proposals *ResourceQuery[models.Proposal]
}

func NewGovernanceService(s store.Store[models.Proposal]) *GovernanceService {
	return &GovernanceService{proposals: NewResourceQuery(s, ProposalFilters)}
}

func (s *GovernanceService) SearchProposals(ctx context.Context, params url.Values, page query.Page) ([]models.Proposal, int64, error) {
	items, total, err := s.proposals.Search(ctx, params, page)
	if err != nil {
		return nil, 0, err
	}
	for i := range items {
		items[i] = items[i].WithTally()
	}
	return items, total, nil
}
