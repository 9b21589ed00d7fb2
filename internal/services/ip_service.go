// internal/services/ip_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/dippchain/studio-api/internal/models"
	"github.com/dippchain/studio-api/internal/query"
	"github.com/dippchain/studio-api/internal/store"
)

// IPFilters apply in this order: search, fractionalized, owner.
var IPFilters = query.Spec[models.IPAsset]{
	{
		Param:   "search",
		Kind:    query.MatchSubstringCI,
		Columns: []string{"title", "dipp_chain_id"},
		Values:  func(a models.IPAsset) []string { return []string{a.Title, a.DippChainID} },
	},
	{
		Param:   "fractionalized",
		Kind:    query.MatchBool,
		Columns: []string{"fractionalized"},
		Values:  func(a models.IPAsset) []string { return one(strconv.FormatBool(a.Fractionalized)) },
	},
	{
		Param:   "owner",
		Kind:    query.MatchExactCI,
		Columns: []string{"registered_by"},
		Values:  func(a models.IPAsset) []string { return one(a.RegisteredBy) },
	},
}

// The detail view looks records up by chain asset id. These are not exposed
// as list parameters.
var (
	ipsByChainID = query.Spec[models.IPAsset]{
		{
			Param:   "dippChainId",
			Kind:    query.MatchExactCI,
			Columns: []string{"dipp_chain_id"},
			Values:  func(a models.IPAsset) []string { return one(a.DippChainID) },
		},
	}
	listingsByChainID = query.Spec[models.Listing]{
		{
			Param:   "dippChainId",
			Kind:    query.MatchExactCI,
			Columns: []string{"dipp_chain_id"},
			Values:  func(l models.Listing) []string { return one(l.DippChainID) },
		},
		{
			Param:   "status",
			Kind:    query.MatchExact,
			Columns: []string{"status"},
			Values:  func(l models.Listing) []string { return one(string(l.Status)) },
		},
	}
)

type IPService struct {
	ips        *ResourceQuery[models.IPAsset]
	chainIndex *ResourceQuery[models.IPAsset]
	listings   *ResourceQuery[models.Listing]
	proposals  *ResourceQuery[models.Proposal]
	violations *ResourceQuery[models.Violation]
	store      store.Store[models.IPAsset]
}

func NewIPService(stores store.Stores) *IPService {
	return &IPService{
		ips:        NewResourceQuery(stores.IPs, IPFilters),
		chainIndex: NewResourceQuery(stores.IPs, ipsByChainID),
		listings:   NewResourceQuery(stores.Listings, listingsByChainID),
		proposals:  NewResourceQuery(stores.Proposals, ProposalFilters),
		violations: NewResourceQuery(stores.Violations, ViolationFilters),
		store:      stores.IPs,
	}
}

func (s *IPService) Search(ctx context.Context, params url.Values, page query.Page) ([]models.IPAsset, int64, error) {
	return s.ips.Search(ctx, params, page)
}

// GetIPDetail looks the asset up by record id, then by dippChainId, and
// attaches the fractionalization block and activity counts.
func (s *IPService) GetIPDetail(ctx context.Context, id string) (*models.IPDetail, error) {
	asset, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	stats, err := s.stats(ctx, asset.DippChainID)
	if err != nil {
		return nil, err
	}

	return &models.IPDetail{
		IPAsset:           asset,
		Fractionalization: asset.Fractionalization(),
		Stats:             stats,
	}, nil
}

func (s *IPService) find(ctx context.Context, id string) (models.IPAsset, error) {
	asset, err := s.store.Get(ctx, id)
	if err == nil {
		return asset, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return asset, fmt.Errorf("get ip %s: %w", id, err)
	}

	matches, _, err := s.chainIndex.Search(ctx, url.Values{"dippChainId": {id}}, query.Page{Limit: 1})
	if err != nil {
		return models.IPAsset{}, fmt.Errorf("lookup ip %s: %w", id, err)
	}
	if len(matches) == 0 {
		return models.IPAsset{}, store.ErrNotFound
	}
	return matches[0], nil
}

func (s *IPService) stats(ctx context.Context, chainID string) (models.IPStats, error) {
	var stats models.IPStats
	var err error

	if stats.ActiveListings, err = s.listings.Count(ctx, url.Values{
		"dippChainId": {chainID},
		"status":      {string(models.ListingStatusActive)},
	}); err != nil {
		return stats, fmt.Errorf("count listings: %w", err)
	}

	for _, status := range []models.ViolationStatus{models.ViolationStatusPending, models.ViolationStatusChallenged} {
		n, err := s.violations.Count(ctx, url.Values{"dippChainId": {chainID}, "status": {string(status)}})
		if err != nil {
			return stats, fmt.Errorf("count violations: %w", err)
		}
		stats.OpenViolations += n
	}

	if stats.ActiveProposals, err = s.proposals.Count(ctx, url.Values{
		"dippChainId": {chainID},
		"status":      {string(models.ProposalStatusActive)},
	}); err != nil {
		return stats, fmt.Errorf("count proposals: %w", err)
	}

	return stats, nil
}
