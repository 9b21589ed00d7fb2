// internal/services/listing_service.go
package services

import (
	"context"
	"net/url"

	"github.com/dippchain/studio-api/internal/models"
	"github.com/dippchain/studio-api/internal/query"
	"github.com/dippchain/studio-api/internal/store"
)

// ListingFilters apply in this order: seller, search, royaltyToken, status.
// status defaults to "active"; an explicit empty status lists every status.
var ListingFilters = query.Spec[models.Listing]{
	{
		Param:   "seller",
		Kind:    query.MatchExactCI,
		Columns: []string{"seller"},
		Values:  func(l models.Listing) []string { return one(l.Seller) },
	},
	{
		Param:   "search",
		Kind:    query.MatchSubstringCI,
		Columns: []string{"ip_title", "token_symbol"},
		Values:  func(l models.Listing) []string { return []string{l.IPTitle, l.TokenSymbol} },
	},
	{
		Param:   "royaltyToken",
		Kind:    query.MatchExactCI,
		Columns: []string{"royalty_token"},
		Values:  func(l models.Listing) []string { return one(l.RoyaltyToken) },
	},
	{
		Param:   "status",
		Kind:    query.MatchExact,
		Columns: []string{"status"},
		Values:  func(l models.Listing) []string { return one(string(l.Status)) },
		Default: string(models.ListingStatusActive),
	},
}

type ListingService struct {
	listings *ResourceQuery[models.Listing]
}

func NewListingService(s store.Store[models.Listing]) *ListingService {
	return &ListingService{listings: NewResourceQuery(s, ListingFilters)}
}

func (s *ListingService) Search(ctx context.Context, params url.Values, page query.Page) ([]models.Listing, int64, error) {
	items, total, err := s.listings.Search(ctx, params, page)
	if err != nil {
		return nil, 0, err
	}
	for i := range items {
		items[i] = items[i].WithTotalValue()
	}
	return items, total, nil
}
