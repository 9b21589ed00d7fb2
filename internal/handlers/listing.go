// internal/handlers/listing.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/dippchain/studio-api/internal/services"
)

type ListingHandler struct {
	listingService *services.ListingService
}

func NewListingHandler(listingService *services.ListingService) *ListingHandler {
	return &ListingHandler{listingService: listingService}
}

// GET /api/listings
func (h *ListingHandler) GetListings(c *gin.Context) {
	list(c, "listings", h.listingService.Search)
}
