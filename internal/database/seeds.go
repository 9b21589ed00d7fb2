// internal/database/seeds.go
package database

import (
	"time"

	"github.com/dippchain/studio-api/internal/models"
)

const (
	ownerArtwork = "0x742d35Cc6634C0532925a3b844Bc9e7595f9876A"
	ownerMusic   = "0x1234567890123456789012345678901234567890"
	zeroAddress  = "0x0000000000000000000000000000000000000000"

	chainArtwork = "0x1a2b3c4d5e6f7a8b"
	chainMusic   = "0x5e6f7a8b9c0d1e2f"

	tokenArtwork = "0xDEf0000000000000000000000000000000005678"
	tokenMusic   = "0x9aBc000000000000000000000000000000003456"

	imageArtwork = "https://images.unsplash.com/photo-1620641788421-7a1c342ea42e?w=400&h=400&fit=crop"
	imageMusic   = "https://images.unsplash.com/photo-1511379938547-c1f69419868d?w=400&h=400&fit=crop"
)

// SeedSet is the indexed data the dashboard ships with.
type SeedSet struct {
	IPs        []models.IPAsset
	Listings   []models.Listing
	Proposals  []models.Proposal
	Violations []models.Violation
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) models.Amount {
	return models.RequireAmount(s)
}

// Seed returns a fresh copy of the seed set.
func Seed() SeedSet {
	return SeedSet{
		IPs: []models.IPAsset{
			{
				ID:               "1",
				DippChainID:      chainArtwork,
				Title:            "Digital Artwork Collection",
				Description:      "Exclusive NFT collection featuring cyberpunk themes",
				ImageURL:         imageArtwork,
				SourceContract:   "0xAbCd000000000000000000000000000000001234",
				SourceTokenID:    "42",
				RegisteredBy:     ownerArtwork,
				RegisteredAt:     day(2025, time.January, 15),
				Fractionalized:   true,
				DetectionEnabled: true,
				RoyaltyToken:     tokenArtwork,
				TotalSupply:      dec("1000000"),
				Holders:          127,
			},
			{
				ID:               "2",
				DippChainID:      chainMusic,
				Title:            "Music Album Rights",
				Description:      "Original soundtrack for indie game project",
				ImageURL:         imageMusic,
				SourceContract:   "0x5678000000000000000000000000000000009012",
				SourceTokenID:    "15",
				RegisteredBy:     ownerMusic,
				RegisteredAt:     day(2025, time.January, 10),
				Fractionalized:   true,
				DetectionEnabled: false,
				RoyaltyToken:     tokenMusic,
				TotalSupply:      dec("1000000"),
				Holders:          89,
			},
		},
		Listings: []models.Listing{
			{
				ID:            "1",
				ListingID:     "1",
				DippChainID:   chainArtwork,
				IPTitle:       "Digital Artwork Collection",
				TokenSymbol:   "DAC",
				Seller:        ownerArtwork,
				RoyaltyToken:  tokenArtwork,
				Amount:        dec("50000"),
				PricePerToken: dec("0.048"),
				PaymentToken:  zeroAddress,
				ExpiresAt:     day(2025, time.February, 1),
				Status:        models.ListingStatusActive,
				ImageURL:      imageArtwork,
			},
			{
				ID:            "2",
				ListingID:     "2",
				DippChainID:   chainMusic,
				IPTitle:       "Music Album Rights",
				TokenSymbol:   "MAR",
				Seller:        ownerMusic,
				RoyaltyToken:  tokenMusic,
				Amount:        dec("25000"),
				PricePerToken: dec("0.035"),
				PaymentToken:  zeroAddress,
				ExpiresAt:     day(2025, time.January, 28),
				Status:        models.ListingStatusActive,
				ImageURL:      imageMusic,
			},
			{
				ID:            "3",
				ListingID:     "3",
				DippChainID:   chainArtwork,
				IPTitle:       "Digital Artwork Collection",
				TokenSymbol:   "DAC",
				Seller:        ownerMusic,
				RoyaltyToken:  tokenArtwork,
				Amount:        dec("10000"),
				PricePerToken: dec("0.05"),
				PaymentToken:  zeroAddress,
				ExpiresAt:     day(2025, time.January, 20),
				Status:        models.ListingStatusCancelled,
				ImageURL:      imageArtwork,
			},
		},
		Proposals: []models.Proposal{
			{
				ID:           "1",
				ProposalID:   "1",
				DippChainID:  chainArtwork,
				IPTitle:      "Digital Artwork Collection",
				Title:        "Increase Revenue Distribution Frequency",
				Description:  "Proposal to distribute revenue monthly instead of quarterly",
				Proposer:     ownerArtwork,
				Status:       models.ProposalStatusActive,
				VotesFor:     dec("750000"),
				VotesAgainst: dec("150000"),
				Quorum:       dec("500000"),
				TotalSupply:  dec("1000000"),
				EndsAt:       day(2025, time.February, 1),
			},
			{
				ID:           "2",
				ProposalID:   "2",
				DippChainID:  chainArtwork,
				IPTitle:      "Digital Artwork Collection",
				Title:        "Enable Derivative Licensing",
				Description:  "Allow commercial derivatives under a 10% revenue share",
				Proposer:     "0x1234000000000000000000000000000000005678",
				Status:       models.ProposalStatusActive,
				VotesFor:     dec("450000"),
				VotesAgainst: dec("250000"),
				Quorum:       dec("500000"),
				TotalSupply:  dec("1000000"),
				EndsAt:       day(2025, time.February, 5),
			},
			{
				ID:           "3",
				ProposalID:   "3",
				DippChainID:  chainMusic,
				IPTitle:      "Music Album Rights",
				Title:        "Fund Soundtrack Remaster",
				Description:  "Allocate vault yield to remaster the original soundtrack",
				Proposer:     ownerMusic,
				Status:       models.ProposalStatusPassed,
				VotesFor:     dec("820000"),
				VotesAgainst: dec("80000"),
				Quorum:       dec("500000"),
				TotalSupply:  dec("1000000"),
				EndsAt:       day(2025, time.January, 15),
			},
		},
		Violations: []models.Violation{
			{
				ID:              "1",
				ViolationID:     "1",
				DippChainID:     chainArtwork,
				IPTitle:         "Digital Artwork Collection",
				DetectedURL:     "https://example.com/stolen-art",
				SimilarityScore: 95,
				EvidenceHash:    "QmYwAPJzv5CZsnA625s3Xf2nemtYgPpHdWEz79ojWnPbdG",
				ReportedAt:      day(2025, time.January, 22),
				Status:          models.ViolationStatusPending,
				Reporter:        "AI Detection System",
			},
			{
				ID:              "2",
				ViolationID:     "2",
				DippChainID:     chainMusic,
				IPTitle:         "Music Album Rights",
				DetectedURL:     "https://example.com/unlicensed-track",
				SimilarityScore: 88,
				EvidenceHash:    "QmT78zSuBmuS4z925WZfrqQ1qHaJ56DQaTfyMUF7F8ff5o",
				ReportedAt:      day(2025, time.January, 18),
				Status:          models.ViolationStatusChallenged,
				Reporter:        "AI Detection System",
				ChallengeNote:   "Track is a licensed cover with attribution",
			},
			{
				ID:              "3",
				ViolationID:     "3",
				DippChainID:     chainArtwork,
				IPTitle:         "Digital Artwork Collection",
				DetectedURL:     "https://example.com/reposted-collection",
				SimilarityScore: 92,
				EvidenceHash:    "QmPZ9gcCEpqKTo6aq61g2nXGUhM4iCL3ewB6LDXZCtioEB",
				ReportedAt:      day(2025, time.January, 12),
				Status:          models.ViolationStatusResolved,
				Reporter:        "Community Report",
				Resolution:      "Content removed after takedown notice",
			},
		},
	}
}
