// internal/models/ip_asset.go
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// IPAsset is an IP registered on DippChain. Records are keyed by ID for the
// API and by DippChainID on-chain.
type IPAsset struct {
	Seq              uint64     `json:"-" gorm:"primaryKey;autoIncrement"`
	ID               string     `json:"id" gorm:"size:64;uniqueIndex;not null"`
	DippChainID      string     `json:"dippChainId" gorm:"size:66;uniqueIndex;not null"`
	Title            string     `json:"title" gorm:"size:255;not null"`
	Description      string     `json:"description" gorm:"type:text"`
	ImageURL         string     `json:"imageUrl" gorm:"size:512"`
	SourceContract   string     `json:"sourceContract" gorm:"size:42;index"`
	SourceTokenID    string     `json:"sourceTokenId" gorm:"size:78"`
	RegisteredBy     string     `json:"registeredBy" gorm:"size:42;index"`
	RegisteredAt     time.Time  `json:"registeredAt"`
	Fractionalized   bool       `json:"fractionalized" gorm:"index"`
	DetectionEnabled bool       `json:"detectionEnabled"`
	RoyaltyToken     string     `json:"royaltyToken,omitempty" gorm:"size:42;index"`
	TotalSupply      Amount     `json:"totalSupply"`
	IsLocked         bool       `json:"isLocked"`
	Holders          int64      `json:"holders"`
	WatermarkHash    string     `json:"watermarkHash,omitempty" gorm:"size:132"`
	ContentCIDs      StringList `json:"contentCids,omitempty"`
}

func (IPAsset) TableName() string {
	return "ip_assets"
}

func (a IPAsset) RecordID() string {
	return a.ID
}

type Fractionalization struct {
	RoyaltyToken  string          `json:"royaltyToken"`
	TotalSupply   decimal.Decimal `json:"totalSupply"`
	IsLocked      bool            `json:"isLocked"`
	OriginalOwner string          `json:"originalOwner"`
}

// Fractionalization returns nil for assets that have not been fractionalized.
func (a IPAsset) Fractionalization() *Fractionalization {
	if !a.Fractionalized {
		return nil
	}
	return &Fractionalization{
		RoyaltyToken:  a.RoyaltyToken,
		TotalSupply:   a.TotalSupply.Decimal,
		IsLocked:      a.IsLocked,
		OriginalOwner: a.RegisteredBy,
	}
}

type IPStats struct {
	ActiveListings  int64 `json:"activeListings"`
	OpenViolations  int64 `json:"openViolations"`
	ActiveProposals int64 `json:"activeProposals"`
}

// IPDetail is the single-asset view: the list record plus fractionalization
// and activity counts.
type IPDetail struct {
	IPAsset
	Fractionalization *Fractionalization `json:"fractionalization"`
	Stats             IPStats            `json:"stats"`
}
