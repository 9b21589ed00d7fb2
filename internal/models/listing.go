// internal/models/listing.go
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Listing is a marketplace offer of royalty tokens.
type Listing struct {
	Seq           uint64        `json:"-" gorm:"primaryKey;autoIncrement"`
	ID            string        `json:"id" gorm:"size:64;uniqueIndex;not null"`
	ListingID     string        `json:"listingId" gorm:"size:78;index"`
	DippChainID   string        `json:"dippChainId" gorm:"size:66;index"`
	IPTitle       string        `json:"ipTitle" gorm:"size:255"`
	TokenSymbol   string        `json:"tokenSymbol" gorm:"size:32"`
	Seller        string        `json:"seller" gorm:"size:42;index"`
	RoyaltyToken  string        `json:"royaltyToken" gorm:"size:42;index"`
	Amount        Amount        `json:"amount" gorm:"not null"`
	PricePerToken Amount        `json:"pricePerToken" gorm:"not null"`
	PaymentToken  string        `json:"paymentToken" gorm:"size:42"`
	ExpiresAt     time.Time     `json:"expiresAt"`
	Status        ListingStatus `json:"status" gorm:"type:varchar(20);default:'active';index"`
	ImageURL      string        `json:"imageUrl,omitempty" gorm:"size:512"`

	TotalValue decimal.Decimal `json:"totalValue" gorm:"-"`
}

func (Listing) TableName() string {
	return "listings"
}

func (l Listing) RecordID() string {
	return l.ID
}

// WithTotalValue returns a copy with TotalValue = Amount × PricePerToken.
func (l Listing) WithTotalValue() Listing {
	l.TotalValue = l.Amount.Mul(l.PricePerToken.Decimal)
	return l
}
