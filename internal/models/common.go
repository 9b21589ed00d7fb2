// internal/models/common.go
package models

import (
	"database/sql/driver"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// StringList is a list column: text[] on PostgreSQL, the array literal as
// text elsewhere.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return pq.StringArray(l).Value()
}

func (l *StringList) Scan(value interface{}) error {
	var arr pq.StringArray
	if err := arr.Scan(value); err != nil {
		return err
	}
	*l = StringList(arr)
	return nil
}

func (StringList) GormDataType() string {
	return "text"
}

func (StringList) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "text[]"
	}
	return "text"
}

// Amount is a decimal column: numeric on PostgreSQL, the decimal string as
// text elsewhere, so no dialect ever stores it as a float.
type Amount struct {
	decimal.Decimal
}

func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

// RequireAmount parses s and panics on malformed input. For fixtures only.
func RequireAmount(s string) Amount {
	return Amount{Decimal: decimal.RequireFromString(s)}
}

func (Amount) GormDataType() string {
	return "text"
}

func (Amount) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "numeric"
	}
	return "text"
}

// Enums
type ListingStatus string

const (
	ListingStatusActive    ListingStatus = "active"
	ListingStatusExpired   ListingStatus = "expired"
	ListingStatusCancelled ListingStatus = "cancelled"
	ListingStatusFilled    ListingStatus = "filled"
)

type ProposalStatus string

const (
	ProposalStatusActive   ProposalStatus = "active"
	ProposalStatusPassed   ProposalStatus = "passed"
	ProposalStatusRejected ProposalStatus = "rejected"
)

type ViolationStatus string

const (
	ViolationStatusPending    ViolationStatus = "pending"
	ViolationStatusChallenged ViolationStatus = "challenged"
	ViolationStatusResolved   ViolationStatus = "resolved"
	ViolationStatusDismissed  ViolationStatus = "dismissed"
)

type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)
