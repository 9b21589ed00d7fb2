// internal/models/proposal.go
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Proposal is an IPDAO governance proposal. Vote weights are royalty token
// amounts.
type Proposal struct {
	Seq          uint64         `json:"-" gorm:"primaryKey;autoIncrement"`
	ID           string         `json:"id" gorm:"size:64;uniqueIndex;not null"`
	ProposalID   string         `json:"proposalId" gorm:"size:78;index"`
	DippChainID  string         `json:"dippChainId" gorm:"size:66;index"`
	IPTitle      string         `json:"ipTitle" gorm:"size:255"`
	Title        string         `json:"title" gorm:"size:255;not null"`
	Description  string         `json:"description" gorm:"type:text"`
	Proposer     string         `json:"proposer" gorm:"size:42;index"`
	Status       ProposalStatus `json:"status" gorm:"type:varchar(20);default:'active';index"`
	VotesFor     Amount         `json:"votesFor"`
	VotesAgainst Amount         `json:"votesAgainst"`
	Quorum       Amount         `json:"quorum"`
	TotalSupply  Amount         `json:"totalSupply"`
	EndsAt       time.Time      `json:"endsAt"`

	QuorumMet      bool            `json:"quorumMet" gorm:"-"`
	SupportPercent decimal.Decimal `json:"supportPercent" gorm:"-"`
}

func (Proposal) TableName() string {
	return "proposals"
}

func (p Proposal) RecordID() string {
	return p.ID
}

// WithTally returns a copy with the quorum and support fields filled in.
func (p Proposal) WithTally() Proposal {
	cast := p.VotesFor.Add(p.VotesAgainst.Decimal)
	p.QuorumMet = cast.GreaterThanOrEqual(p.Quorum.Decimal)
	if cast.IsPositive() {
		p.SupportPercent = p.VotesFor.Mul(hundred).DivRound(cast, 2)
	} else {
		p.SupportPercent = decimal.Zero
	}
	return p
}
