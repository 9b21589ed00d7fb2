// internal/models/models_test.go
package models

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestSchemasParse(t *testing.T) {
	cache := &sync.Map{}
	for _, model := range []interface{}{&IPAsset{}, &Listing{}, &Proposal{}, &Violation{}} {
		s, err := schema.Parse(model, cache, schema.NamingStrategy{})
		require.NoError(t, err, "%T", model)
		assert.NotNil(t, s.LookUpField("ID"), "%T", model)
	}

	ip, err := schema.Parse(&IPAsset{}, cache, schema.NamingStrategy{})
	require.NoError(t, err)
	assert.Equal(t, schema.DataType("text"), ip.LookUpField("ContentCIDs").DataType)
	assert.Equal(t, schema.DataType("text"), ip.LookUpField("TotalSupply").DataType)

	listing, err := schema.Parse(&Listing{}, cache, schema.NamingStrategy{})
	require.NoError(t, err)
	assert.Equal(t, schema.DataType("text"), listing.LookUpField("Amount").DataType)
	assert.Equal(t, schema.DataType("text"), listing.LookUpField("PricePerToken").DataType)
}

func TestStringListNil(t *testing.T) {
	v, err := StringList(nil).Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	var l StringList
	require.NoError(t, l.Scan("{QmA,QmB}"))
	assert.Equal(t, StringList{"QmA", "QmB"}, l)
}

func TestAmountJSON(t *testing.T) {
	data, err := json.Marshal(struct {
		Amount Amount `json:"amount"`
	}{RequireAmount("0.048")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":"0.048"}`, string(data))

	var back struct {
		Amount Amount `json:"amount"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"amount":"123456789012345678.123456789012345678"}`), &back))
	assert.Equal(t, "123456789012345678.123456789012345678", back.Amount.String())
}

func TestDerivedFields(t *testing.T) {
	l := Listing{Amount: RequireAmount("50000"), PricePerToken: RequireAmount("0.048")}.WithTotalValue()
	assert.True(t, l.TotalValue.Equal(decimal.NewFromInt(2400)))

	p := Proposal{
		VotesFor:     RequireAmount("450000"),
		VotesAgainst: RequireAmount("250000"),
		Quorum:       RequireAmount("500000"),
	}.WithTally()
	assert.True(t, p.QuorumMet)
	assert.Equal(t, "64.29", p.SupportPercent.String())

	assert.Nil(t, IPAsset{}.Fractionalization())
	assert.Equal(t, SeverityMedium, Violation{SimilarityScore: 75}.WithSeverity().Severity)
}
