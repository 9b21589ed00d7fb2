// internal/database/database_test.go
package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dippchain/studio-api/internal/config"
	"github.com/dippchain/studio-api/internal/models"
	"github.com/dippchain/studio-api/internal/query"
	"github.com/dippchain/studio-api/internal/utils"
)

func TestSeedIntegrity(t *testing.T) {
	seed := Seed()

	chainIDs := map[string]bool{}
	for _, ip := range seed.IPs {
		chainIDs[ip.DippChainID] = true
		assert.True(t, utils.IsEVMAddress(ip.RegisteredBy), ip.RegisteredBy)
		assert.True(t, utils.IsEVMAddress(ip.SourceContract), ip.SourceContract)
		assert.True(t, utils.IsEVMAddress(ip.RoyaltyToken), ip.RoyaltyToken)
	}
	for _, l := range seed.Listings {
		assert.True(t, chainIDs[l.DippChainID], "listing %s references unknown asset", l.ID)
		assert.True(t, utils.IsEVMAddress(l.Seller), l.Seller)
		assert.True(t, utils.IsEVMAddress(l.PaymentToken), l.PaymentToken)
	}
	for _, p := range seed.Proposals {
		assert.True(t, chainIDs[p.DippChainID], "proposal %s references unknown asset", p.ID)
		assert.True(t, utils.IsEVMAddress(p.Proposer), p.Proposer)
	}
	for _, v := range seed.Violations {
		assert.True(t, chainIDs[v.DippChainID], "violation %s references unknown asset", v.ID)
		assert.GreaterOrEqual(t, v.SimilarityScore, 0)
		assert.LessOrEqual(t, v.SimilarityScore, 100)
	}
}

func TestSeedReturnsFreshCopies(t *testing.T) {
	a := Seed()
	a.IPs[0].Title = "changed"
	assert.Equal(t, "Digital Artwork Collection", Seed().IPs[0].Title)
}

func TestMemoryStoresAreSeeded(t *testing.T) {
	stores := MemoryStores()
	ctx := context.Background()

	_, total, err := stores.IPs.List(ctx, query.Request[models.IPAsset]{Page: query.DefaultPage()})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	_, total, err = stores.Violations.List(ctx, query.Request[models.Violation]{Page: query.DefaultPage()})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}

func TestOpenStoresSQLite(t *testing.T) {
	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Driver:   config.DriverSQLite,
			Path:     filepath.Join(t.TempDir(), "studio.db"),
			LogLevel: "silent",
			Seed:     true,
		},
	}

	stores, cleanup, err := OpenStores(cfg)
	require.NoError(t, err)
	defer cleanup()

	ctx := context.Background()
	listings, total, err := stores.Listings.List(ctx, query.Request[models.Listing]{Page: query.DefaultPage()})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, listings, 3)
	assert.Equal(t, "1", listings[0].ID)
	assert.True(t, listings[0].PricePerToken.Equal(dec("0.048").Decimal))

	ip, err := stores.IPs.Get(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "Music Album Rights", ip.Title)
}

func TestSeedingIsIdempotent(t *testing.T) {
	cfg := config.DatabaseConfig{
		Driver:   config.DriverSQLite,
		Path:     filepath.Join(t.TempDir(), "studio.db"),
		LogLevel: "silent",
	}
	db, err := Initialize(cfg)
	require.NoError(t, err)
	defer Close(db)

	require.NoError(t, RunMigrations(db))
	require.NoError(t, SeedInitialData(db))
	require.NoError(t, SeedInitialData(db))

	var count int64
	require.NoError(t, db.Model(&models.Proposal{}).Count(&count).Error)
	assert.Equal(t, int64(3), count)
}

func TestInitializeRejectsMemoryDriver(t *testing.T) {
	_, err := Initialize(config.DatabaseConfig{Driver: config.DriverMemory})
	assert.Error(t, err)
}
