// internal/database/stores.go
package database

import (
	"github.com/sirupsen/logrus"

	"github.com/dippchain/studio-api/internal/config"
	"github.com/dippchain/studio-api/internal/models"
	"github.com/dippchain/studio-api/internal/store"
	"github.com/dippchain/studio-api/internal/store/memory"
	"github.com/dippchain/studio-api/internal/store/sqlstore"
)

// MemoryStores returns in-memory stores holding the seed set.
func MemoryStores() store.Stores {
	seed := Seed()
	return store.Stores{
		IPs:        memory.New(seed.IPs...),
		Listings:   memory.New(seed.Listings...),
		Proposals:  memory.New(seed.Proposals...),
		Violations: memory.New(seed.Violations...),
	}
}

// OpenStores builds the stores for the configured driver. The returned
// cleanup releases the database connection, if any.
func OpenStores(cfg *config.Config) (store.Stores, func(), error) {
	if cfg.Database.Driver == config.DriverMemory {
		logrus.Info("Using in-memory stores")
		return MemoryStores(), func() {}, nil
	}

	db, err := Initialize(cfg.Database)
	if err != nil {
		return store.Stores{}, nil, err
	}
	cleanup := func() { Close(db) }

	if err := RunMigrations(db); err != nil {
		cleanup()
		return store.Stores{}, nil, err
	}
	if cfg.Database.Seed {
		if err := SeedInitialData(db); err != nil {
			cleanup()
			return store.Stores{}, nil, err
		}
	}

	return store.Stores{
		IPs:        sqlstore.New[models.IPAsset](db, sqlstore.DefaultOrder),
		Listings:   sqlstore.New[models.Listing](db, sqlstore.DefaultOrder),
		Proposals:  sqlstore.New[models.Proposal](db, sqlstore.DefaultOrder),
		Violations: sqlstore.New[models.Violation](db, sqlstore.DefaultOrder),
	}, cleanup, nil
}
