// internal/database/connection.go
package database

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"github.com/dippchain/studio-api/internal/config"
	"github.com/dippchain/studio-api/internal/models"
)

func gormLogLevel(level string) logger.LogLevel {
	switch level {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

func dialector(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return postgres.Open(cfg.DSN()), nil
	case config.DriverSQLite:
		// pure-Go driver registered by modernc.org/sqlite
		return sqlite.Dialector{DriverName: "sqlite", DSN: cfg.DSN()}, nil
	default:
		return nil, fmt.Errorf("driver %q has no SQL backend", cfg.Driver)
	}
}

func Initialize(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dial, err := dialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dial, &gorm.Config{
		Logger:         logger.Default.LogMode(gormLogLevel(cfg.LogLevel)),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying sql.DB
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Configure connection pool
	if cfg.Driver == config.DriverSQLite {
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Second)
	}

	// Test connection
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logrus.WithField("driver", cfg.Driver).Info("Database connection established successfully")
	return db, nil
}

func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logrus.WithError(err).Error("Error getting underlying sql.DB")
		return
	}

	if err := sqlDB.Close(); err != nil {
		logrus.WithError(err).Error("Error closing database connection")
	} else {
		logrus.Info("Database connection closed successfully")
	}
}

func RunMigrations(db *gorm.DB) error {
	logrus.Info("Running database migrations...")

	err := db.AutoMigrate(
		&models.IPAsset{},
		&models.Listing{},
		&models.Proposal{},
		&models.Violation{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	createIndexes(db)

	logrus.Info("Database migrations completed successfully")
	return nil
}

func createIndexes(db *gorm.DB) {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_ip_assets_registered_by_lower ON ip_assets(LOWER(registered_by))",
		"CREATE INDEX IF NOT EXISTS idx_listings_seller_lower ON listings(LOWER(seller))",
		"CREATE INDEX IF NOT EXISTS idx_listings_royalty_token_lower ON listings(LOWER(royalty_token))",
		"CREATE INDEX IF NOT EXISTS idx_listings_chain_status ON listings(dipp_chain_id, status)",
		"CREATE INDEX IF NOT EXISTS idx_proposals_chain_status ON proposals(dipp_chain_id, status)",
		"CREATE INDEX IF NOT EXISTS idx_violations_chain_status ON violations(dipp_chain_id, status)",
	}

	for _, index := range indexes {
		if err := db.Exec(index).Error; err != nil {
			// Continue with other indexes instead of failing completely
			logrus.WithError(err).WithField("index", index).Warn("Failed to create index")
		}
	}
}

// SeedInitialData inserts the seed set into empty tables.
func SeedInitialData(db *gorm.DB) error {
	logrus.Info("Seeding initial data...")
	seed := Seed()

	return WithTransaction(db, func(tx *gorm.DB) error {
		if err := seedTable(tx, seed.IPs); err != nil {
			return err
		}
		if err := seedTable(tx, seed.Listings); err != nil {
			return err
		}
		if err := seedTable(tx, seed.Proposals); err != nil {
			return err
		}
		return seedTable(tx, seed.Violations)
	})
}

func seedTable[T any](tx *gorm.DB, rows []T) error {
	var count int64
	if err := tx.Model(new(T)).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if err := tx.Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to seed %T: %w", rows, err)
	}
	return nil
}

// Transaction helper
func WithTransaction(db *gorm.DB, fn func(*gorm.DB) error) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
