package infra

import (
	"fmt"

	"github.com/MoultonFarm-Sumner/washshed-sub000/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and runs
// AutoMigrate. The schema is small enough that AutoMigrate owns it outright —
// ids are assigned in Go (BeforeCreate hooks), so no pgcrypto extension or
// SQL patch layer is needed.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// RunMigrations creates or updates all tables. Shared with the integration
// test harness.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Product{},
		&model.HistoryEntry{},
		&model.FieldLocation{},
		&model.Setting{},
		&model.SiteAuth{},
	)
}
