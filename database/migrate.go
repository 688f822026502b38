package database

import (
	"fmt"

	"servicehub_backend/internal/config"
	"servicehub_backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var gormDB *gorm.DB

// ConnectGorm initializes GORM with the DSN from config.
func ConnectGorm() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	cfg := config.GetConfig()
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	gormDB = db
	return db, nil
}

// AutoMigrate migrates all models.
func AutoMigrate(db *gorm.DB) error {
	// uuid_generate_v4() defaults on the primary keys need the extension.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return fmt.Errorf("failed to create uuid-ossp extension: %w", err)
	}
	return db.AutoMigrate(
		&models.User{},
		&models.Job{},
		&models.Bid{},
		&models.Payment{},
		&models.Category{},
		&models.Notification{},
	)
}
