package database

import (
	"fmt"
	"log"

	"jobbridge_backend/internal/config"
	"jobbridge_backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var gormDB *gorm.DB

// ConnectGorm initializes GORM with the DSN from the configuration.
func ConnectGorm() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	cfg := config.GetConfig()
	dsn := cfg.Database.DSN

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	gormDB = db
	return db, nil
}

// AutoMigrate migrates all models. Run once before the first start and after
// every model change.
func AutoMigrate() error {
	db, err := ConnectGorm()
	if err != nil {
		return err
	}

	// uuid_generate_v4() used by the id column defaults.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return fmt.Errorf("failed to create uuid-ossp extension: %w", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.JobSeekerProfile{},
		&models.Experience{},
		&models.Education{},
		&models.Competency{},
		&models.Reference{},
		&models.LanguageSkill{},
		&models.CompanyProfile{},
		&models.OrganizationProfile{},
		&models.JobPost{},
		&models.Application{},
		&models.Subscription{},
		&models.Payment{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	log.Println("AutoMigrate completed.")
	return nil
}
