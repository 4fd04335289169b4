package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/yellowboat/backoffice/internal/config"
	"github.com/yellowboat/backoffice/internal/models"
)

var gormDB *gorm.DB

// ConnectGorm opens the GORM connection using the configured DSN.
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

// AutoMigrate migrates the full model set. Order matters for foreign
// keys: referenced tables first.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Brand{},
		&models.Customer{},
		&models.Trainer{},
		&models.Location{},
		&models.TrainingCatalogEntry{},
		&models.Training{},
		&models.TrainingTask{},
		&models.ActivityLog{},
		&models.TrainerApplication{},
		&models.TrainerRegistration{},
		&models.Message{},
		&models.MailboxEmail{},
		&models.EmailAttachment{},
	)
}
