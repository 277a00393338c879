// File: /database/database.go
package database

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"templeconnect-api/config"
	"templeconnect-api/models"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Warn),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	// Auto migrate all models
	err := db.AutoMigrate(
		&models.AdminUser{},
		&models.BusinessSubmission{},
		&models.EventSubmission{},
		&models.EventDraft{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	// Add composite indexes for the moderation list queries
	if err := addCustomIndexes(db); err != nil {
		return fmt.Errorf("failed to add custom indexes: %w", err)
	}

	return nil
}

func addCustomIndexes(db *gorm.DB) error {
	// Public directory query: status + active flag
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_business_status_active ON business_submissions(status, is_active)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for business_submissions: %v\n", err)
	}

	// Admin list queries sort newest submissions first
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_business_status_submitted ON business_submissions(status, submitted_at DESC)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for business_submissions submitted_at: %v\n", err)
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_event_status_submitted ON event_submissions(status, submitted_at DESC)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for event_submissions: %v\n", err)
	}

	// Upcoming events query filters on end_date
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_event_status_end_date ON event_submissions(status, end_date)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for event_submissions end_date: %v\n", err)
	}

	return nil
}

// Seed creates the initial admin account if no admin exists yet
func Seed(db *gorm.DB, cfg *config.Config) error {
	var count int64
	if err := db.Model(&models.AdminUser{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := models.AdminUser{
		ID:        uuid.New().String(),
		Name:      cfg.AdminName,
		Email:     cfg.AdminEmail,
		Password:  string(hashedPassword),
		Role:      models.RoleSuperAdmin,
		CreatedAt: time.Now(),
	}

	return db.Create(&admin).Error
}
