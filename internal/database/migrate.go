package database

import (
	"context"
	"fmt"

	"github.com/franciscosanchezn/meal-master-api/internal/models"
	"gorm.io/gorm"
)

// Migrate creates or updates the schema of every persisted model
func Migrate(db *gorm.DB) error {
	log.Info("Migrating database schema")
	err := db.AutoMigrate(
		&models.User{},
		&models.MenuItem{},
		&models.UpcomingMeal{},
		&models.Review{},
		&models.Like{},
		&models.CartEntry{},
		&models.Payment{},
		&models.Membership{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// SeedMemberships inserts the default membership tiers when none exist
func SeedMemberships(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&models.Membership{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count memberships: %w", err)
	}
	if count > 0 {
		log.Info("Memberships already seeded")
		return nil
	}

	log.Info("Database is empty, seeding memberships")
	tiers := models.DefaultMemberships()
	if err := db.WithContext(ctx).Create(&tiers).Error; err != nil {
		return fmt.Errorf("seed memberships: %w", err)
	}
	log.WithField("count", len(tiers)).Info("Memberships seeded successfully")
	return nil
}
