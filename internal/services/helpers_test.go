package services

import (
	"context"
	"testing"

	"github.com/franciscosanchezn/meal-master-api/internal/database"
	"github.com/franciscosanchezn/meal-master-api/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.InitDatabase(database.DatabaseConfig{Driver: "sqlite", Path: ":memory:", MaxRetries: 1})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func testMeal(title string) models.MealDetails {
	return models.MealDetails{
		Title:       title,
		Category:    "Lunch",
		Price:       12.5,
		Description: "A test meal",
		Ingredients: []string{"rice", "beans"},
		Admin:       models.AdminInfo{Name: "Admin", Email: "admin@example.com"},
	}
}

func createMenuItem(t *testing.T, db *gorm.DB, title string) string {
	t.Helper()
	res, err := NewMenuService(db).CreateMenuItem(context.Background(), testMeal(title))
	require.NoError(t, err)
	return res.InsertedID
}

func createUpcomingMeal(t *testing.T, db *gorm.DB, title string) string {
	t.Helper()
	res, err := NewUpcomingMealService(db).CreateUpcomingMeal(context.Background(), testMeal(title))
	require.NoError(t, err)
	return res.InsertedID
}

func ptr[T any](v T) *T {
	return &v
}
