package services

import (
	"github.com/franciscosanchezn/meal-master-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GraduationThreshold is the number of likes that publishes an upcoming meal
const GraduationThreshold = 10

// graduate moves an upcoming meal into the catalog under the same id.
// Its reviews and likes follow it. Must run inside a transaction holding the meal's row lock.
func graduate(tx *gorm.DB, meal *models.UpcomingMeal) error {
	meal.PostStatus = models.PostStatusPublished
	item := models.MenuItem{
		ID:          meal.ID,
		MealDetails: meal.MealDetails,
		CreatedAt:   meal.CreatedAt,
	}
	err := tx.Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&item).Error
	if err != nil {
		return err
	}

	for _, child := range []interface{}{&models.Review{}, &models.Like{}} {
		err := tx.Model(child).
			Where("owner_type = ? AND owner_id = ?", models.OwnerUpcoming, meal.ID).
			Update("owner_type", models.OwnerMenu).Error
		if err != nil {
			return err
		}
	}

	if err := tx.Delete(&models.UpcomingMeal{}, "id = ?", meal.ID).Error; err != nil {
		return err
	}
	log.WithField("meal_id", meal.ID).Info("Upcoming meal published to the menu")
	return nil
}
