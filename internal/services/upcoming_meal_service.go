package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/franciscosanchezn/meal-master-api/internal/models"
	"gorm.io/gorm"
)

// UpcomingMealService manages meals waiting to be published
type UpcomingMealService interface {
	CreateUpcomingMeal(ctx context.Context, details models.MealDetails) (models.InsertResult, error)
	ListUpcomingMeals(ctx context.Context) ([]models.UpcomingMeal, error)
	// GetUpcomingMeal returns one upcoming meal or ErrMealNotFound
	GetUpcomingMeal(ctx context.Context, id string) (*models.UpcomingMeal, error)
	// PageUpcomingMeals returns one page of upcoming meals ordered by likes
	PageUpcomingMeals(ctx context.Context, page PageRequest, order SortOrder) (models.Page[models.UpcomingMeal], error)
	// PromoteToMenu applies the update and publishes the meal under the same id.
	// Promoting a meal that is already on the menu succeeds without changes.
	PromoteToMenu(ctx context.Context, id string, update models.MealUpdate) (models.InsertResult, error)
}

type upcomingMealService struct {
	db *gorm.DB
}

// NewUpcomingMealService creates a new instance of UpcomingMealService
func NewUpcomingMealService(db *gorm.DB) UpcomingMealService {
	return &upcomingMealService{db: db}
}

func (s *upcomingMealService) CreateUpcomingMeal(ctx context.Context, details models.MealDetails) (models.InsertResult, error) {
	meal := models.NewUpcomingMeal(details)
	if err := s.db.WithContext(ctx).Create(&meal).Error; err != nil {
		return models.InsertResult{}, fmt.Errorf("create upcoming meal: %w", err)
	}
	log.WithField("meal_id", meal.ID).Info("Upcoming meal created")
	return models.Inserted(meal.ID), nil
}

func (s *upcomingMealService) ListUpcomingMeals(ctx context.Context) ([]models.UpcomingMeal, error) {
	var meals []models.UpcomingMeal
	if err := s.db.WithContext(ctx).Scopes(withChildren).Order("created_at").Find(&meals).Error; err != nil {
		return nil, fmt.Errorf("list upcoming meals: %w", err)
	}
	return meals, nil
}

func (s *upcomingMealService) GetUpcomingMeal(ctx context.Context, id string) (*models.UpcomingMeal, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	var meal models.UpcomingMeal
	err := s.db.WithContext(ctx).Scopes(withChildren).First(&meal, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMealNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get upcoming meal %s: %w", id, err)
	}
	return &meal, nil
}

func (s *upcomingMealService) PageUpcomingMeals(ctx context.Context, page PageRequest, order SortOrder) (models.Page[models.UpcomingMeal], error) {
	result := models.Page[models.UpcomingMeal]{Result: []models.UpcomingMeal{}}
	db := s.db.WithContext(ctx)
	if err := db.Model(&models.UpcomingMeal{}).Count(&result.Count).Error; err != nil {
		return result, fmt.Errorf("count upcoming meals: %w", err)
	}
	err := db.Scopes(withChildren, paginate(page)).
		Order(orderBy("likes_count", order)).
		Order("id").
		Find(&result.Result).Error
	if err != nil {
		return result, fmt.Errorf("page upcoming meals: %w", err)
	}
	return result, nil
}

func (s *upcomingMealService) PromoteToMenu(ctx context.Context, id string, update models.MealUpdate) (models.InsertResult, error) {
	if err := validateID(id); err != nil {
		return models.InsertResult{}, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var meal models.UpcomingMeal
		err := tx.Clauses(forUpdate).First(&meal, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			var published int64
			if err := tx.Model(&models.MenuItem{}).Where("id = ?", id).Count(&published).Error; err != nil {
				return err
			}
			if published == 0 {
				return ErrMealNotFound
			}
			return nil
		}
		if err != nil {
			return err
		}

		update.Apply(&meal.MealDetails)
		return graduate(tx, &meal)
	})
	if err != nil {
		return models.InsertResult{}, fmt.Errorf("promote upcoming meal %s: %w", id, err)
	}
	return models.Inserted(id), nil
}
