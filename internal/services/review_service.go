package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/franciscosanchezn/meal-master-api/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ReviewService manages the reviews of catalog items and their rating aggregates
type ReviewService interface {
	// AddReview appends a review to a catalog item and recomputes its rating and histogram
	AddReview(ctx context.Context, mealID string, review models.Review) (models.UpdateResult, error)
	// UpdateReview edits the first review with the given created_time and recomputes the rating
	UpdateReview(ctx context.Context, update models.ReviewUpdate) (models.UpdateResult, error)
	// DeleteReview removes the reviews with the given created_time. Aggregates are left as they are.
	DeleteReview(ctx context.Context, createdTime string) (models.UpdateResult, error)
	// ListAllReviews returns one page of every catalog review. Count is the number of catalog items.
	ListAllReviews(ctx context.Context, page PageRequest) (models.Page[models.ReviewRow], error)
	// ListReviewsByUser returns one page of the reviews written by email
	ListReviewsByUser(ctx context.Context, email string, page PageRequest) (models.Page[models.ReviewRow], error)
}

type reviewService struct {
	db *gorm.DB
}

// NewReviewService creates a new instance of ReviewService
func NewReviewService(db *gorm.DB) ReviewService {
	return &reviewService{db: db}
}

func (s *reviewService) AddReview(ctx context.Context, mealID string, review models.Review) (models.UpdateResult, error) {
	if err := validateID(mealID); err != nil {
		return models.UpdateResult{}, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var meal models.MenuItem
		err := tx.Clauses(forUpdate).Select("id").First(&meal, "id = ?", mealID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMealNotFound
		}
		if err != nil {
			return err
		}

		review.ID = ""
		review.OwnerID = mealID
		review.OwnerType = models.OwnerMenu
		if err := tx.Create(&review).Error; err != nil {
			return err
		}

		rating, err := recomputeRating(tx, mealID, true)
		if err != nil {
			return err
		}
		log.WithFields(logrus.Fields{
			"meal_id":        mealID,
			"review_count":   rating.ReviewCount,
			"average_rating": rating.AverageRating,
		}).Debug("Rating recomputed")
		return nil
	})
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("add review to %s: %w", mealID, err)
	}
	return models.Updated(1, 1), nil
}

func (s *reviewService) UpdateReview(ctx context.Context, update models.ReviewUpdate) (models.UpdateResult, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var review models.Review
		err := tx.Where("owner_type = ? AND created_time = ?", models.OwnerMenu, update.CreatedTime).
			Order("created_at").
			First(&review).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReviewNotFound
		}
		if err != nil {
			return err
		}

		var meal models.MenuItem
		if err := tx.Clauses(forUpdate).Select("id").First(&meal, "id = ?", review.OwnerID).Error; err != nil {
			return err
		}

		err = tx.Model(&review).Updates(map[string]interface{}{
			"rating":       update.Rating,
			"review":       update.Text,
			"created_time": update.CreatedTime,
		}).Error
		if err != nil {
			return err
		}

		_, err = recomputeRating(tx, review.OwnerID, false)
		return err
	})
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("update review %s: %w", update.CreatedTime, err)
	}
	return models.Updated(1, 1), nil
}

func (s *reviewService) DeleteReview(ctx context.Context, createdTime string) (models.UpdateResult, error) {
	var result models.UpdateResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var owners int64
		err := tx.Model(&models.Review{}).
			Where("owner_type = ? AND created_time = ?", models.OwnerMenu, createdTime).
			Distinct("owner_id").
			Count(&owners).Error
		if err != nil {
			return err
		}
		if owners == 0 {
			result = models.Updated(0, 0)
			return nil
		}

		err = tx.Where("owner_type = ? AND created_time = ?", models.OwnerMenu, createdTime).
			Delete(&models.Review{}).Error
		if err != nil {
			return err
		}
		result = models.Updated(owners, owners)
		return nil
	})
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("delete review %s: %w", createdTime, err)
	}
	return result, nil
}

func (s *reviewService) ListAllReviews(ctx context.Context, page PageRequest) (models.Page[models.ReviewRow], error) {
	result := models.Page[models.ReviewRow]{Result: []models.ReviewRow{}}
	db := s.db.WithContext(ctx)

	if err := db.Model(&models.MenuItem{}).Count(&result.Count).Error; err != nil {
		return result, fmt.Errorf("count menu items: %w", err)
	}

	var reviews []models.Review
	err := db.Scopes(paginate(page)).
		Where("owner_type = ? AND owner_id IN (?)", models.OwnerMenu, db.Model(&models.MenuItem{}).Select("id")).
		Order("owner_id").
		Order("created_at").
		Find(&reviews).Error
	if err != nil {
		return result, fmt.Errorf("list reviews: %w", err)
	}

	rows, err := s.reviewRows(db, reviews, true)
	if err != nil {
		return result, err
	}
	result.Result = rows
	return result, nil
}

func (s *reviewService) ListReviewsByUser(ctx context.Context, email string, page PageRequest) (models.Page[models.ReviewRow], error) {
	result := models.Page[models.ReviewRow]{Result: []models.ReviewRow{}}
	db := s.db.WithContext(ctx)

	query := db.Model(&models.Review{}).
		Where("owner_type = ? AND email = ?", models.OwnerMenu, email).
		Where("owner_id IN (?)", db.Model(&models.MenuItem{}).Select("id")).
		Session(&gorm.Session{})

	if err := query.Count(&result.Count).Error; err != nil {
		return result, fmt.Errorf("count reviews of %s: %w", email, err)
	}

	var reviews []models.Review
	if err := query.Scopes(paginate(page)).Order("created_at").Find(&reviews).Error; err != nil {
		return result, fmt.Errorf("list reviews of %s: %w", email, err)
	}

	rows, err := s.reviewRows(db, reviews, false)
	if err != nil {
		return result, err
	}
	result.Result = rows
	return result, nil
}

// reviewRows joins each review with the catalog item that owns it
func (s *reviewService) reviewRows(db *gorm.DB, reviews []models.Review, withMealCount bool) ([]models.ReviewRow, error) {
	rows := make([]models.ReviewRow, 0, len(reviews))
	if len(reviews) == 0 {
		return rows, nil
	}

	ids := make([]string, 0, len(reviews))
	seen := make(map[string]bool, len(reviews))
	for _, r := range reviews {
		if !seen[r.OwnerID] {
			seen[r.OwnerID] = true
			ids = append(ids, r.OwnerID)
		}
	}

	var meals []models.MenuItem
	if err := db.Where("id IN ?", ids).Find(&meals).Error; err != nil {
		return nil, fmt.Errorf("load reviewed meals: %w", err)
	}
	byID := make(map[string]models.MenuItem, len(meals))
	for _, m := range meals {
		byID[m.ID] = m
	}

	counts := make(map[string]int64, len(ids))
	if withMealCount {
		var perMeal []struct {
			OwnerID string
			Total   int64
		}
		err := db.Model(&models.Review{}).
			Select("owner_id, COUNT(*) AS total").
			Where("owner_type = ? AND owner_id IN ?", models.OwnerMenu, ids).
			Group("owner_id").
			Scan(&perMeal).Error
		if err != nil {
			return nil, fmt.Errorf("count reviews per meal: %w", err)
		}
		for _, c := range perMeal {
			counts[c.OwnerID] = c.Total
		}
	}

	for _, r := range reviews {
		meal := byID[r.OwnerID]
		rows = append(rows, models.ReviewRow{
			MealID:          meal.ID,
			MealTitle:       meal.Title,
			Review:          r,
			LikesCount:      meal.LikesCount,
			Rating:          meal.Rating,
			MealReviewCount: counts[r.OwnerID],
		})
	}
	return rows, nil
}
