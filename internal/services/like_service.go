package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/franciscosanchezn/meal-master-api/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// LikeService records likes on catalog items and upcoming meals
type LikeService interface {
	// ToggleMenuLike creates or updates the user's like on a catalog item
	ToggleMenuLike(ctx context.Context, req models.LikeRequest) (models.UpdateResult, error)
	// ToggleUpcomingLike does the same for an upcoming meal and publishes it
	// when an updated like brings it to GraduationThreshold
	ToggleUpcomingLike(ctx context.Context, req models.LikeRequest) (models.UpdateResult, error)
}

type likeService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewLikeService creates a new instance of LikeService
func NewLikeService(db *gorm.DB) LikeService {
	return &likeService{db: db, now: time.Now}
}

func (s *likeService) ToggleMenuLike(ctx context.Context, req models.LikeRequest) (models.UpdateResult, error) {
	return s.toggle(ctx, models.OwnerMenu, req)
}

func (s *likeService) ToggleUpcomingLike(ctx context.Context, req models.LikeRequest) (models.UpdateResult, error) {
	return s.toggle(ctx, models.OwnerUpcoming, req)
}

// ownerModel returns an empty row of the table that holds owners of the given type
func ownerModel(ownerType string) interface{} {
	if ownerType == models.OwnerUpcoming {
		return &models.UpcomingMeal{}
	}
	return &models.MenuItem{}
}

func (s *likeService) toggle(ctx context.Context, ownerType string, req models.LikeRequest) (models.UpdateResult, error) {
	if err := validateID(req.MealID); err != nil {
		return models.UpdateResult{}, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		owner := ownerModel(ownerType)
		err := tx.Clauses(forUpdate).Select("id").First(owner, "id = ?", req.MealID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMealNotFound
		}
		if err != nil {
			return err
		}

		var like models.Like
		err = tx.Where("owner_type = ? AND owner_id = ? AND user_id = ?", ownerType, req.MealID, req.UserID).
			First(&like).Error
		existed := err == nil
		switch {
		case existed:
			err = tx.Model(&like).Updates(map[string]interface{}{
				"liked":        req.Liked,
				"created_time": req.CreatedTime,
			}).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			like = models.Like{
				OwnerID:     req.MealID,
				OwnerType:   ownerType,
				UserID:      req.UserID,
				Name:        req.Name,
				Email:       req.Email,
				Photo:       req.Photo,
				Liked:       req.Liked,
				CreatedTime: datatypes.JSON(strconv.FormatInt(s.now().UnixMilli(), 10)),
			}
			err = tx.Create(&like).Error
		}
		if err != nil {
			return err
		}

		var likes int64
		err = tx.Model(&models.Like{}).
			Where("owner_type = ? AND owner_id = ? AND liked = ?", ownerType, req.MealID, true).
			Count(&likes).Error
		if err != nil {
			return err
		}
		if err := tx.Model(ownerModel(ownerType)).Where("id = ?", req.MealID).Update("likes_count", likes).Error; err != nil {
			return err
		}

		log.WithFields(logrus.Fields{
			"meal_id":     req.MealID,
			"owner_type":  ownerType,
			"likes_count": likes,
		}).Debug("Likes recounted")

		// only a changed like can publish; a new like reaching the threshold does not
		if ownerType != models.OwnerUpcoming || !existed || likes < GraduationThreshold {
			return nil
		}
		var meal models.UpcomingMeal
		if err := tx.First(&meal, "id = ?", req.MealID).Error; err != nil {
			return err
		}
		return graduate(tx, &meal)
	})
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("toggle like on %s: %w", req.MealID, err)
	}
	return models.Updated(1, 1), nil
}
