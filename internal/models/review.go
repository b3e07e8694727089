package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review is a user review owned by a meal.
// Clients address a review by its created_time.
type Review struct {
	ID          string    `gorm:"primaryKey;size:36" json:"-"`
	OwnerID     string    `gorm:"index:idx_review_owner;size:36" json:"-"`
	OwnerType   string    `gorm:"index:idx_review_owner;size:16" json:"-"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	Email       string    `gorm:"index" json:"email"`
	Photo       string    `json:"photo"`
	Rating      int       `json:"rating" binding:"required,min=1,max=5"`
	Text        string    `gorm:"column:review" json:"review"`
	CreatedTime string    `gorm:"index" json:"created_time"`
	CreatedAt   time.Time `json:"-"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// ReviewUpdate is the body of a review edit
type ReviewUpdate struct {
	Rating      int    `json:"rating" binding:"required,min=1,max=5"`
	Text        string `json:"review"`
	CreatedTime string `json:"created_time" binding:"required"`
}

// ReviewRow is one flattened review together with its meal
type ReviewRow struct {
	MealID          string `json:"_id"`
	MealTitle       string `json:"meal_title"`
	Review          Review `json:"reviews"`
	LikesCount      int    `json:"likes_count"`
	Rating          Rating `json:"rating"`
	MealReviewCount int64  `json:"meal_review_count,omitempty"`
}
