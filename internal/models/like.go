package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Like records whether a user likes a meal. There is at most one per user and meal.
type Like struct {
	ID          string `gorm:"primaryKey;size:36" json:"-"`
	OwnerID     string `gorm:"uniqueIndex:idx_like_owner_user;size:36" json:"-"`
	OwnerType   string `gorm:"uniqueIndex:idx_like_owner_user;size:16" json:"-"`
	UserID      string `gorm:"uniqueIndex:idx_like_owner_user" json:"user_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Photo       string `json:"photo"`
	Liked       bool   `json:"liked"`

	// CreatedTime is the server time in ms on creation. Later toggles store the client's value as sent.
	CreatedTime datatypes.JSON `json:"created_time"`
}

func (l *Like) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

// LikeRequest is the body of a like toggle
type LikeRequest struct {
	MealID      string         `json:"meal_id" binding:"required"`
	UserID      string         `json:"user_id" binding:"required"`
	Name        string         `json:"name"`
	Email       string         `json:"email"`
	Photo       string         `json:"photo"`
	Liked       bool           `json:"liked"`
	CreatedTime datatypes.JSON `json:"created_time"`
}
