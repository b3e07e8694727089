package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReqStatusDelivery marks a cart entry handed over for delivery
const ReqStatusDelivery = "delivery"

// CartEntry is one meal a user requested. MenuID is not required to exist.
type CartEntry struct {
	ID        string    `gorm:"primaryKey;size:36" json:"_id"`
	Email     string    `gorm:"index" json:"email" binding:"required,email"`
	Name      string    `json:"name"`
	MenuID    string    `gorm:"index;size:36" json:"menuId" binding:"required"`
	Title     string    `json:"meal_title"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
	ReqStatus string    `json:"req_status"`
	CreatedAt time.Time `json:"createdAt"`
}

func (CartEntry) TableName() string {
	return "carts"
}

func (c *CartEntry) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// CartLine is a cart entry joined with the meal it references, or a null menu
type CartLine struct {
	CartEntry
	Menu *MenuItem `json:"menu"`
}
