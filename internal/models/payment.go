package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payment is a completed membership checkout
type Payment struct {
	ID            string    `gorm:"primaryKey;size:36" json:"_id"`
	Email         string    `gorm:"index" json:"email" binding:"required,email"`
	Name          string    `json:"name"`
	Price         float64   `json:"price" binding:"gte=0"`
	TransactionID string    `json:"transactionId"`
	ServiceName   string    `json:"service_name" binding:"required"`
	Date          time.Time `json:"date"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Date.IsZero() {
		p.Date = time.Now().UTC()
	}
	return nil
}

// ChargeIntent is the client-usable part of a gateway payment intent
type ChargeIntent struct {
	ClientSecret string `json:"clientSecret"`
}
