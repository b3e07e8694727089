package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Membership is a purchasable tier. The list is reference data.
type Membership struct {
	ID       string                      `gorm:"primaryKey;size:36" json:"_id"`
	Name     string                      `gorm:"uniqueIndex" json:"name"`
	Price    float64                     `json:"price"`
	Benefits datatypes.JSONSlice[string] `json:"benefits"`
}

func (m *Membership) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// DefaultMemberships are seeded into an empty database
func DefaultMemberships() []Membership {
	return []Membership{
		{Name: "Silver", Price: 9.99, Benefits: datatypes.NewJSONSlice([]string{"Request up to 5 meals", "Post reviews"})},
		{Name: "Gold", Price: 19.99, Benefits: datatypes.NewJSONSlice([]string{"Request up to 15 meals", "Post reviews", "Priority delivery"})},
		{Name: "Platinum", Price: 29.99, Benefits: datatypes.NewJSONSlice([]string{"Unlimited meal requests", "Post reviews", "Priority delivery", "Early access to upcoming meals"})},
	}
}
