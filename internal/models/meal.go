package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Owner types used by the polymorphic review and like tables
const (
	OwnerMenu     = "menu"
	OwnerUpcoming = "upcoming"
)

// PostStatusPublished marks an upcoming meal that graduated into the menu
const PostStatusPublished = "Published"

// AdminInfo identifies the admin who added a meal
type AdminInfo struct {
	Name  string `json:"name"`
	Email string `gorm:"index" json:"email"`
}

// Rating holds the review aggregate of a meal.
// AverageRating is kept as a one-decimal string, e.g. "4.5".
type Rating struct {
	ReviewCount   int    `json:"reviewCount"`
	TotalRating   int    `json:"totalRating"`
	AverageRating string `json:"averageRating"`
}

// MealDetails is the shape shared by menu items and upcoming meals
type MealDetails struct {
	Title       string                             `gorm:"index" json:"meal_title" binding:"required"`
	Category    string                             `gorm:"index" json:"meal_category"`
	Price       float64                            `json:"price" binding:"gte=0"`
	Description string                             `json:"description"`
	Image       string                             `json:"image"`
	Ingredients datatypes.JSONSlice[string]        `json:"ingredients"`
	Admin       AdminInfo                          `gorm:"embedded;embeddedPrefix:admin_" json:"admin"`
	PostStatus  string                             `json:"post_status,omitempty"`
	LikesCount  int                                `gorm:"index" json:"likes_count"`
	Rating      Rating                             `gorm:"embedded;embeddedPrefix:rating_" json:"rating"`
	RatingCount datatypes.JSONType[map[string]int] `json:"ratingCount"`
}

// resetAggregates clears the derived fields so clients cannot seed them
func (d *MealDetails) resetAggregates() {
	d.LikesCount = 0
	d.Rating = Rating{AverageRating: "0.0"}
	d.RatingCount = datatypes.NewJSONType(map[string]int{})
	if d.Ingredients == nil {
		d.Ingredients = datatypes.JSONSlice[string]{}
	}
}

// MenuItem is a published meal in the catalog
type MenuItem struct {
	ID string `gorm:"primaryKey;size:36" json:"_id"`
	MealDetails
	Reviews   []Review  `gorm:"polymorphic:Owner;polymorphicValue:menu" json:"reviews"`
	Likes     []Like    `gorm:"polymorphic:Owner;polymorphicValue:menu" json:"likes"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (m *MenuItem) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// NewMenuItem builds a catalog item from client input with empty aggregates
func NewMenuItem(details MealDetails) MenuItem {
	details.resetAggregates()
	return MenuItem{MealDetails: details}
}

// UpcomingMeal is a meal waiting for enough likes or an admin approval
type UpcomingMeal struct {
	ID string `gorm:"primaryKey;size:36" json:"_id"`
	MealDetails
	Reviews   []Review  `gorm:"polymorphic:Owner;polymorphicValue:upcoming" json:"reviews"`
	Likes     []Like    `gorm:"polymorphic:Owner;polymorphicValue:upcoming" json:"likes"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (m *UpcomingMeal) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// NewUpcomingMeal builds a promotion item from client input with empty aggregates
func NewUpcomingMeal(details MealDetails) UpcomingMeal {
	details.resetAggregates()
	return UpcomingMeal{MealDetails: details}
}

// MealUpdate carries the admin-editable fields of a menu item.
// Nil fields are left untouched.
type MealUpdate struct {
	Title       *string   `json:"meal_title"`
	Category    *string   `json:"meal_category"`
	Price       *float64  `json:"price" binding:"omitempty,gte=0"`
	Description *string   `json:"description"`
	Image       *string   `json:"image"`
	Ingredients *[]string `json:"ingredients"`
	PostStatus  *string   `json:"post_status"`
}

// Columns returns the column assignments for a gorm Updates call
func (u MealUpdate) Columns() map[string]interface{} {
	cols := map[string]interface{}{}
	if u.Title != nil {
		cols["title"] = *u.Title
	}
	if u.Category != nil {
		cols["category"] = *u.Category
	}
	if u.Price != nil {
		cols["price"] = *u.Price
	}
	if u.Description != nil {
		cols["description"] = *u.Description
	}
	if u.Image != nil {
		cols["image"] = *u.Image
	}
	if u.Ingredients != nil {
		cols["ingredients"] = datatypes.NewJSONSlice(*u.Ingredients)
	}
	if u.PostStatus != nil {
		cols["post_status"] = *u.PostStatus
	}
	return cols
}

// Apply copies the non-nil fields onto details
func (u MealUpdate) Apply(details *MealDetails) {
	if u.Title != nil {
		details.Title = *u.Title
	}
	if u.Category != nil {
		details.Category = *u.Category
	}
	if u.Price != nil {
		details.Price = *u.Price
	}
	if u.Description != nil {
		details.Description = *u.Description
	}
	if u.Image != nil {
		details.Image = *u.Image
	}
	if u.Ingredients != nil {
		details.Ingredients = datatypes.NewJSONSlice(*u.Ingredients)
	}
	if u.PostStatus != nil {
		details.PostStatus = *u.PostStatus
	}
}

// MenuFilter narrows the catalog search
type MenuFilter struct {
	Search   string
	Category string
	MinPrice *float64
	MaxPrice *float64
}

// MenuSearchResult is the response of the filtered catalog search
type MenuSearchResult struct {
	Count int64      `json:"count"`
	Meals []MenuItem `json:"meals"`
}
