package models

import (
	"time"
)

// Account roles
const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// Defaults applied when an account is first created
const (
	DefaultStatus = "Verified"
	DefaultBadge  = "Bronze"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"_id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Name      string    `json:"name"`
	Photo     string    `json:"photo"`
	Role      string    `gorm:"default:'member'" json:"role"`
	Status    string    `json:"status"`
	Badge     string    `json:"badge"`
	LastLogin time.Time `json:"lastLogin"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserProfile is the body sent on every sign in
type UserProfile struct {
	Email  string `json:"email" binding:"required,email"`
	Name   string `json:"name"`
	Photo  string `json:"photo"`
	Status string `json:"status"`
	Badge  string `json:"badge"`
}

// UserPatch carries partial account changes. Nil fields are left untouched.
type UserPatch struct {
	Name   *string `json:"name"`
	Photo  *string `json:"photo"`
	Status *string `json:"status"`
	Badge  *string `json:"badge"`
	Role   *string `json:"role" binding:"omitempty,oneof=member admin"`
}

// Columns returns the column assignments for a gorm Updates call
func (p UserPatch) Columns() map[string]interface{} {
	cols := map[string]interface{}{}
	if p.Name != nil {
		cols["name"] = *p.Name
	}
	if p.Photo != nil {
		cols["photo"] = *p.Photo
	}
	if p.Status != nil {
		cols["status"] = *p.Status
	}
	if p.Badge != nil {
		cols["badge"] = *p.Badge
	}
	if p.Role != nil {
		cols["role"] = *p.Role
	}
	return cols
}
