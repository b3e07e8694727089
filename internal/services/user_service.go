package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/franciscosanchezn/meal-master-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserService manages the account directory
type UserService interface {
	// UpsertUser refreshes name, photo and last login, creating the account on first sign in.
	// Role, status, badge and creation time are only set on creation.
	UpsertUser(ctx context.Context, profile models.UserProfile) (models.UpdateResult, error)
	// GetUser returns the account or nil when there is none
	GetUser(ctx context.Context, email string) (*models.User, error)
	// PatchUser applies a self-service change. The role can not be changed this way.
	PatchUser(ctx context.Context, email string, patch models.UserPatch) (models.UpdateResult, error)
	// IsAdmin reports whether the account exists and has the admin role
	IsAdmin(ctx context.Context, email string) (bool, error)
	// ListUsers returns one page of accounts whose name or email contains search
	ListUsers(ctx context.Context, page PageRequest, search string) (models.Page[models.User], error)
	// SetUserRole applies an admin change, including the role
	SetUserRole(ctx context.Context, email string, patch models.UserPatch) (models.UpdateResult, error)
}

type userService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewUserService creates a new instance of UserService
func NewUserService(db *gorm.DB) UserService {
	return &userService{db: db, now: time.Now}
}

func (s *userService) UpsertUser(ctx context.Context, profile models.UserProfile) (models.UpdateResult, error) {
	now := s.now().UTC()
	var result models.UpdateResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.User
		err := tx.Clauses(forUpdate).Where("email = ?", profile.Email).First(&existing).Error
		if err == nil {
			res := tx.Model(&existing).Updates(map[string]interface{}{
				"name":       profile.Name,
				"photo":      profile.Photo,
				"last_login": now,
			})
			if res.Error != nil {
				return res.Error
			}
			result = models.Updated(1, res.RowsAffected)
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		user := models.User{
			Email:     profile.Email,
			Name:      profile.Name,
			Photo:     profile.Photo,
			Role:      models.RoleMember,
			Status:    valueOr(profile.Status, models.DefaultStatus),
			Badge:     valueOr(profile.Badge, models.DefaultBadge),
			LastLogin: now,
			CreatedAt: now,
		}
		// a concurrent first sign in may have inserted the row since the lookup
		err = tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "photo", "last_login", "updated_at"}),
		}).Create(&user).Error
		if err != nil {
			return err
		}
		result = models.Upserted(strconv.FormatUint(uint64(user.ID), 10))
		return nil
	})
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("upsert user %s: %w", profile.Email, err)
	}
	return result, nil
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func (s *userService) GetUser(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user %s: %w", email, err)
	}
	return &user, nil
}

func (s *userService) PatchUser(ctx context.Context, email string, patch models.UserPatch) (models.UpdateResult, error) {
	patch.Role = nil
	return s.updateUser(ctx, email, patch)
}

func (s *userService) SetUserRole(ctx context.Context, email string, patch models.UserPatch) (models.UpdateResult, error) {
	return s.updateUser(ctx, email, patch)
}

func (s *userService) updateUser(ctx context.Context, email string, patch models.UserPatch) (models.UpdateResult, error) {
	columns := patch.Columns()
	db := s.db.WithContext(ctx)
	if len(columns) == 0 {
		var matched int64
		if err := db.Model(&models.User{}).Where("email = ?", email).Count(&matched).Error; err != nil {
			return models.UpdateResult{}, fmt.Errorf("update user %s: %w", email, err)
		}
		return models.Updated(matched, 0), nil
	}

	res := db.Model(&models.User{}).Where("email = ?", email).Updates(columns)
	if res.Error != nil {
		return models.UpdateResult{}, fmt.Errorf("update user %s: %w", email, res.Error)
	}
	return models.Updated(res.RowsAffected, res.RowsAffected), nil
}

func (s *userService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.GetUser(ctx, email)
	if err != nil {
		return false, err
	}
	return user != nil && user.Role == models.RoleAdmin, nil
}

func (s *userService) ListUsers(ctx context.Context, page PageRequest, search string) (models.Page[models.User], error) {
	result := models.Page[models.User]{Result: []models.User{}}
	query := whereContainsAny(s.db.WithContext(ctx).Model(&models.User{}), search, "name", "email").
		Session(&gorm.Session{})

	if err := query.Count(&result.Count).Error; err != nil {
		return result, fmt.Errorf("count users: %w", err)
	}
	if err := query.Scopes(paginate(page)).Order("id").Find(&result.Result).Error; err != nil {
		return result, fmt.Errorf("list users: %w", err)
	}
	return result, nil
}
