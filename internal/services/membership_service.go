package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/franciscosanchezn/meal-master-api/internal/models"
	"gorm.io/gorm"
)

// MembershipService reads the membership tiers
type MembershipService interface {
	ListMemberships(ctx context.Context) ([]models.Membership, error)
	// GetMembership returns the tier or nil when there is none
	GetMembership(ctx context.Context, id string) (*models.Membership, error)
}

type membershipService struct {
	db *gorm.DB
}

// NewMembershipService creates a new instance of MembershipService
func NewMembershipService(db *gorm.DB) MembershipService {
	return &membershipService{db: db}
}

func (s *membershipService) ListMemberships(ctx context.Context) ([]models.Membership, error) {
	tiers := []models.Membership{}
	if err := s.db.WithContext(ctx).Order("price").Find(&tiers).Error; err != nil {
		return nil, fmt.Errorf("list memberships: %w", err)
	}
	return tiers, nil
}

func (s *membershipService) GetMembership(ctx context.Context, id string) (*models.Membership, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	var tier models.Membership
	err := s.db.WithContext(ctx).First(&tier, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get membership %s: %w", id, err)
	}
	return &tier, nil
}
