package services

import (
	"context"
	"fmt"

	"github.com/franciscosanchezn/meal-master-api/internal/models"
	"gorm.io/gorm"
)

// CartService manages the meals users have requested
type CartService interface {
	AddToCart(ctx context.Context, entry models.CartEntry) (models.InsertResult, error)
	// ListCartForUser returns the user's entries joined with their catalog item
	ListCartForUser(ctx context.Context, email string) ([]models.CartLine, error)
	// PageCartForUser returns one page of the user's joined entries
	PageCartForUser(ctx context.Context, email string, page PageRequest) (models.Page[models.CartLine], error)
	// ListAllCarts returns one page of every entry whose name or email contains search
	ListAllCarts(ctx context.Context, page PageRequest, search string) (models.Page[models.CartEntry], error)
	MarkDelivered(ctx context.Context, id string) (models.UpdateResult, error)
	RemoveCartEntry(ctx context.Context, id string) (models.DeleteResult, error)
}

type cartService struct {
	db *gorm.DB
}

// NewCartService creates a new instance of CartService
func NewCartService(db *gorm.DB) CartService {
	return &cartService{db: db}
}

func (s *cartService) AddToCart(ctx context.Context, entry models.CartEntry) (models.InsertResult, error) {
	entry.ID = ""
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return models.InsertResult{}, fmt.Errorf("add to cart: %w", err)
	}
	return models.Inserted(entry.ID), nil
}

func (s *cartService) ListCartForUser(ctx context.Context, email string) ([]models.CartLine, error) {
	db := s.db.WithContext(ctx)
	var entries []models.CartEntry
	if err := db.Where("email = ?", email).Order("created_at").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("list cart of %s: %w", email, err)
	}
	return joinMenu(db, entries)
}

func (s *cartService) PageCartForUser(ctx context.Context, email string, page PageRequest) (models.Page[models.CartLine], error) {
	result := models.Page[models.CartLine]{Result: []models.CartLine{}}
	db := s.db.WithContext(ctx)
	query := db.Model(&models.CartEntry{}).Where("email = ?", email).Session(&gorm.Session{})

	if err := query.Count(&result.Count).Error; err != nil {
		return result, fmt.Errorf("count cart of %s: %w", email, err)
	}
	var entries []models.CartEntry
	if err := query.Scopes(paginate(page)).Order("created_at").Find(&entries).Error; err != nil {
		return result, fmt.Errorf("page cart of %s: %w", email, err)
	}
	lines, err := joinMenu(db, entries)
	if err != nil {
		return result, err
	}
	result.Result = lines
	return result, nil
}

func (s *cartService) ListAllCarts(ctx context.Context, page PageRequest, search string) (models.Page[models.CartEntry], error) {
	result := models.Page[models.CartEntry]{Result: []models.CartEntry{}}
	query := whereContainsAny(s.db.WithContext(ctx).Model(&models.CartEntry{}), search, "name", "email").
		Session(&gorm.Session{})

	if err := query.Count(&result.Count).Error; err != nil {
		return result, fmt.Errorf("count carts: %w", err)
	}
	if err := query.Scopes(paginate(page)).Order("created_at").Find(&result.Result).Error; err != nil {
		return result, fmt.Errorf("list carts: %w", err)
	}
	return result, nil
}

func (s *cartService) MarkDelivered(ctx context.Context, id string) (models.UpdateResult, error) {
	if err := validateID(id); err != nil {
		return models.UpdateResult{}, err
	}
	res := s.db.WithContext(ctx).Model(&models.CartEntry{}).
		Where("id = ?", id).
		Update("req_status", models.ReqStatusDelivery)
	if res.Error != nil {
		return models.UpdateResult{}, fmt.Errorf("mark cart %s delivered: %w", id, res.Error)
	}
	return models.Updated(res.RowsAffected, res.RowsAffected), nil
}

func (s *cartService) RemoveCartEntry(ctx context.Context, id string) (models.DeleteResult, error) {
	if err := validateID(id); err != nil {
		return models.DeleteResult{}, err
	}
	res := s.db.WithContext(ctx).Delete(&models.CartEntry{}, "id = ?", id)
	if res.Error != nil {
		return models.DeleteResult{}, fmt.Errorf("remove cart entry %s: %w", id, res.Error)
	}
	return models.Deleted(res.RowsAffected), nil
}

// joinMenu attaches the referenced catalog item to each entry, or nil when it no longer exists
func joinMenu(db *gorm.DB, entries []models.CartEntry) ([]models.CartLine, error) {
	lines := make([]models.CartLine, 0, len(entries))
	if len(entries) == 0 {
		return lines, nil
	}

	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.MenuID)
	}
	var items []models.MenuItem
	if err := db.Scopes(withChildren).Where("id IN ?", ids).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("load cart meals: %w", err)
	}
	byID := make(map[string]*models.MenuItem, len(items))
	for i := range items {
		byID[items[i].ID] = &items[i]
	}

	for _, e := range entries {
		lines = append(lines, models.CartLine{CartEntry: e, Menu: byID[e.MenuID]})
	}
	return lines, nil
}
