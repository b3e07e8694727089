package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/franciscosanchezn/meal-master-api/internal/models"
	"gorm.io/gorm"
)

// MenuService provides access to the published meal catalog
type MenuService interface {
	// CreateMenuItem adds a meal to the catalog with empty aggregates
	CreateMenuItem(ctx context.Context, details models.MealDetails) (models.InsertResult, error)
	// ListMenuItems returns every catalog item
	ListMenuItems(ctx context.Context) ([]models.MenuItem, error)
	// GetMenuItem returns one catalog item or ErrMealNotFound
	GetMenuItem(ctx context.Context, id string) (*models.MenuItem, error)
	// ListMenuItemsByAdmin returns the items added by the admin with that email
	ListMenuItemsByAdmin(ctx context.Context, email string) ([]models.MenuItem, error)
	// UpdateMenuItem changes the given fields, creating the item when the id is unknown
	UpdateMenuItem(ctx context.Context, id string, update models.MealUpdate) (models.UpdateResult, error)
	// DeleteMenuItem removes an item together with its reviews and likes
	DeleteMenuItem(ctx context.Context, id string) (models.DeleteResult, error)
	// SearchMenu filters the catalog by title, category and price range
	SearchMenu(ctx context.Context, filter models.MenuFilter) (models.MenuSearchResult, error)
	// PageMenu returns one page of the catalog ordered by likes then review count
	PageMenu(ctx context.Context, page PageRequest, sortLike, sortReviews SortOrder) (models.Page[models.MenuItem], error)
}

type menuService struct {
	db *gorm.DB
}

// NewMenuService creates a new instance of MenuService
func NewMenuService(db *gorm.DB) MenuService {
	return &menuService{db: db}
}

// withChildren preloads the owned reviews and likes in insertion order
func withChildren(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Reviews", func(db *gorm.DB) *gorm.DB { return db.Order("created_at") }).
		Preload("Likes", func(db *gorm.DB) *gorm.DB { return db.Order("created_time") })
}

func (s *menuService) CreateMenuItem(ctx context.Context, details models.MealDetails) (models.InsertResult, error) {
	item := models.NewMenuItem(details)
	if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
		return models.InsertResult{}, fmt.Errorf("create menu item: %w", err)
	}
	log.WithField("meal_id", item.ID).Info("Menu item created")
	return models.Inserted(item.ID), nil
}

func (s *menuService) ListMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := s.db.WithContext(ctx).Scopes(withChildren).Order("created_at").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	return items, nil
}

func (s *menuService) GetMenuItem(ctx context.Context, id string) (*models.MenuItem, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	var item models.MenuItem
	err := s.db.WithContext(ctx).Scopes(withChildren).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMealNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get menu item %s: %w", id, err)
	}
	return &item, nil
}

func (s *menuService) ListMenuItemsByAdmin(ctx context.Context, email string) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := s.db.WithContext(ctx).Scopes(withChildren).
		Where("admin_email = ?", email).
		Order("created_at").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("list menu items of %s: %w", email, err)
	}
	return items, nil
}

func (s *menuService) UpdateMenuItem(ctx context.Context, id string, update models.MealUpdate) (models.UpdateResult, error) {
	if err := validateID(id); err != nil {
		return models.UpdateResult{}, err
	}

	var result models.UpdateResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.MenuItem
		err := tx.Clauses(forUpdate).Select("id").First(&existing, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			var details models.MealDetails
			update.Apply(&details)
			item := models.NewMenuItem(details)
			item.ID = id
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
			result = models.Upserted(id)
			return nil
		}
		if err != nil {
			return err
		}

		columns := update.Columns()
		if len(columns) == 0 {
			result = models.Updated(1, 0)
			return nil
		}
		res := tx.Model(&existing).Updates(columns)
		if res.Error != nil {
			return res.Error
		}
		result = models.Updated(1, res.RowsAffected)
		return nil
	})
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("update menu item %s: %w", id, err)
	}
	return result, nil
}

func (s *menuService) DeleteMenuItem(ctx context.Context, id string) (models.DeleteResult, error) {
	if err := validateID(id); err != nil {
		return models.DeleteResult{}, err
	}

	var deleted int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.MenuItem{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected
		if deleted == 0 {
			return nil
		}
		if err := tx.Where("owner_type = ? AND owner_id = ?", models.OwnerMenu, id).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		return tx.Where("owner_type = ? AND owner_id = ?", models.OwnerMenu, id).Delete(&models.Like{}).Error
	})
	if err != nil {
		return models.DeleteResult{}, fmt.Errorf("delete menu item %s: %w", id, err)
	}
	return models.Deleted(deleted), nil
}

func (s *menuService) SearchMenu(ctx context.Context, filter models.MenuFilter) (models.MenuSearchResult, error) {
	query := s.db.WithContext(ctx).Model(&models.MenuItem{})
	query = whereContainsAny(query, filter.Search, "title")
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.MinPrice != nil || filter.MaxPrice != nil {
		minPrice := 0.0
		if filter.MinPrice != nil {
			minPrice = *filter.MinPrice
		}
		query = query.Where("price >= ?", minPrice)
		if filter.MaxPrice != nil {
			query = query.Where("price <= ?", *filter.MaxPrice)
		}
	}
	query = query.Session(&gorm.Session{})

	result := models.MenuSearchResult{Meals: []models.MenuItem{}}
	if err := query.Count(&result.Count).Error; err != nil {
		return models.MenuSearchResult{}, fmt.Errorf("count menu search: %w", err)
	}
	if err := query.Scopes(withChildren).Order("created_at").Find(&result.Meals).Error; err != nil {
		return models.MenuSearchResult{}, fmt.Errorf("menu search: %w", err)
	}
	return result, nil
}

func (s *menuService) PageMenu(ctx context.Context, page PageRequest, sortLike, sortReviews SortOrder) (models.Page[models.MenuItem], error) {
	result := models.Page[models.MenuItem]{Result: []models.MenuItem{}}
	db := s.db.WithContext(ctx)
	if err := db.Model(&models.MenuItem{}).Count(&result.Count).Error; err != nil {
		return result, fmt.Errorf("count menu items: %w", err)
	}
	err := db.Scopes(withChildren, paginate(page)).
		Order(orderBy("likes_count", sortLike)).
		Order(orderBy("rating_review_count", sortReviews)).
		Order("id").
		Find(&result.Result).Error
	if err != nil {
		return result, fmt.Errorf("page menu items: %w", err)
	}
	return result, nil
}
