package services

import (
	"context"
	"testing"

	"github.com/franciscosanchezn/meal-master-api/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMenuItemResetsAggregates(t *testing.T) {
	db := setupTestDB(t)
	service := NewMenuService(db)
	ctx := context.Background()

	details := testMeal("Biryani")
	details.LikesCount = 99
	details.Rating = models.Rating{ReviewCount: 3, TotalRating: 15, AverageRating: "5.0"}

	res, err := service.CreateMenuItem(ctx, details)
	require.NoError(t, err)
	assert.True(t, res.Acknowledged)

	item, err := service.GetMenuItem(ctx, res.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, "Biryani", item.Title)
	assert.Equal(t, 0, item.LikesCount)
	assert.Equal(t, models.Rating{AverageRating: "0.0"}, item.Rating)
	assert.Empty(t, item.RatingCount.Data())
	assert.Equal(t, []string{"rice", "beans"}, []string(item.Ingredients))
	assert.Empty(t, item.Reviews)
}

func TestGetMenuItem(t *testing.T) {
	db := setupTestDB(t)
	service := NewMenuService(db)
	ctx := context.Background()

	t.Run("unknown id", func(t *testing.T) {
		_, err := service.GetMenuItem(ctx, uuid.NewString())
		assert.ErrorIs(t, err, ErrMealNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		_, err := service.GetMenuItem(ctx, "not-an-id")
		assert.ErrorIs(t, err, ErrInvalidID)
	})
}

func TestListMenuItemsByAdmin(t *testing.T) {
	db := setupTestDB(t)
	service := NewMenuService(db)
	ctx := context.Background()

	createMenuItem(t, db, "Mine")
	other := testMeal("Theirs")
	other.Admin = models.AdminInfo{Name: "Other", Email: "other@example.com"}
	_, err := service.CreateMenuItem(ctx, other)
	require.NoError(t, err)

	items, err := service.ListMenuItemsByAdmin(ctx, "admin@example.com")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Mine", items[0].Title)
}

func TestUpdateMenuItem(t *testing.T) {
	db := setupTestDB(t)
	service := NewMenuService(db)
	ctx := context.Background()

	t.Run("updates only the given fields", func(t *testing.T) {
		id := createMenuItem(t, db, "Soup")

		res, err := service.UpdateMenuItem(ctx, id, models.MealUpdate{Price: ptr(8.0), Ingredients: &[]string{"water"}})
		require.NoError(t, err)
		assert.Equal(t, int64(1), res.MatchedCount)
		assert.Nil(t, res.UpsertedID)

		item, err := service.GetMenuItem(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Soup", item.Title)
		assert.Equal(t, 8.0, item.Price)
		assert.Equal(t, []string{"water"}, []string(item.Ingredients))
	})

	t.Run("creates the item when the id is unknown", func(t *testing.T) {
		id := uuid.NewString()

		res, err := service.UpdateMenuItem(ctx, id, models.MealUpdate{Title: ptr("Fresh")})
		require.NoError(t, err)
		assert.Equal(t, int64(0), res.MatchedCount)
		assert.Equal(t, int64(1), res.UpsertedCount)
		require.NotNil(t, res.UpsertedID)
		assert.Equal(t, id, *res.UpsertedID)

		item, err := service.GetMenuItem(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Fresh", item.Title)
		assert.Equal(t, "0.0", item.Rating.AverageRating)
	})
}

func TestDeleteMenuItemRemovesChildren(t *testing.T) {
	db := setupTestDB(t)
	service := NewMenuService(db)
	ctx := context.Background()
	id := createMenuItem(t, db, "Curry")

	_, err := NewReviewService(db).AddReview(ctx, id, models.Review{Email: "a@example.com", Rating: 5, CreatedTime: "t1"})
	require.NoError(t, err)
	_, err = NewLikeService(db).ToggleMenuLike(ctx, models.LikeRequest{MealID: id, UserID: "u1", Liked: true})
	require.NoError(t, err)

	res, err := service.DeleteMenuItem(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.DeletedCount)

	var reviews, likes int64
	db.Model(&models.Review{}).Where("owner_id = ?", id).Count(&reviews)
	db.Model(&models.Like{}).Where("owner_id = ?", id).Count(&likes)
	assert.Zero(t, reviews)
	assert.Zero(t, likes)

	res, err = service.DeleteMenuItem(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.DeletedCount)
}

func TestSearchMenu(t *testing.T) {
	db := setupTestDB(t)
	service := NewMenuService(db)
	ctx := context.Background()

	meals := []struct {
		title    string
		category string
		price    float64
	}{
		{"Chicken Curry", "Dinner", 15},
		{"Chickpea Salad", "Lunch", 9},
		{"Pancakes", "Breakfast", 6},
	}
	for _, m := range meals {
		details := testMeal(m.title)
		details.Category = m.category
		details.Price = m.price
		_, err := service.CreateMenuItem(ctx, details)
		require.NoError(t, err)
	}

	testCases := []struct {
		name     string
		filter   models.MenuFilter
		expected int64
	}{
		{name: "no filter", filter: models.MenuFilter{}, expected: 3},
		{name: "case-insensitive title", filter: models.MenuFilter{Search: "CHICK"}, expected: 2},
		{name: "category", filter: models.MenuFilter{Category: "Lunch"}, expected: 1},
		{name: "min price only", filter: models.MenuFilter{MinPrice: ptr(7.0)}, expected: 2},
		{name: "max price only", filter: models.MenuFilter{MaxPrice: ptr(10.0)}, expected: 2},
		{name: "combined", filter: models.MenuFilter{Search: "chick", MaxPrice: ptr(10.0)}, expected: 1},
		{name: "wildcards are literal", filter: models.MenuFilter{Search: "%"}, expected: 0},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			result, err := service.SearchMenu(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result.Count)
			assert.Len(t, result.Meals, int(tt.expected))
		})
	}
}

func TestPageMenu(t *testing.T) {
	db := setupTestDB(t)
	service := NewMenuService(db)
	ctx := context.Background()

	for i, likes := range []int{3, 7, 5} {
		id := createMenuItem(t, db, []string{"A", "B", "C"}[i])
		require.NoError(t, db.Model(&models.MenuItem{}).Where("id = ?", id).Update("likes_count", likes).Error)
	}

	t.Run("first page descending", func(t *testing.T) {
		page, err := service.PageMenu(ctx, PageRequest{Page: 1, Size: 2}, Descending, Descending)
		require.NoError(t, err)
		assert.Equal(t, int64(3), page.Count)
		require.Len(t, page.Result, 2)
		assert.Equal(t, "B", page.Result[0].Title)
		assert.Equal(t, "C", page.Result[1].Title)
	})

	t.Run("second page ascending", func(t *testing.T) {
		page, err := service.PageMenu(ctx, PageRequest{Page: 2, Size: 2}, Ascending, Descending)
		require.NoError(t, err)
		require.Len(t, page.Result, 1)
		assert.Equal(t, "B", page.Result[0].Title)
	})

	t.Run("past the end", func(t *testing.T) {
		page, err := service.PageMenu(ctx, PageRequest{Page: 5, Size: 2}, Descending, Descending)
		require.NoError(t, err)
		assert.Equal(t, int64(3), page.Count)
		assert.NotNil(t, page.Result)
		assert.Empty(t, page.Result)
	})

	t.Run("no size returns everything", func(t *testing.T) {
		page, err := service.PageMenu(ctx, PageRequest{}, Descending, Descending)
		require.NoError(t, err)
		assert.Len(t, page.Result, 3)
	})
}
