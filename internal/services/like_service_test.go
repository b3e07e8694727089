package services

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/franciscosanchezn/meal-master-api/internal/database"
	"github.com/franciscosanchezn/meal-master-api/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func likeRequest(mealID, userID string, liked bool) models.LikeRequest {
	return models.LikeRequest{
		MealID:      mealID,
		UserID:      userID,
		Name:        "Liker " + userID,
		Email:       userID + "@example.com",
		Liked:       liked,
		CreatedTime: datatypes.JSON("1700000000000"),
	}
}

func likesOf(t *testing.T, db *gorm.DB, ownerType, id string) []models.Like {
	t.Helper()
	var likes []models.Like
	require.NoError(t, db.Where("owner_type = ? AND owner_id = ?", ownerType, id).Find(&likes).Error)
	return likes
}

func TestToggleMenuLike(t *testing.T) {
	db := setupTestDB(t)
	service := &likeService{db: db, now: func() time.Time { return time.UnixMilli(1234) }}
	menu := NewMenuService(db)
	ctx := context.Background()
	id := createMenuItem(t, db, "Gyoza")

	t.Run("new like uses server time", func(t *testing.T) {
		_, err := service.ToggleMenuLike(ctx, likeRequest(id, "a", true))
		require.NoError(t, err)

		item, err := menu.GetMenuItem(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, 1, item.LikesCount)
		require.Len(t, item.Likes, 1)
		assert.JSONEq(t, "1234", string(item.Likes[0].CreatedTime))
	})

	t.Run("unlike updates the same record", func(t *testing.T) {
		_, err := service.ToggleMenuLike(ctx, likeRequest(id, "a", false))
		require.NoError(t, err)

		item, err := menu.GetMenuItem(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, 0, item.LikesCount)
		require.Len(t, item.Likes, 1)
		assert.False(t, item.Likes[0].Liked)
		assert.JSONEq(t, "1700000000000", string(item.Likes[0].CreatedTime))
	})

	t.Run("client timestamp is stored as sent", func(t *testing.T) {
		req := likeRequest(id, "a", true)
		req.CreatedTime = datatypes.JSON(`"2024-05-01T10:00:00.000Z"`)
		_, err := service.ToggleMenuLike(ctx, req)
		require.NoError(t, err)

		item, err := menu.GetMenuItem(ctx, id)
		require.NoError(t, err)
		require.Len(t, item.Likes, 1)
		assert.JSONEq(t, `"2024-05-01T10:00:00.000Z"`, string(item.Likes[0].CreatedTime))
	})

	t.Run("unknown meal", func(t *testing.T) {
		_, err := service.ToggleMenuLike(ctx, likeRequest(uuid.NewString(), "a", true))
		assert.ErrorIs(t, err, ErrMealNotFound)
	})

	t.Run("upcoming id is not a menu item", func(t *testing.T) {
		upcoming := createUpcomingMeal(t, db, "Not yet")
		_, err := service.ToggleMenuLike(ctx, likeRequest(upcoming, "a", true))
		assert.ErrorIs(t, err, ErrMealNotFound)
	})
}

func TestLikesCountMatchesLikedRecords(t *testing.T) {
	db := setupTestDB(t)
	service := NewLikeService(db)
	ctx := context.Background()
	id := createMenuItem(t, db, "Bibimbap")

	toggles := []struct {
		user  string
		liked bool
	}{
		{"a", true}, {"b", true}, {"a", false}, {"c", true}, {"a", true}, {"b", false}, {"b", false},
	}
	for i, tg := range toggles {
		_, err := service.ToggleMenuLike(ctx, likeRequest(id, tg.user, tg.liked))
		require.NoError(t, err, "toggle %d", i)

		likes := likesOf(t, db, models.OwnerMenu, id)
		liked := 0
		users := map[string]bool{}
		for _, l := range likes {
			assert.False(t, users[l.UserID], "duplicate like record for %s", l.UserID)
			users[l.UserID] = true
			if l.Liked {
				liked++
			}
		}

		var item models.MenuItem
		require.NoError(t, db.First(&item, "id = ?", id).Error)
		assert.Equal(t, liked, item.LikesCount, "after toggle %d", i)
	}
}

func seedUpcomingLikes(t *testing.T, service LikeService, id string, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := service.ToggleUpcomingLike(context.Background(), likeRequest(id, fmt.Sprintf("user-%d", i), true))
		require.NoError(t, err)
	}
}

func TestUpcomingLikeGraduation(t *testing.T) {
	ctx := context.Background()

	t.Run("tenth new like does not publish", func(t *testing.T) {
		db := setupTestDB(t)
		service := NewLikeService(db)
		id := createUpcomingMeal(t, db, "Laksa")

		seedUpcomingLikes(t, service, id, GraduationThreshold)

		meal, err := NewUpcomingMealService(db).GetUpcomingMeal(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, GraduationThreshold, meal.LikesCount)

		_, err = NewMenuService(db).GetMenuItem(ctx, id)
		assert.ErrorIs(t, err, ErrMealNotFound)
	})

	t.Run("tenth like from an update publishes", func(t *testing.T) {
		db := setupTestDB(t)
		service := NewLikeService(db)
		id := createUpcomingMeal(t, db, "Laksa")

		seedUpcomingLikes(t, service, id, GraduationThreshold-1)
		_, err := service.ToggleUpcomingLike(ctx, likeRequest(id, "late", false))
		require.NoError(t, err)

		_, err = service.ToggleUpcomingLike(ctx, likeRequest(id, "late", true))
		require.NoError(t, err)

		_, err = NewUpcomingMealService(db).GetUpcomingMeal(ctx, id)
		assert.ErrorIs(t, err, ErrMealNotFound)

		item, err := NewMenuService(db).GetMenuItem(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, models.PostStatusPublished, item.PostStatus)
		assert.Equal(t, GraduationThreshold, item.LikesCount)
		assert.Len(t, item.Likes, GraduationThreshold)
		assert.Empty(t, likesOf(t, db, models.OwnerUpcoming, id))
	})

	t.Run("update below the threshold keeps the meal upcoming", func(t *testing.T) {
		db := setupTestDB(t)
		service := NewLikeService(db)
		id := createUpcomingMeal(t, db, "Laksa")

		seedUpcomingLikes(t, service, id, 3)
		_, err := service.ToggleUpcomingLike(ctx, likeRequest(id, "user-0", true))
		require.NoError(t, err)

		meal, err := NewUpcomingMealService(db).GetUpcomingMeal(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, 3, meal.LikesCount)
	})
}

func TestConcurrentLikesOnFileDatabase(t *testing.T) {
	cfg := database.DatabaseConfig{Driver: "sqlite", Path: filepath.Join(t.TempDir(), "meals.sqlite"), MaxRetries: 1}
	db, err := database.InitDatabase(cfg)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	service := NewLikeService(db)
	id := createMenuItem(t, db, "Dumplings")

	const users = 40
	var wg sync.WaitGroup
	errs := make(chan error, users)
	for i := 0; i < users; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := service.ToggleMenuLike(context.Background(), likeRequest(id, fmt.Sprintf("u%d", i), true))
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}

	var item models.MenuItem
	require.NoError(t, db.First(&item, "id = ?", id).Error)
	assert.Equal(t, users, item.LikesCount)
	assert.Len(t, likesOf(t, db, models.OwnerMenu, id), users)
}
