package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/franciscosanchezn/meal-master-api/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func review(email string, rating int, createdTime string) models.Review {
	return models.Review{
		UserID:      "uid-" + email,
		Name:        "Reviewer",
		Email:       email,
		Rating:      rating,
		Text:        "tasty",
		CreatedTime: createdTime,
	}
}

func TestAverageRating(t *testing.T) {
	testCases := []struct {
		total, count int
		expected     string
	}{
		{0, 0, "0.0"},
		{4, 1, "4.0"},
		{6, 2, "3.0"},
		{9, 4, "2.3"},
		{10, 3, "3.3"},
		{11, 3, "3.7"},
	}
	for _, tt := range testCases {
		t.Run(fmt.Sprintf("%d/%d", tt.total, tt.count), func(t *testing.T) {
			assert.Equal(t, tt.expected, averageRating(tt.total, tt.count))
		})
	}
}

func TestAddReviewRecomputesAggregates(t *testing.T) {
	db := setupTestDB(t)
	reviews := NewReviewService(db)
	menu := NewMenuService(db)
	ctx := context.Background()
	id := createMenuItem(t, db, "Ramen")

	res, err := reviews.AddReview(ctx, id, review("a@example.com", 4, "t1"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.ModifiedCount)

	item, err := menu.GetMenuItem(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.Rating{ReviewCount: 1, TotalRating: 4, AverageRating: "4.0"}, item.Rating)

	_, err = reviews.AddReview(ctx, id, review("b@example.com", 2, "t2"))
	require.NoError(t, err)

	item, err = menu.GetMenuItem(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.Rating{ReviewCount: 2, TotalRating: 6, AverageRating: "3.0"}, item.Rating)
	assert.Equal(t, map[string]int{"2": 1, "4": 1}, item.RatingCount.Data())
	require.Len(t, item.Reviews, 2)
	assert.Equal(t, "t1", item.Reviews[0].CreatedTime)
}

func TestAddReviewHistogramMatchesReviews(t *testing.T) {
	db := setupTestDB(t)
	reviews := NewReviewService(db)
	ctx := context.Background()
	id := createMenuItem(t, db, "Tacos")

	ratings := []int{5, 3, 5, 1, 4, 5, 3}
	for i, r := range ratings {
		_, err := reviews.AddReview(ctx, id, review(fmt.Sprintf("u%d@example.com", i), r, fmt.Sprintf("t%d", i)))
		require.NoError(t, err)

		item, err := NewMenuService(db).GetMenuItem(ctx, id)
		require.NoError(t, err)

		expected := map[string]int{}
		total := 0
		for _, seen := range ratings[:i+1] {
			expected[fmt.Sprint(seen)]++
			total += seen
		}
		assert.Equal(t, expected, item.RatingCount.Data())
		assert.Equal(t, averageRating(total, i+1), item.Rating.AverageRating)
	}
}

func TestAddReviewUnknownMeal(t *testing.T) {
	db := setupTestDB(t)
	_, err := NewReviewService(db).AddReview(context.Background(), uuid.NewString(), review("a@example.com", 4, "t1"))
	assert.ErrorIs(t, err, ErrMealNotFound)

	var count int64
	db.Model(&models.Review{}).Count(&count)
	assert.Zero(t, count)
}

func TestUpdateReview(t *testing.T) {
	db := setupTestDB(t)
	reviews := NewReviewService(db)
	ctx := context.Background()
	id := createMenuItem(t, db, "Pho")

	_, err := reviews.AddReview(ctx, id, review("a@example.com", 4, "t1"))
	require.NoError(t, err)
	_, err = reviews.AddReview(ctx, id, review("b@example.com", 2, "t2"))
	require.NoError(t, err)

	t.Run("recomputes the rating but keeps the histogram", func(t *testing.T) {
		_, err := reviews.UpdateReview(ctx, models.ReviewUpdate{Rating: 5, Text: "even better", CreatedTime: "t2"})
		require.NoError(t, err)

		item, err := NewMenuService(db).GetMenuItem(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, models.Rating{ReviewCount: 2, TotalRating: 9, AverageRating: "4.5"}, item.Rating)
		assert.Equal(t, map[string]int{"2": 1, "4": 1}, item.RatingCount.Data())
		assert.Equal(t, "even better", item.Reviews[1].Text)
	})

	t.Run("unknown created_time", func(t *testing.T) {
		_, err := reviews.UpdateReview(ctx, models.ReviewUpdate{Rating: 1, CreatedTime: "missing"})
		assert.ErrorIs(t, err, ErrReviewNotFound)
	})
}

func TestDeleteReviewLeavesAggregates(t *testing.T) {
	db := setupTestDB(t)
	reviews := NewReviewService(db)
	ctx := context.Background()
	id := createMenuItem(t, db, "Dal")

	_, err := reviews.AddReview(ctx, id, review("a@example.com", 4, "t1"))
	require.NoError(t, err)

	res, err := reviews.DeleteReview(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.ModifiedCount)

	item, err := NewMenuService(db).GetMenuItem(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, item.Reviews)
	assert.Equal(t, 1, item.Rating.ReviewCount)

	res, err = reviews.DeleteReview(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.MatchedCount)
}

func TestListAllReviews(t *testing.T) {
	db := setupTestDB(t)
	reviews := NewReviewService(db)
	ctx := context.Background()
	first := createMenuItem(t, db, "First")
	second := createMenuItem(t, db, "Second")
	createMenuItem(t, db, "Unreviewed")

	_, err := reviews.AddReview(ctx, first, review("a@example.com", 5, "t1"))
	require.NoError(t, err)
	_, err = reviews.AddReview(ctx, first, review("b@example.com", 3, "t2"))
	require.NoError(t, err)
	_, err = reviews.AddReview(ctx, second, review("a@example.com", 4, "t3"))
	require.NoError(t, err)

	page, err := reviews.ListAllReviews(ctx, PageRequest{Page: 1, Size: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Count, "count is the number of menu items")
	require.Len(t, page.Result, 3)

	byMeal := map[string]int64{}
	for _, row := range page.Result {
		byMeal[row.MealTitle] = row.MealReviewCount
		assert.NotEmpty(t, row.MealID)
	}
	assert.Equal(t, map[string]int64{"First": 2, "Second": 1}, byMeal)

	page, err = reviews.ListAllReviews(ctx, PageRequest{Page: 2, Size: 2})
	require.NoError(t, err)
	assert.Len(t, page.Result, 1)
}

func TestListReviewsByUser(t *testing.T) {
	db := setupTestDB(t)
	reviews := NewReviewService(db)
	ctx := context.Background()
	first := createMenuItem(t, db, "First")
	second := createMenuItem(t, db, "Second")

	_, err := reviews.AddReview(ctx, first, review("a@example.com", 5, "t1"))
	require.NoError(t, err)
	_, err = reviews.AddReview(ctx, second, review("a@example.com", 4, "t2"))
	require.NoError(t, err)
	_, err = reviews.AddReview(ctx, second, review("b@example.com", 1, "t3"))
	require.NoError(t, err)

	page, err := reviews.ListReviewsByUser(ctx, "a@example.com", PageRequest{Page: 1, Size: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Count)
	require.Len(t, page.Result, 1)
	assert.Equal(t, "First", page.Result[0].MealTitle)
	assert.Equal(t, "a@example.com", page.Result[0].Review.Email)
	assert.Equal(t, 1, page.Result[0].Rating.ReviewCount)

	page, err = reviews.ListReviewsByUser(ctx, "nobody@example.com", PageRequest{Page: 1, Size: 10})
	require.NoError(t, err)
	assert.Zero(t, page.Count)
	assert.Empty(t, page.Result)
}
