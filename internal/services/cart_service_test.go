package services

import (
	"context"
	"testing"

	"github.com/franciscosanchezn/meal-master-api/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cartEntry(email, name, menuID string) models.CartEntry {
	return models.CartEntry{Email: email, Name: name, MenuID: menuID, Title: "Meal", Price: 10, Quantity: 1}
}

func TestCartJoinsMenu(t *testing.T) {
	db := setupTestDB(t)
	service := NewCartService(db)
	ctx := context.Background()
	menuID := createMenuItem(t, db, "Falafel")
	dangling := uuid.NewString()

	for _, menu := range []string{menuID, dangling} {
		res, err := service.AddToCart(ctx, cartEntry("a@example.com", "Ada", menu))
		require.NoError(t, err)
		assert.NotEmpty(t, res.InsertedID)
	}
	_, err := service.AddToCart(ctx, cartEntry("b@example.com", "Bob", menuID))
	require.NoError(t, err)

	lines, err := service.ListCartForUser(ctx, "a@example.com")
	require.NoError(t, err)
	require.Len(t, lines, 2)
	require.NotNil(t, lines[0].Menu)
	assert.Equal(t, "Falafel", lines[0].Menu.Title)
	assert.Nil(t, lines[1].Menu)

	page, err := service.PageCartForUser(ctx, "a@example.com", PageRequest{Page: 2, Size: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Count)
	require.Len(t, page.Result, 1)
	assert.Nil(t, page.Result[0].Menu)
}

func TestListAllCarts(t *testing.T) {
	db := setupTestDB(t)
	service := NewCartService(db)
	ctx := context.Background()

	_, err := service.AddToCart(ctx, cartEntry("ada@example.com", "Ada Lovelace", uuid.NewString()))
	require.NoError(t, err)
	_, err = service.AddToCart(ctx, cartEntry("grace@example.com", "Grace Hopper", uuid.NewString()))
	require.NoError(t, err)

	page, err := service.ListAllCarts(ctx, PageRequest{Page: 1, Size: 10}, "")
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Count)

	page, err = service.ListAllCarts(ctx, PageRequest{Page: 1, Size: 10}, "HOPPER")
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Count)
	require.Len(t, page.Result, 1)
	assert.Equal(t, "grace@example.com", page.Result[0].Email)

	page, err = service.ListAllCarts(ctx, PageRequest{Page: 1, Size: 10}, "ada@")
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Count)
}

func TestMarkDeliveredAndRemove(t *testing.T) {
	db := setupTestDB(t)
	service := NewCartService(db)
	ctx := context.Background()

	res, err := service.AddToCart(ctx, cartEntry("a@example.com", "Ada", uuid.NewString()))
	require.NoError(t, err)

	updated, err := service.MarkDelivered(ctx, res.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated.ModifiedCount)

	lines, err := service.ListCartForUser(ctx, "a@example.com")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, models.ReqStatusDelivery, lines[0].ReqStatus)

	deleted, err := service.RemoveCartEntry(ctx, res.InsertedID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted.DeletedCount)

	deleted, err = service.RemoveCartEntry(ctx, res.InsertedID)
	require.NoError(t, err)
	assert.Zero(t, deleted.DeletedCount)

	_, err = service.MarkDelivered(ctx, "bogus")
	assert.ErrorIs(t, err, ErrInvalidID)
}
