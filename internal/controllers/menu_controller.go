package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/meal-master-api/internal/models"
	"github.com/franciscosanchezn/meal-master-api/internal/services"
	"github.com/gin-gonic/gin"
)

// MenuController handles HTTP requests related to the meal catalog
type MenuController interface {
	// CreateMenuItem adds a meal to the catalog
	CreateMenuItem(c *gin.Context)
	// ListMenuItems returns every catalog item
	ListMenuItems(c *gin.Context)
	// GetMenuItem returns one catalog item
	GetMenuItem(c *gin.Context)
	// ListMenuItemsByAdmin returns the items one admin added
	ListMenuItemsByAdmin(c *gin.Context)
	// UpdateMenuItem changes a catalog item, creating it when missing
	UpdateMenuItem(c *gin.Context)
	// DeleteMenuItem removes a catalog item
	DeleteMenuItem(c *gin.Context)
	// SearchMenu filters the catalog
	SearchMenu(c *gin.Context)
	// PageMenu returns one sorted page of the catalog
	PageMenu(c *gin.Context)
}

type menuController struct {
	service services.MenuService
}

// NewMenuController creates a new instance of MenuController
func NewMenuController(service services.MenuService) MenuController {
	return &menuController{service: service}
}

// CreateMenuItem godoc
// @Summary Add a meal to the menu
// @Description Create a catalog item. Likes, rating and rating histogram always start empty.
// @Tags menu
// @Accept json
// @Produce json
// @Param meal body models.MealDetails true "Meal"
// @Success 200 {object} models.InsertResult
// @Failure 400 {object} models.APIError
// @Failure 401 {object} models.APIError
// @Failure 403 {object} models.APIError
// @Security CookieAuth
// @Router /menu [post]
func (c *menuController) CreateMenuItem(ctx *gin.Context) {
	var details models.MealDetails
	if err := ctx.ShouldBindJSON(&details); err != nil {
		respondInvalidBody(ctx, err)
		return
	}

	result, err := c.service.CreateMenuItem(ctx.Request.Context(), details)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// ListMenuItems godoc
// @Summary List the menu
// @Tags menu
// @Produce json
// @Success 200 {array} models.MenuItem
// @Failure 500 {object} models.APIError
// @Router /menu [get]
func (c *menuController) ListMenuItems(ctx *gin.Context) {
	items, err := c.service.ListMenuItems(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, items)
}

// GetMenuItem godoc
// @Summary Get a menu item
// @Tags menu
// @Produce json
// @Param id path string true "Meal ID"
// @Success 200 {object} models.MenuItem
// @Failure 400 {object} models.APIError
// @Failure 401 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security CookieAuth
// @Router /menu/{id} [get]
func (c *menuController) GetMenuItem(ctx *gin.Context) {
	item, err := c.service.GetMenuItem(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, item)
}

// ListMenuItemsByAdmin godoc
// @Summary List the meals an admin added
// @Tags menu
// @Produce json
// @Param email path string true "Admin email"
// @Success 200 {array} models.MenuItem
// @Failure 401 {object} models.APIError
// @Failure 403 {object} models.APIError
// @Security CookieAuth
// @Router /menu/admin/{email} [get]
func (c *menuController) ListMenuItemsByAdmin(ctx *gin.Context) {
	items, err := c.service.ListMenuItemsByAdmin(ctx.Request.Context(), ctx.Param("email"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, items)
}

// UpdateMenuItem godoc
// @Summary Update a menu item
// @Description Set the given fields. An unknown id creates the item.
// @Tags menu
// @Accept json
// @Produce json
// @Param id path string true "Meal ID"
// @Param meal body models.MealUpdate true "Fields to change"
// @Success 200 {object} models.UpdateResult
// @Failure 400 {object} models.APIError
// @Failure 401 {object} models.APIError
// @Failure 403 {object} models.APIError
// @Security CookieAuth
// @Router /menu/{id} [put]
func (c *menuController) UpdateMenuItem(ctx *gin.Context) {
	var update models.MealUpdate
	if err := ctx.ShouldBindJSON(&update); err != nil {
		respondInvalidBody(ctx, err)
		return
	}

	result, err := c.service.UpdateMenuItem(ctx.Request.Context(), ctx.Param("id"), update)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// DeleteMenuItem godoc
// @Summary Delete a menu item
// @Tags menu
// @Produce json
// @Param id path string true "Meal ID"
// @Success 200 {object} models.DeleteResult
// @Failure 400 {object} models.APIError
// @Failure 401 {object} models.APIError
// @Failure 403 {object} models.APIError
// @Security CookieAuth
// @Router /menu/{id} [delete]
func (c *menuController) DeleteMenuItem(ctx *gin.Context) {
	result, err := c.service.DeleteMenuItem(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// SearchMenu godoc
// @Summary Search the menu
// @Description Title substring (case-insensitive), exact category and an optional price range
// @Tags menu
// @Produce json
// @Param search query string false "Title contains"
// @Param category query string false "Category"
// @Param minPrice query number false "Lowest price"
// @Param maxPrice query number false "Highest price"
// @Success 200 {object} models.MenuSearchResult
// @Failure 500 {object} models.APIError
// @Router /all-menu [get]
func (c *menuController) SearchMenu(ctx *gin.Context) {
	filter := models.MenuFilter{
		Search:   ctx.Query("search"),
		Category: ctx.Query("category"),
		MinPrice: floatQuery(ctx, "minPrice"),
		MaxPrice: floatQuery(ctx, "maxPrice"),
	}

	result, err := c.service.SearchMenu(ctx.Request.Context(), filter)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// PageMenu godoc
// @Summary Page through the menu
// @Description Sorted by likes then review count, each descending unless "asc"
// @Tags menu
// @Produce json
// @Param page query int false "1-based page"
// @Param size query int false "Page size"
// @Param sortLike query string false "asc or desc"
// @Param sortReviews query string false "asc or desc"
// @Success 200 {object} models.Page[models.MenuItem]
// @Failure 500 {object} models.APIError
// @Router /all-meals [get]
func (c *menuController) PageMenu(ctx *gin.Context) {
	page, err := c.service.PageMenu(ctx.Request.Context(), pageQuery(ctx),
		services.ParseSortOrder(ctx.Query("sortLike")),
		services.ParseSortOrder(ctx.Query("sortReviews")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, page)
}
