package controllers

import (
	"errors"
	"io"
	"net/http"

	"github.com/franciscosanchezn/meal-master-api/internal/models"
	"github.com/franciscosanchezn/meal-master-api/internal/services"
	"github.com/gin-gonic/gin"
)

// UpcomingMealController handles HTTP requests related to upcoming meals
type UpcomingMealController interface {
	CreateUpcomingMeal(c *gin.Context)
	ListUpcomingMeals(c *gin.Context)
	GetUpcomingMeal(c *gin.Context)
	PageUpcomingMeals(c *gin.Context)
	// PublishUpcomingMeal moves an upcoming meal to the menu
	PublishUpcomingMeal(c *gin.Context)
}

type upcomingMealController struct {
	service services.UpcomingMealService
}

// NewUpcomingMealController creates a new instance of UpcomingMealController
func NewUpcomingMealController(service services.UpcomingMealService) UpcomingMealController {
	return &upcomingMealController{service: service}
}

// CreateUpcomingMeal godoc
// @Summary Add an upcoming meal
// @Tags upcoming-meals
// @Accept json
// @Produce json
// @Param meal body models.MealDetails true "Meal"
// @Success 200 {object} models.InsertResult
// @Failure 400 {object} models.APIError
// @Failure 401 {object} models.APIError
// @Failure 403 {object} models.APIError
// @Security CookieAuth
// @Router /upcoming-meal [post]
func (c *upcomingMealController) CreateUpcomingMeal(ctx *gin.Context) {
	var details models.MealDetails
	if err := ctx.ShouldBindJSON(&details); err != nil {
		respondInvalidBody(ctx, err)
		return
	}

	result, err := c.service.CreateUpcomingMeal(ctx.Request.Context(), details)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// ListUpcomingMeals godoc
// @Summary List upcoming meals
// @Tags upcoming-meals
// @Produce json
// @Success 200 {array} models.UpcomingMeal
// @Router /upcoming-meals [get]
func (c *upcomingMealController) ListUpcomingMeals(ctx *gin.Context) {
	meals, err := c.service.ListUpcomingMeals(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, meals)
}

// GetUpcomingMeal godoc
// @Summary Get an upcoming meal
// @Tags upcoming-meals
// @Produce json
// @Param id path string true "Meal ID"
// @Success 200 {object} models.UpcomingMeal
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /upcoming-meal/{id} [get]
func (c *upcomingMealController) GetUpcomingMeal(ctx *gin.Context) {
	meal, err := c.service.GetUpcomingMeal(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, meal)
}

// PageUpcomingMeals godoc
// @Summary Page through upcoming meals
// @Tags upcoming-meals
// @Produce json
// @Param page query int false "1-based page"
// @Param size query int false "Page size"
// @Param sortOrder query string false "Likes order, asc or desc"
// @Success 200 {object} models.Page[models.UpcomingMeal]
// @Router /upcoming-meals-sort [get]
func (c *upcomingMealController) PageUpcomingMeals(ctx *gin.Context) {
	page, err := c.service.PageUpcomingMeals(ctx.Request.Context(), pageQuery(ctx),
		services.ParseSortOrder(ctx.Query("sortOrder")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, page)
}

// PublishUpcomingMeal godoc
// @Summary Publish an upcoming meal
// @Description Apply the optional changes, mark the meal Published and move it to the menu under the same id
// @Tags upcoming-meals
// @Accept json
// @Produce json
// @Param id path string true "Meal ID"
// @Param meal body models.MealUpdate false "Fields to change before publishing"
// @Success 200 {object} models.InsertResult
// @Failure 400 {object} models.APIError
// @Failure 401 {object} models.APIError
// @Failure 403 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security CookieAuth
// @Router /upcoming-meal/{id} [patch]
func (c *upcomingMealController) PublishUpcomingMeal(ctx *gin.Context) {
	var update models.MealUpdate
	if err := ctx.ShouldBindJSON(&update); err != nil && !errors.Is(err, io.EOF) {
		respondInvalidBody(ctx, err)
		return
	}

	result, err := c.service.PromoteToMenu(ctx.Request.Context(), ctx.Param("id"), update)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}
