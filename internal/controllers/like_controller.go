package controllers

import (
	"context"
	"net/http"

	"github.com/franciscosanchezn/meal-master-api/internal/models"
	"github.com/franciscosanchezn/meal-master-api/internal/services"
	"github.com/gin-gonic/gin"
)

// LikeController handles like toggles on menu items and upcoming meals
type LikeController interface {
	LikeMenuItem(c *gin.Context)
	LikeUpcomingMeal(c *gin.Context)
}

type likeController struct {
	service services.LikeService
}

// NewLikeController creates a new instance of LikeController
func NewLikeController(service services.LikeService) LikeController {
	return &likeController{service: service}
}

// LikeMenuItem godoc
// @Summary Like or unlike a menu item
// @Tags likes
// @Accept json
// @Produce json
// @Param like body models.LikeRequest true "Like"
// @Success 200 {object} models.UpdateResult
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /like [post]
func (c *likeController) LikeMenuItem(ctx *gin.Context) {
	c.toggle(ctx, c.service.ToggleMenuLike)
}

// LikeUpcomingMeal godoc
// @Summary Like or unlike an upcoming meal
// @Description Changing an existing like so that the meal reaches 10 likes publishes it to the menu
// @Tags likes
// @Accept json
// @Produce json
// @Param like body models.LikeRequest true "Like"
// @Success 200 {object} models.UpdateResult
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /upcoming-like [post]
func (c *likeController) LikeUpcomingMeal(ctx *gin.Context) {
	c.toggle(ctx, c.service.ToggleUpcomingLike)
}

func (c *likeController) toggle(ctx *gin.Context, apply func(context.Context, models.LikeRequest) (models.UpdateResult, error)) {
	var req models.LikeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, err)
		return
	}

	result, err := apply(ctx.Request.Context(), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}
