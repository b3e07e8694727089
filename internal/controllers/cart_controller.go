package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/meal-master-api/internal/models"
	"github.com/franciscosanchezn/meal-master-api/internal/services"
	"github.com/gin-gonic/gin"
)

// CartController handles meal requests placed by users
type CartController interface {
	AddToCart(c *gin.Context)
	ListCartForUser(c *gin.Context)
	PageCartForUser(c *gin.Context)
	ListAllCarts(c *gin.Context)
	MarkDelivered(c *gin.Context)
	RemoveCartEntry(c *gin.Context)
}

type cartController struct {
	service services.CartService
}

// NewCartController creates a new instance of CartController
func NewCartController(service services.CartService) CartController {
	return &cartController{service: service}
}

// AddToCart godoc
// @Summary Request a meal
// @Tags carts
// @Accept json
// @Produce json
// @Param entry body models.CartEntry true "Cart entry"
// @Success 200 {object} models.InsertResult
// @Failure 400 {object} models.APIError
// @Failure 401 {object} models.APIError
// @Security CookieAuth
// @Router /carts [post]
func (c *cartController) AddToCart(ctx *gin.Context) {
	var entry models.CartEntry
	if err := ctx.ShouldBindJSON(&entry); err != nil {
		respondInvalidBody(ctx, err)
		return
	}

	result, err := c.service.AddToCart(ctx.Request.Context(), entry)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// ListCartForUser godoc
// @Summary List a user's requested meals
// @Description Each entry carries the referenced menu item, or null when it no longer exists
// @Tags carts
// @Produce json
// @Param email query string true "User email"
// @Success 200 {array} models.CartLine
// @Failure 400 {array} models.CartLine
// @Failure 401 {object} models.APIError
// @Security CookieAuth
// @Router /carts [get]
func (c *cartController) ListCartForUser(ctx *gin.Context) {
	email := ctx.Query("email")
	if email == "" {
		ctx.JSON(http.StatusBadRequest, []models.CartLine{})
		return
	}

	lines, err := c.service.ListCartForUser(ctx.Request.Context(), email)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, lines)
}

// PageCartForUser godoc
// @Summary Page through a user's requested meals
// @Tags carts
// @Produce json
// @Param email query string true "User email"
// @Param page query int false "1-based page"
// @Param size query int false "Page size"
// @Success 200 {object} models.Page[models.CartLine]
// @Failure 400 {array} models.CartLine
// @Router /carts-sort [get]
func (c *cartController) PageCartForUser(ctx *gin.Context) {
	email := ctx.Query("email")
	if email == "" {
		ctx.JSON(http.StatusBadRequest, []models.CartLine{})
		return
	}

	page, err := c.service.PageCartForUser(ctx.Request.Context(), email, pageQuery(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, page)
}

// ListAllCarts godoc
// @Summary Page through every requested meal
// @Tags carts
// @Produce json
// @Param search query string false "Name or email contains"
// @Param page query int false "1-based page"
// @Param size query int false "Page size"
// @Success 200 {object} models.Page[models.CartEntry]
// @Router /all-carts [get]
func (c *cartController) ListAllCarts(ctx *gin.Context) {
	page, err := c.service.ListAllCarts(ctx.Request.Context(), pageQuery(ctx), ctx.Query("search"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, page)
}

// MarkDelivered godoc
// @Summary Mark a requested meal as delivered
// @Tags carts
// @Produce json
// @Param id path string true "Cart entry ID"
// @Success 200 {object} models.UpdateResult
// @Failure 400 {object} models.APIError
// @Failure 401 {object} models.APIError
// @Failure 403 {object} models.APIError
// @Security CookieAuth
// @Router /all-carts/{id} [patch]
func (c *cartController) MarkDelivered(ctx *gin.Context) {
	result, err := c.service.MarkDelivered(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// RemoveCartEntry godoc
// @Summary Cancel a requested meal
// @Tags carts
// @Produce json
// @Param id path string true "Cart entry ID"
// @Success 200 {object} models.DeleteResult
// @Failure 400 {object} models.APIError
// @Router /carts/{id} [delete]
func (c *cartController) RemoveCartEntry(ctx *gin.Context) {
	result, err := c.service.RemoveCartEntry(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}
