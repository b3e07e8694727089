package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/meal-master-api/internal/auth"
	"github.com/franciscosanchezn/meal-master-api/internal/models"
	"github.com/franciscosanchezn/meal-master-api/internal/services"
	"github.com/gin-gonic/gin"
)

// ReviewController handles HTTP requests related to meal reviews
type ReviewController interface {
	AddReview(c *gin.Context)
	UpdateReview(c *gin.Context)
	DeleteReview(c *gin.Context)
	ListAllReviews(c *gin.Context)
	ListReviewsByUser(c *gin.Context)
}

type reviewController struct {
	service services.ReviewService
}

// NewReviewController creates a new instance of ReviewController
func NewReviewController(service services.ReviewService) ReviewController {
	return &reviewController{service: service}
}

// AddReview godoc
// @Summary Review a menu item
// @Description Append a review and recompute the meal rating and rating histogram
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path string true "Meal ID"
// @Param review body models.Review true "Review"
// @Success 200 {object} models.UpdateResult
// @Failure 400 {object} models.APIError
// @Failure 401 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security CookieAuth
// @Router /review/{id} [post]
func (c *reviewController) AddReview(ctx *gin.Context) {
	var review models.Review
	if err := ctx.ShouldBindJSON(&review); err != nil {
		respondInvalidBody(ctx, err)
		return
	}
	if review.Email == "" {
		if claims, ok := auth.ClaimsFrom(ctx.Request.Context()); ok {
			review.Email = claims.Email
		}
	}

	result, err := c.service.AddReview(ctx.Request.Context(), ctx.Param("id"), review)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// UpdateReview godoc
// @Summary Edit a review
// @Description The review is found by the created_time in the body
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path string true "Review created_time (unused, the body value is authoritative)"
// @Param review body models.ReviewUpdate true "New rating and text"
// @Success 200 {object} models.UpdateResult
// @Failure 400 {object} models.APIError
// @Failure 401 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security CookieAuth
// @Router /review/{id} [put]
func (c *reviewController) UpdateReview(ctx *gin.Context) {
	var update models.ReviewUpdate
	if err := ctx.ShouldBindJSON(&update); err != nil {
		respondInvalidBody(ctx, err)
		return
	}

	result, err := c.service.UpdateReview(ctx.Request.Context(), update)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// DeleteReview godoc
// @Summary Delete a review
// @Description Remove the reviews with the given created_time. The meal rating is not recomputed.
// @Tags reviews
// @Produce json
// @Param id path string true "Review created_time"
// @Success 200 {object} models.UpdateResult
// @Failure 401 {object} models.APIError
// @Security CookieAuth
// @Router /review/{id} [delete]
func (c *reviewController) DeleteReview(ctx *gin.Context) {
	result, err := c.service.DeleteReview(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// ListAllReviews godoc
// @Summary Page through all reviews
// @Description Count is the number of menu items
// @Tags reviews
// @Produce json
// @Param page query int false "1-based page"
// @Param size query int false "Page size"
// @Success 200 {object} models.Page[models.ReviewRow]
// @Failure 401 {object} models.APIError
// @Failure 403 {object} models.APIError
// @Security CookieAuth
// @Router /all-reviews [get]
func (c *reviewController) ListAllReviews(ctx *gin.Context) {
	page, err := c.service.ListAllReviews(ctx.Request.Context(), pageQuery(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, page)
}

// ListReviewsByUser godoc
// @Summary Page through a user's reviews
// @Tags reviews
// @Produce json
// @Param email query string true "Reviewer email"
// @Param page query int false "1-based page"
// @Param size query int false "Page size"
// @Success 200 {object} models.Page[models.ReviewRow]
// @Failure 400 {object} models.APIError
// @Failure 401 {object} models.APIError
// @Security CookieAuth
// @Router /reviews [get]
func (c *reviewController) ListReviewsByUser(ctx *gin.Context) {
	email := ctx.Query("email")
	if email == "" {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Email is required"))
		return
	}

	page, err := c.service.ListReviewsByUser(ctx.Request.Context(), email, pageQuery(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, page)
}
