package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/meal-master-api/internal/models"
	"github.com/franciscosanchezn/meal-master-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// SetLogLevel changes the level of the controller logger
func SetLogLevel(level logrus.Level) {
	log.SetLevel(level)
}

// respondError maps service errors to a status and an APIError body
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidID):
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid id format"))
	case errors.Is(err, services.ErrMealNotFound):
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrMealNotFound, "Meal not found"))
	case errors.Is(err, services.ErrReviewNotFound):
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrReviewNotFound, "Review not found"))
	case errors.Is(err, services.ErrInvalidAmount):
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, err.Error()))
	case errors.Is(err, services.ErrPaymentGateway):
		log.WithError(err).Error("Payment gateway request failed")
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrPaymentGateway, err.Error()))
	default:
		log.WithError(err).WithField("path", ctx.Request.URL.Path).Error("Request failed")
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, err.Error()))
	}
}

// respondInvalidBody rejects a request body that failed binding or validation
func respondInvalidBody(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, "Invalid request body",
		map[string]interface{}{"error": err.Error()}))
}

// pageQuery reads the 1-based page and size query parameters. Missing or malformed values disable paging.
func pageQuery(ctx *gin.Context) services.PageRequest {
	page, _ := strconv.Atoi(ctx.Query("page"))
	size, _ := strconv.Atoi(ctx.Query("size"))
	return services.PageRequest{Page: page, Size: size}
}

// floatQuery returns the parsed query parameter, or nil when it is absent or not a number
func floatQuery(ctx *gin.Context, key string) *float64 {
	value, err := strconv.ParseFloat(ctx.Query(key), 64)
	if err != nil {
		return nil
	}
	return &value
}
