package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/meal-master-api/internal/models"
	"github.com/franciscosanchezn/meal-master-api/internal/services"
	"github.com/gin-gonic/gin"
)

// ChargeRequest is the body of a payment intent request
type ChargeRequest struct {
	Price float64 `json:"price" binding:"required"`
}

// PaymentController handles membership checkout
type PaymentController interface {
	CreateChargeIntent(c *gin.Context)
	RecordPayment(c *gin.Context)
	ListPayments(c *gin.Context)
	DeletePayment(c *gin.Context)
}

type paymentController struct {
	service services.PaymentService
}

// NewPaymentController creates a new instance of PaymentController
func NewPaymentController(service services.PaymentService) PaymentController {
	return &paymentController{service: service}
}

// CreateChargeIntent godoc
// @Summary Start a card payment
// @Description Creates a payment intent for the price in USD and returns its client secret
// @Tags payments
// @Accept json
// @Produce json
// @Param charge body controllers.ChargeRequest true "Price"
// @Success 200 {object} models.ChargeIntent
// @Failure 400 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /create-payment-intent [post]
func (c *paymentController) CreateChargeIntent(ctx *gin.Context) {
	var req ChargeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx, err)
		return
	}

	intent, err := c.service.CreateChargeIntent(ctx.Request.Context(), req.Price)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, intent)
}

// RecordPayment godoc
// @Summary Record a completed payment
// @Description Stores the payment and sets the payer's badge to the purchased tier
// @Tags payments
// @Accept json
// @Produce json
// @Param payment body models.Payment true "Payment"
// @Success 200 {object} models.InsertResult
// @Failure 400 {object} models.APIError
// @Router /payments [post]
func (c *paymentController) RecordPayment(ctx *gin.Context) {
	var payment models.Payment
	if err := ctx.ShouldBindJSON(&payment); err != nil {
		respondInvalidBody(ctx, err)
		return
	}

	result, err := c.service.RecordPayment(ctx.Request.Context(), payment)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// ListPayments godoc
// @Summary List payments
// @Tags payments
// @Produce json
// @Param email query string false "Payer email"
// @Success 200 {array} models.Payment
// @Router /payments [get]
func (c *paymentController) ListPayments(ctx *gin.Context) {
	history, err := c.service.ListPayments(ctx.Request.Context(), ctx.Query("email"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, history)
}

// DeletePayment godoc
// @Summary Delete a payment
// @Tags payments
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} models.DeleteResult
// @Failure 400 {object} models.APIError
// @Router /payments/{id} [delete]
func (c *paymentController) DeletePayment(ctx *gin.Context) {
	result, err := c.service.DeletePayment(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}
