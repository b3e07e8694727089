package services

import (
	"context"
	"fmt"

	"github.com/franciscosanchezn/meal-master-api/internal/models"
	"github.com/franciscosanchezn/meal-master-api/internal/payments"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ChargeCurrency is the currency of every charge intent
const ChargeCurrency = "usd"

// PaymentService handles membership checkout
type PaymentService interface {
	// CreateChargeIntent asks the gateway for a card charge of price dollars
	CreateChargeIntent(ctx context.Context, price float64) (models.ChargeIntent, error)
	// RecordPayment stores the payment and sets the payer's badge to the purchased tier
	RecordPayment(ctx context.Context, payment models.Payment) (models.InsertResult, error)
	ListPayments(ctx context.Context, email string) ([]models.Payment, error)
	DeletePayment(ctx context.Context, id string) (models.DeleteResult, error)
}

type paymentService struct {
	db      *gorm.DB
	gateway payments.Gateway
}

// NewPaymentService creates a new instance of PaymentService
func NewPaymentService(db *gorm.DB, gateway payments.Gateway) PaymentService {
	return &paymentService{db: db, gateway: gateway}
}

// minorUnits converts a dollar price to whole cents, dropping any fraction of a cent
func minorUnits(price float64) int64 {
	return decimal.NewFromFloat(price).Shift(2).Truncate(0).IntPart()
}

func (s *paymentService) CreateChargeIntent(ctx context.Context, price float64) (models.ChargeIntent, error) {
	amount := minorUnits(price)
	if amount <= 0 {
		return models.ChargeIntent{}, ErrInvalidAmount
	}
	secret, err := s.gateway.CreateIntent(ctx, amount, ChargeCurrency)
	if err != nil {
		return models.ChargeIntent{}, fmt.Errorf("%w: %v", ErrPaymentGateway, err)
	}
	return models.ChargeIntent{ClientSecret: secret}, nil
}

func (s *paymentService) RecordPayment(ctx context.Context, payment models.Payment) (models.InsertResult, error) {
	payment.ID = ""
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}
		res := tx.Model(&models.User{}).
			Where("email = ?", payment.Email).
			Update("badge", payment.ServiceName)
		if res.Error != nil {
			return res.Error
		}
		log.WithField("payment_id", payment.ID).
			WithField("badge_updated", res.RowsAffected > 0).
			Info("Payment recorded")
		return nil
	})
	if err != nil {
		return models.InsertResult{}, fmt.Errorf("record payment: %w", err)
	}
	return models.Inserted(payment.ID), nil
}

func (s *paymentService) ListPayments(ctx context.Context, email string) ([]models.Payment, error) {
	history := []models.Payment{}
	if err := s.db.WithContext(ctx).Where("email = ?", email).Order("date").Find(&history).Error; err != nil {
		return nil, fmt.Errorf("list payments of %s: %w", email, err)
	}
	return history, nil
}

func (s *paymentService) DeletePayment(ctx context.Context, id string) (models.DeleteResult, error) {
	if err := validateID(id); err != nil {
		return models.DeleteResult{}, err
	}
	res := s.db.WithContext(ctx).Delete(&models.Payment{}, "id = ?", id)
	if res.Error != nil {
		return models.DeleteResult{}, fmt.Errorf("delete payment %s: %w", id, res.Error)
	}
	return models.Deleted(res.RowsAffected), nil
}
