package services

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrInvalidID      = errors.New("invalid id format")
	ErrMealNotFound   = errors.New("meal not found")
	ErrReviewNotFound = errors.New("review not found")
	ErrInvalidAmount  = errors.New("amount must be positive")
	ErrPaymentGateway = errors.New("payment gateway failure")
)

// validateID rejects ids that cannot name a stored row
func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidID
	}
	return nil
}
