package payments

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// SetLogLevel changes the level of the payment gateway logger
func SetLogLevel(level logrus.Level) {
	log.SetLevel(level)
}

// ErrNotConfigured is returned when no gateway credentials were provided
var ErrNotConfigured = errors.New("payment gateway is not configured")

// Gateway creates charge intents with an external payment provider
type Gateway interface {
	// CreateIntent starts a card charge of amount minor units and returns the client secret
	CreateIntent(ctx context.Context, amount int64, currency string) (string, error)
}

// StripeGateway is a Gateway backed by Stripe payment intents
type StripeGateway struct {
	api *client.API
}

// NewStripeGateway creates a gateway using the given secret key
func NewStripeGateway(secretKey string) *StripeGateway {
	if secretKey == "" {
		log.Warn("STRIPE_SECRET_KEY is empty, charge intents will fail")
		return &StripeGateway{}
	}
	return &StripeGateway{api: client.New(secretKey, nil)}
}

func (g *StripeGateway) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	if g.api == nil {
		return "", ErrNotConfigured
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("create payment intent: %w", err)
	}
	log.WithFields(logrus.Fields{
		"intent_id": intent.ID,
		"amount":    amount,
		"currency":  currency,
	}).Info("Payment intent created")
	return intent.ClientSecret, nil
}
