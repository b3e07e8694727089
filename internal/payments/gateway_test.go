package payments

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripeGatewayWithoutKey(t *testing.T) {
	gateway := NewStripeGateway("")
	require.NotNil(t, gateway)

	secret, err := gateway.CreateIntent(context.Background(), 999, "usd")
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Empty(t, secret)
}

func TestStripeGatewayWithKey(t *testing.T) {
	gateway := NewStripeGateway("sk_test_123")
	assert.NotNil(t, gateway.api)
}
