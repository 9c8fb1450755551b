package payments

import (
	"context"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"

	"github.com/tasnim/scholarhub/internal/pkg/apperrors"
)

// IntentCreator creates a payment intent with the external provider and
// returns its client secret.
type IntentCreator interface {
	CreateIntent(ctx context.Context, price float64) (string, error)
}

// Service wraps the Stripe payment-intent API
type Service struct {
	api      *client.API
	currency string
}

// NewService creates a Stripe-backed payment service
func NewService(secretKey, currency string) *Service {
	api := &client.API{}
	api.Init(secretKey, nil)

	if currency == "" {
		currency = "usd"
	}

	return &Service{
		api:      api,
		currency: currency,
	}
}

// MinorUnits converts a decimal price to the provider's integer minor-unit
// amount (cents), rounding to the nearest unit.
func MinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

// CreateIntent creates a card payment intent for the given decimal price
// and returns the client secret the frontend needs to complete the charge.
func (s *Service) CreateIntent(ctx context.Context, price float64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Params: stripe.Params{
			Context: ctx,
		},
		Amount:             stripe.Int64(MinorUnits(price)),
		Currency:           stripe.String(s.currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	intent, err := s.api.PaymentIntents.New(params)
	if err != nil {
		return "", apperrors.NewCustomError(apperrors.ErrPaymentProvider,
			fmt.Sprintf("failed to create payment intent: %v", err))
	}

	return intent.ClientSecret, nil
}
