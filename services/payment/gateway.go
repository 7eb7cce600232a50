package payment

import (
	"context"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// Gateway creates card payment intents with the payment provider.
type Gateway interface {
	CreateIntent(ctx context.Context, amountCents int64) (clientSecret string, err error)
}

// StripeGateway uses the package-level stripe.Key set at startup.
type StripeGateway struct {
	Currency string
}

func NewStripeGateway() *StripeGateway {
	return &StripeGateway{Currency: string(stripe.CurrencyUSD)}
}

func (g *StripeGateway) CreateIntent(ctx context.Context, amountCents int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountCents),
		Currency:           stripe.String(g.Currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe payment intent failed: %w", err)
	}
	return pi.ClientSecret, nil
}

// toCents converts a price in major units to the smallest currency unit.
func toCents(price float64) int64 {
	return int64(math.Round(price * 100))
}
