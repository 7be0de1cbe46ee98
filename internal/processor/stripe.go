package processor

import (
	"context"
	"fmt"
	"math"

	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

// PaymentProcessor creates a charge intent and returns the opaque client
// secret the frontend uses to complete the charge out-of-band. The
// processor's own ledger is not consulted here.
type PaymentProcessor interface {
	CreateIntent(ctx context.Context, amount float64, currency string) (string, error)
}

type StripeProcessor struct {
	client *client.API
}

func NewStripeProcessor(apiKey string) *StripeProcessor {
	sc := &client.API{}
	sc.Init(apiKey, nil)

	return &StripeProcessor{client: sc}
}

func (p *StripeProcessor) CreateIntent(ctx context.Context, amount float64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Params:             stripe.Params{Context: ctx},
		Amount:             stripe.Int64(MinorUnits(amount)),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	intent, err := p.client.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}

	return intent.ClientSecret, nil
}

// MinorUnits converts a major-unit amount to the processor's integer
// minor units (cents).
func MinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
