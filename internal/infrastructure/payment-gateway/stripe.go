package paymentgateway

import (
	"context"

	"github.com/KamrujjamanRony/sura-tools-serverside/config"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

type StripeGateway struct {
	client *client.API
}

func CreateStripeGateway(config *config.Config) *StripeGateway {
	sc := &client.API{}
	sc.Init(config.StripeConfig.SecretKey, nil)

	return &StripeGateway{client: sc}
}

// CreatePaymentIntent requests a card payment intent for the given amount in
// minor units and returns the intent's client secret. No idempotency key is
// attached, so every call creates a new intent.
func (g *StripeGateway) CreatePaymentIntent(ctx context.Context, amount int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := g.client.PaymentIntents.New(params)
	if err != nil {
		return "", err
	}

	return intent.ClientSecret, nil
}
