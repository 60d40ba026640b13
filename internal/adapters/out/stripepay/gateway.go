// Package stripepay implements the payment gateway port on top of Stripe
// payment intents.
package stripepay

import (
	"context"
	"fmt"
	"strings"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// Gateway charges and refunds cards through the Stripe API. The payment
// intent id is the payment reference stored on the booking.
type Gateway struct {
	api *client.API
}

// NewGateway creates a Stripe-backed payment gateway.
func NewGateway(secretKey string) *Gateway {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &Gateway{api: api}
}

// Charge captures the amount with an immediately confirmed payment intent
// and returns the intent id for later refunds.
func (g *Gateway) Charge(
	ctx context.Context,
	amount kernel.Money,
	paymentMethod string,
	description string,
) (string, error) {
	params := &stripe.PaymentIntentParams{
		Params:        stripe.Params{Context: ctx},
		Amount:        stripe.Int64(amount.Amount()),
		Currency:      stripe.String(strings.ToLower(amount.Currency())),
		PaymentMethod: stripe.String(paymentMethod),
		Description:   stripe.String(description),
		Confirm:       stripe.Bool(true),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled:        stripe.Bool(true),
			AllowRedirects: stripe.String("never"),
		},
	}

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe charge: %w", err)
	}

	if intent.Status != stripe.PaymentIntentStatusSucceeded {
		return "", fmt.Errorf("stripe charge: payment intent %s is %s", intent.ID, intent.Status)
	}

	return intent.ID, nil
}

// Refund returns part of a captured payment to the customer.
func (g *Gateway) Refund(ctx context.Context, paymentRef string, amount kernel.Money) error {
	params := &stripe.RefundParams{
		Params:        stripe.Params{Context: ctx},
		PaymentIntent: stripe.String(paymentRef),
		Amount:        stripe.Int64(amount.Amount()),
	}

	if _, err := g.api.Refunds.New(params); err != nil {
		return fmt.Errorf("stripe refund %s: %w", paymentRef, err)
	}

	return nil
}
