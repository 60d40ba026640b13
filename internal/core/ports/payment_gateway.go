package ports

import (
	"context"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
)

// PaymentGateway abstracts the external card processor. The gateway is called
// outside the database transaction: a charge happens before the checkout
// writes, a refund after the cancellation or settlement commit.
type PaymentGateway interface {
	// Charge captures the given amount from the customer's payment method and
	// returns the gateway's payment reference for later refunds.
	Charge(ctx context.Context, amount kernel.Money, paymentMethod string, description string) (string, error)

	// Refund returns part of a captured payment to the customer.
	Refund(ctx context.Context, paymentRef string, amount kernel.Money) error
}

// Notifier abstracts the outbound SMS channel used for booking confirmations,
// abandoned-cart nudges and pickup reminders. Send failures are logged by the
// caller and never block a state change.
type Notifier interface {
	// SendSMS delivers a text message to the given phone number.
	SendSMS(ctx context.Context, phone string, message string) error
}
