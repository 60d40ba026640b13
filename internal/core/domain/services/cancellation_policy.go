package services

import (
	"time"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
)

// Cancellation fee tiers, keyed by how far ahead of the rental start the
// cancellation happens. The fee is a percentage of the rental subtotal; the
// security deposit is always released in full regardless of the tier.
const (
	freeCancellationWindow = 72 * time.Hour
	lateCancellationWindow = 24 * time.Hour

	lateCancellationPercent       = 25
	lastMinuteCancellationPercent = 50
	afterStartCancellationPercent = 100
)

// CancellationPolicy is a domain service that computes the fee kept from the
// customer's payment when a booking is cancelled.
//
// Fee tiers (time from cancellation to the rental start):
//   - 72 hours or more: free
//   - 24 to 72 hours: 25% of the rental subtotal
//   - under 24 hours: 50%
//   - after the rental started: 100%
type CancellationPolicy struct{}

// NewCancellationPolicy creates a new CancellationPolicy instance.
func NewCancellationPolicy() CancellationPolicy {
	return CancellationPolicy{}
}

// Fee computes the cancellation fee for a rental with the given subtotal
// starting at the given instant, cancelled at the given moment.
//
// Parameters:
//   - subtotal: The rental subtotal the percentage applies to
//   - start: When the rental period begins
//   - at: When the cancellation happens
//
// Returns:
//   - kernel.Money: The fee kept from the customer's payment
//   - error: Validation error if the subtotal is invalid
func (c CancellationPolicy) Fee(subtotal kernel.Money, start time.Time, at time.Time) (kernel.Money, error) {
	if err := subtotal.Validate(); err != nil {
		return kernel.Money{}, err
	}

	return subtotal.Percent(c.feePercent(start.Sub(at)))
}

// feePercent returns the fee tier for the time remaining until the rental start.
func (c CancellationPolicy) feePercent(untilStart time.Duration) int64 {
	switch {
	case untilStart >= freeCancellationWindow:
		return 0
	case untilStart >= lateCancellationWindow:
		return lateCancellationPercent
	case untilStart > 0:
		return lastMinuteCancellationPercent
	default:
		return afterStartCancellationPercent
	}
}
