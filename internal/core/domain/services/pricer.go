package services

import (
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/booking"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/vehicle"
)

// Duration discount tiers, as a percentage of the time charge.
const (
	weekDiscountDays     = 7
	weekDiscountPercent  = 10
	monthDiscountDays    = 30
	monthDiscountPercent = 20
)

// Pricer is a domain service that turns a vehicle category and a rental period
// into the financial snapshot a cart or booking carries.
//
// Pricing rules:
//   - Time charge = category daily rate x billed days (whole-day billing)
//   - Rentals of 7 days and longer get 10% off the time charge, 30 days and
//     longer get 20%
//   - The category's delivery fee is added on top
//   - The category's security deposit is quoted alongside, held separately
//     from the rental total
type Pricer struct{}

// NewPricer creates a new Pricer instance.
func NewPricer() Pricer {
	return Pricer{}
}

// Quote prices a rental of the given category over the given period.
//
// Parameters:
//   - category: The vehicle category being rented (must be valid)
//   - period: The validated rental period
//
// Returns:
//   - booking.Charges: The complete financial snapshot
//   - error: Validation error if the category or period is invalid
func (p Pricer) Quote(category *vehicle.Category, period kernel.RentalPeriod) (booking.Charges, error) {
	if err := category.Validate(); err != nil {
		return booking.Charges{}, err
	}
	if err := period.Validate(); err != nil {
		return booking.Charges{}, err
	}

	subtotal, err := category.DailyRate().MultiplyDays(period.Days())
	if err != nil {
		return booking.Charges{}, err
	}

	discount, err := subtotal.Percent(p.discountPercent(period.Days()))
	if err != nil {
		return booking.Charges{}, err
	}

	discounted, err := subtotal.Sub(discount)
	if err != nil {
		return booking.Charges{}, err
	}

	total, err := discounted.Add(category.DeliveryFee())
	if err != nil {
		return booking.Charges{}, err
	}

	return booking.NewCharges(subtotal, discount, category.DeliveryFee(), total, category.Deposit())
}

// discountPercent returns the duration discount tier for the billed days.
func (p Pricer) discountPercent(days int) int64 {
	switch {
	case days >= monthDiscountDays:
		return monthDiscountPercent
	case days >= weekDiscountDays:
		return weekDiscountPercent
	default:
		return 0
	}
}
