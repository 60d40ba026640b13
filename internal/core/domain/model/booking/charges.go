package booking

import (
	"errors"
	"fmt"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/pkg/errs"
	"github.com/mapsensemedia/betterrental/internal/pkg/guard"
)

// ErrChargesAreNotConstructed is returned when attempting to use improperly
// initialized Charges. Charges must be created via the NewCharges constructor.
var ErrChargesAreNotConstructed = errs.NewValueIsRequiredError(
	"charges must be created via NewCharges constructor")

// ErrChargesDoNotAddUp indicates that the total does not equal
// subtotal - discount + delivery fee.
var ErrChargesDoNotAddUp = errors.New("total must equal subtotal - discount + delivery fee")

// Charges is the immutable financial snapshot of a booking, priced at checkout
// time. Rates may change later; the snapshot keeps the amounts the customer
// actually agreed to.
//
// The invariant Total = Subtotal - Discount + DeliveryFee is enforced on
// construction, as is a single shared currency across all amounts.
type Charges struct { //nolint:recvcheck //using for validation
	subtotal    kernel.Money
	discount    kernel.Money
	deliveryFee kernel.Money
	total       kernel.Money
	deposit     kernel.Money
	guard       guard.ConstructorGuard
}

// NewCharges creates a validated financial snapshot.
//
// Parameters:
//   - subtotal: Time charge before discounts (daily rate x billed days)
//   - discount: Duration discount subtracted from the subtotal
//   - deliveryFee: Flat fee for delivering the vehicle
//   - total: Amount charged to the customer
//   - deposit: Security deposit held separately from the total
//
// Returns:
//   - Charges: A valid snapshot
//   - error: Validation error if any amount is invalid, currencies differ,
//     or the total does not add up
func NewCharges(subtotal, discount, deliveryFee, total, deposit kernel.Money) (Charges, error) {
	if err := errors.Join(
		subtotal.Validate(),
		discount.Validate(),
		deliveryFee.Validate(),
		total.Validate(),
		deposit.Validate(),
	); err != nil {
		return Charges{}, err
	}

	currency := subtotal.Currency()
	for _, m := range []kernel.Money{discount, deliveryFee, total, deposit} {
		if m.Currency() != currency {
			return Charges{}, kernel.ErrCurrencyMismatch
		}
	}

	afterDiscount, err := subtotal.Sub(discount)
	if err != nil {
		return Charges{}, errs.NewValueIsInvalidErrorWithCause("discount",
			fmt.Errorf("discount exceeds subtotal: %w", err))
	}
	expectedTotal, err := afterDiscount.Add(deliveryFee)
	if err != nil {
		return Charges{}, err
	}
	if equal, err := expectedTotal.IsEqual(total); err != nil || !equal {
		return Charges{}, errs.NewValueIsInvalidErrorWithCause("total", ErrChargesDoNotAddUp)
	}

	return Charges{
		subtotal:    subtotal,
		discount:    discount,
		deliveryFee: deliveryFee,
		total:       total,
		deposit:     deposit,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the Charges were properly constructed using the constructor.
func (c Charges) Validate() error {
	return c.guard.Validate(ErrChargesAreNotConstructed)
}

// Subtotal returns the time charge before discounts.
func (c Charges) Subtotal() kernel.Money {
	return c.subtotal
}

// Discount returns the duration discount.
func (c Charges) Discount() kernel.Money {
	return c.discount
}

// DeliveryFee returns the delivery fee.
func (c Charges) DeliveryFee() kernel.Money {
	return c.deliveryFee
}

// Total returns the amount charged to the customer.
func (c Charges) Total() kernel.Money {
	return c.total
}

// Deposit returns the security deposit held for the rental.
func (c Charges) Deposit() kernel.Money {
	return c.deposit
}
