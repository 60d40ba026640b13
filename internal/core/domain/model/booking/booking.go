package booking

import (
	"errors"
	"time"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/pkg/errs"
	"github.com/mapsensemedia/betterrental/internal/pkg/guard"
)

// ErrBookingIsNotConstructed is returned when a Booking instance was not created
// through the NewBooking or RestoreBooking factory methods. This ensures all
// bookings are properly validated.
var ErrBookingIsNotConstructed = errors.New("Booking must be created via NewBooking or RestoreBooking constructors")

// Booking represents a vehicle rental reservation. It is the aggregate root that
// manages the booking lifecycle from checkout through confirmation and the active
// rental to completion or cancellation.
//
// Booking follows these invariants:
//   - Must have valid identifiers for itself, the customer and the vehicle category
//   - Must have a valid rental period and non-empty pickup/return addresses
//   - Carries an immutable financial snapshot priced at checkout time
//   - A vehicle unit is assigned on confirmation and required from then on
//   - Status transitions follow the defined state machine
//   - Can only be created through its constructors
type Booking struct {
	id         kernel.UUID
	customerID kernel.UUID
	categoryID kernel.UUID

	// unitID is the assigned vehicle unit (nil until the booking is confirmed)
	unitID *kernel.UUID

	period        kernel.RentalPeriod
	pickupAddress string
	returnAddress string
	charges       Charges

	// paymentRef is the gateway's reference of the checkout charge; refunds
	// (cancellation, deposit release) run against it
	paymentRef string

	// cancellationFee is set once, when the booking is cancelled
	cancellationFee *kernel.Money

	status    Status
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewBooking creates a new Booking in Pending status with validation. This is
// the entry point of the booking lifecycle, called during cart checkout.
//
// Parameters:
//   - id: Unique identifier for the booking
//   - customerID: Identifier of the renting customer account
//   - categoryID: Identifier of the booked vehicle category
//   - period: Validated rental period
//   - pickupAddress: Street address where the vehicle is delivered
//   - returnAddress: Street address where the vehicle is picked up after the rental
//   - charges: Financial snapshot priced at checkout
//
// Returns:
//   - *Booking: The created booking if all validations pass
//   - error: Validation error if any parameter is invalid
//
// The constructor ensures the booking starts as Pending with no unit assigned.
func NewBooking(
	id kernel.UUID,
	customerID kernel.UUID,
	categoryID kernel.UUID,
	period kernel.RentalPeriod,
	pickupAddress string,
	returnAddress string,
	charges Charges,
) (*Booking, error) {
	booking := &Booking{
		status:    Pending,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		booking.setID(id),
		booking.setCustomerID(customerID),
		booking.setCategoryID(categoryID),
		booking.setPeriod(period),
		booking.setPickupAddress(pickupAddress),
		booking.setReturnAddress(returnAddress),
		booking.setCharges(charges),
	); err != nil {
		return nil, err
	}

	return booking, nil
}

// RestoreBooking reconstructs a Booking aggregate from persistent storage.
// Unlike NewBooking, which always starts the lifecycle at Pending, this
// constructor restores a booking to its previously persisted state.
//
// Parameters:
//   - id: Unique identifier for the booking
//   - customerID: Identifier of the renting customer account
//   - categoryID: Identifier of the booked vehicle category
//   - unitID: Assigned vehicle unit, nil if not yet confirmed
//   - period: Validated rental period
//   - pickupAddress: Street address where the vehicle is delivered
//   - returnAddress: Street address where the vehicle is picked up after the rental
//   - charges: Financial snapshot priced at checkout
//   - paymentRef: Gateway reference of the checkout charge, empty if unpaid
//   - cancellationFee: Fee charged on cancellation, nil unless cancelled
//   - status: Persisted lifecycle status
//   - createdAt: Original creation timestamp
//
// Returns:
//   - *Booking: Restored booking aggregate
//   - error: Validation error if any parameter is invalid or the status is
//     inconsistent with the unit assignment
func RestoreBooking(
	id kernel.UUID,
	customerID kernel.UUID,
	categoryID kernel.UUID,
	unitID *kernel.UUID,
	period kernel.RentalPeriod,
	pickupAddress string,
	returnAddress string,
	charges Charges,
	paymentRef string,
	cancellationFee *kernel.Money,
	status Status,
	createdAt time.Time,
) (*Booking, error) {
	booking := &Booking{
		paymentRef: paymentRef,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		booking.setID(id),
		booking.setCustomerID(customerID),
		booking.setCategoryID(categoryID),
		booking.setPeriod(period),
		booking.setPickupAddress(pickupAddress),
		booking.setReturnAddress(returnAddress),
		booking.setCharges(charges),
		booking.setStatus(status),
		booking.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	if unitID != nil {
		if err := unitID.Validate(); err != nil {
			return nil, err
		}
		booking.unitID = unitID
	}
	if err := status.ValidateCanHaveUnit(booking.unitID != nil); err != nil {
		return nil, err
	}

	if cancellationFee != nil {
		if err := cancellationFee.Validate(); err != nil {
			return nil, err
		}
		booking.cancellationFee = cancellationFee
	}

	return booking, nil
}

// Validate ensures the Booking instance was properly constructed through a constructor.
// This prevents bypassing validation by directly instantiating the struct.
func (b *Booking) Validate() error {
	if b == nil {
		return ErrBookingIsNotConstructed
	}
	return b.guard.Validate(ErrBookingIsNotConstructed)
}

// IsEqual compares two bookings by their unique identifiers.
func (b *Booking) IsEqual(other *Booking) bool {
	return other != nil && b.id.IsEqual(other.id)
}

// ID returns the booking's unique identifier.
func (b *Booking) ID() kernel.UUID {
	return b.id
}

// CustomerID returns the identifier of the renting customer account.
func (b *Booking) CustomerID() kernel.UUID {
	return b.customerID
}

// CategoryID returns the identifier of the booked vehicle category.
func (b *Booking) CategoryID() kernel.UUID {
	return b.categoryID
}

// UnitID returns the assigned vehicle unit's ID.
// Returns nil if no unit is assigned yet.
func (b *Booking) UnitID() *kernel.UUID {
	return b.unitID
}

// Period returns the rental period.
func (b *Booking) Period() kernel.RentalPeriod {
	return b.period
}

// PickupAddress returns the address the vehicle is delivered to.
func (b *Booking) PickupAddress() string {
	return b.pickupAddress
}

// ReturnAddress returns the address the vehicle is collected from.
func (b *Booking) ReturnAddress() string {
	return b.returnAddress
}

// Charges returns the financial snapshot priced at checkout.
func (b *Booking) Charges() Charges {
	return b.charges
}

// PaymentRef returns the gateway's reference of the checkout charge.
// Empty until a payment is attached.
func (b *Booking) PaymentRef() string {
	return b.paymentRef
}

// AttachPaymentRef records the gateway's reference of the checkout charge.
// The reference is written once and never changes afterwards.
func (b *Booking) AttachPaymentRef(ref string) error {
	if ref == "" {
		return errs.NewValueIsRequiredError("paymentRef")
	}
	if b.paymentRef != "" {
		return errs.NewValueIsInvalidError("paymentRef is already attached")
	}
	b.paymentRef = ref
	return nil
}

// CancellationFee returns the fee charged on cancellation.
// Returns nil unless the booking is cancelled.
func (b *Booking) CancellationFee() *kernel.Money {
	return b.cancellationFee
}

// Status returns the current status of the booking.
func (b *Booking) Status() Status {
	return b.status
}

// CreatedAt returns the creation timestamp of the booking.
func (b *Booking) CreatedAt() time.Time {
	return b.createdAt
}

// Confirm assigns a vehicle unit to the booking and transitions it to Confirmed.
//
// This method enforces the following business rules:
//   - The unit ID must be valid
//   - The booking must be in Pending status
//
// Parameters:
//   - unitID: The ID of the vehicle unit reserved for this booking
//
// Returns:
//   - nil on successful confirmation
//   - error if the unit ID is invalid or the status transition is not allowed
func (b *Booking) Confirm(unitID kernel.UUID) error {
	if err := unitID.Validate(); err != nil {
		return err
	}

	newStatus, err := b.status.Confirm()
	if err != nil {
		return err
	}

	b.status = newStatus
	b.unitID = &unitID
	return nil
}

// Activate marks the rental as started after the vehicle was delivered to the
// customer. Only the delivered handover transition calls this.
//
// Returns:
//   - nil on success
//   - error if the booking is not in Confirmed status
func (b *Booking) Activate() error {
	newStatus, err := b.status.Activate()
	if err != nil {
		return err
	}

	b.status = newStatus
	return nil
}

// Complete marks the booking as completed after the return was settled.
//
// Returns:
//   - nil on success
//   - error if the booking is not in Active status
func (b *Booking) Complete() error {
	newStatus, err := b.status.Complete()
	if err != nil {
		return err
	}

	b.status = newStatus
	return nil
}

// Cancel cancels the booking and records the cancellation fee computed by the
// cancellation policy. The fee must be denominated in the booking currency and
// must not exceed the booking total.
//
// Parameters:
//   - fee: The cancellation fee kept from the customer's payment
//
// Returns:
//   - nil on successful cancellation
//   - error if the fee is invalid or the status transition is not allowed
func (b *Booking) Cancel(fee kernel.Money) error {
	if err := fee.Validate(); err != nil {
		return err
	}
	if fee.Currency() != b.charges.Total().Currency() {
		return kernel.ErrCurrencyMismatch
	}
	if fee.Amount() > b.charges.Total().Amount() {
		return errs.NewValueIsOutOfRangeError("fee", fee.Amount(), 0, b.charges.Total().Amount())
	}

	newStatus, err := b.status.Cancel()
	if err != nil {
		return err
	}

	b.status = newStatus
	b.cancellationFee = &fee
	return nil
}

// setID validates and sets the booking's unique identifier.
// This is a private method used only during construction.
func (b *Booking) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

// setCustomerID validates and sets the renting customer's identifier.
// This is a private method used only during construction.
func (b *Booking) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	b.customerID = customerID
	return nil
}

// setCategoryID validates and sets the booked category's identifier.
// This is a private method used only during construction.
func (b *Booking) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return err
	}
	b.categoryID = categoryID
	return nil
}

// setPeriod validates and sets the rental period.
// This is a private method used only during construction.
func (b *Booking) setPeriod(period kernel.RentalPeriod) error {
	if err := period.Validate(); err != nil {
		return err
	}
	b.period = period
	return nil
}

// setPickupAddress validates and sets the pickup address.
// This is a private method used only during construction.
func (b *Booking) setPickupAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("pickupAddress")
	}
	b.pickupAddress = address
	return nil
}

// setReturnAddress validates and sets the return address.
// This is a private method used only during construction.
func (b *Booking) setReturnAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("returnAddress")
	}
	b.returnAddress = address
	return nil
}

// setCharges validates and sets the financial snapshot.
// This is a private method used only during construction.
func (b *Booking) setCharges(charges Charges) error {
	if err := charges.Validate(); err != nil {
		return err
	}
	b.charges = charges
	return nil
}

// setStatus validates and sets the lifecycle status.
// This is a private method used only during restoration.
func (b *Booking) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	b.status = status
	return nil
}

// setCreatedAt validates and sets the creation timestamp.
// This is a private method used only during restoration.
func (b *Booking) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	b.createdAt = createdAt.UTC()
	return nil
}
