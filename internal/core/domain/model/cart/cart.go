package cart

import (
	"errors"
	"time"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/booking"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/pkg/errs"
	"github.com/mapsensemedia/betterrental/internal/pkg/guard"
)

// ErrCartIsNotConstructed is returned when a Cart instance was not created
// through the NewCart or RestoreCart factory methods.
var ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart or RestoreCart constructors")

// ErrContactIsRequired indicates a cart with neither an email nor a phone number.
// Without a contact channel the cart cannot be recovered after abandonment.
var ErrContactIsRequired = errors.New("cart requires an email or a phone number")

// ErrCartIsNotEditable indicates an attempt to update a cart that left the Active status.
var ErrCartIsNotEditable = errors.New("only an active cart can be updated")

// Cart is the aggregate root for the pre-booking state a customer builds up
// during the funnel: the chosen vehicle category, rental period, addresses and
// the server-side quote. Checkout turns a cart into a booking.
type Cart struct {
	id kernel.UUID

	// customerID is set when a logged-in customer owns the cart; guest carts
	// carry contact details only
	customerID *kernel.UUID

	email string
	phone string

	categoryID    kernel.UUID
	period        kernel.RentalPeriod
	pickupAddress string
	returnAddress string
	quote         booking.Charges

	status         Status
	lastActivityAt time.Time
	createdAt      time.Time

	guard guard.ConstructorGuard
}

// NewCart creates a new Active Cart with validation.
//
// Parameters:
//   - id: Unique identifier for the cart
//   - customerID: Owning customer account, nil for guest carts
//   - email: Contact email, may be empty when phone is set
//   - phone: Contact phone, may be empty when email is set
//   - categoryID: Identifier of the chosen vehicle category
//   - period: Validated rental period
//   - pickupAddress: Street address for the vehicle handover
//   - returnAddress: Street address for the return pickup
//   - quote: Server-side priced financial snapshot
//
// Returns:
//   - *Cart: The created cart if all validations pass
//   - error: Validation error if any parameter is invalid
func NewCart(
	id kernel.UUID,
	customerID *kernel.UUID,
	email string,
	phone string,
	categoryID kernel.UUID,
	period kernel.RentalPeriod,
	pickupAddress string,
	returnAddress string,
	quote booking.Charges,
) (*Cart, error) {
	now := time.Now().UTC()
	cart := &Cart{
		status:         Active,
		lastActivityAt: now,
		createdAt:      now,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cart.setID(id),
		cart.setCustomerID(customerID),
		cart.setContact(email, phone),
		cart.setCategoryID(categoryID),
		cart.setPeriod(period),
		cart.setAddresses(pickupAddress, returnAddress),
		cart.setQuote(quote),
	); err != nil {
		return nil, err
	}

	return cart, nil
}

// RestoreCart reconstructs a Cart aggregate from persistent storage.
func RestoreCart(
	id kernel.UUID,
	customerID *kernel.UUID,
	email string,
	phone string,
	categoryID kernel.UUID,
	period kernel.RentalPeriod,
	pickupAddress string,
	returnAddress string,
	quote booking.Charges,
	status Status,
	lastActivityAt time.Time,
	createdAt time.Time,
) (*Cart, error) {
	cart := &Cart{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cart.setID(id),
		cart.setCustomerID(customerID),
		cart.setContact(email, phone),
		cart.setCategoryID(categoryID),
		cart.setPeriod(period),
		cart.setAddresses(pickupAddress, returnAddress),
		cart.setQuote(quote),
		cart.setStatus(status),
		cart.setTimestamps(lastActivityAt, createdAt),
	); err != nil {
		return nil, err
	}

	return cart, nil
}

// Validate ensures the Cart instance was properly constructed through a constructor.
func (c *Cart) Validate() error {
	if c == nil {
		return ErrCartIsNotConstructed
	}
	return c.guard.Validate(ErrCartIsNotConstructed)
}

// IsEqual compares two carts by their unique identifiers.
func (c *Cart) IsEqual(other *Cart) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the cart's unique identifier.
func (c *Cart) ID() kernel.UUID {
	return c.id
}

// CustomerID returns the owning customer account's ID, nil for guest carts.
func (c *Cart) CustomerID() *kernel.UUID {
	return c.customerID
}

// Email returns the contact email, possibly empty.
func (c *Cart) Email() string {
	return c.email
}

// Phone returns the contact phone, possibly empty.
func (c *Cart) Phone() string {
	return c.phone
}

// CategoryID returns the identifier of the chosen vehicle category.
func (c *Cart) CategoryID() kernel.UUID {
	return c.categoryID
}

// Period returns the rental period.
func (c *Cart) Period() kernel.RentalPeriod {
	return c.period
}

// PickupAddress returns the handover street address.
func (c *Cart) PickupAddress() string {
	return c.pickupAddress
}

// ReturnAddress returns the return pickup street address.
func (c *Cart) ReturnAddress() string {
	return c.returnAddress
}

// Quote returns the server-side priced financial snapshot.
func (c *Cart) Quote() booking.Charges {
	return c.quote
}

// Status returns the current status of the cart.
func (c *Cart) Status() Status {
	return c.status
}

// LastActivityAt returns when the customer last touched the cart.
func (c *Cart) LastActivityAt() time.Time {
	return c.lastActivityAt
}

// CreatedAt returns the creation timestamp of the cart.
func (c *Cart) CreatedAt() time.Time {
	return c.createdAt
}

// Update replaces the draft rental details and refreshes the activity
// timestamp. Only Active carts are editable; the quote is re-priced
// server-side by the caller before being passed in.
//
// Returns:
//   - nil on success
//   - ErrCartIsNotEditable if the cart left the Active status
//   - Validation error if any parameter is invalid
func (c *Cart) Update(
	period kernel.RentalPeriod,
	pickupAddress string,
	returnAddress string,
	quote booking.Charges,
) error {
	if c.status != Active {
		return ErrCartIsNotEditable
	}

	if err := errors.Join(
		c.setPeriod(period),
		c.setAddresses(pickupAddress, returnAddress),
		c.setQuote(quote),
	); err != nil {
		return err
	}

	c.Touch()
	return nil
}

// Touch refreshes the activity timestamp. Called on every customer interaction
// so the abandonment sweeper measures real inactivity.
func (c *Cart) Touch() {
	c.lastActivityAt = time.Now().UTC()
}

// Convert marks the cart as converted into a booking at checkout.
// Allowed from Active and from Abandoned (a recovered checkout).
func (c *Cart) Convert() error {
	newStatus, err := c.status.Convert()
	if err != nil {
		return err
	}

	c.status = newStatus
	return nil
}

// Abandon marks an idle Active cart as abandoned.
func (c *Cart) Abandon() error {
	newStatus, err := c.status.Abandon()
	if err != nil {
		return err
	}

	c.status = newStatus
	return nil
}

// Expire marks an idle Abandoned cart as expired.
func (c *Cart) Expire() error {
	newStatus, err := c.status.Expire()
	if err != nil {
		return err
	}

	c.status = newStatus
	return nil
}

// IdleSince reports whether the cart saw no activity since the given instant.
func (c *Cart) IdleSince(instant time.Time) bool {
	return c.lastActivityAt.Before(instant)
}

func (c *Cart) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Cart) setCustomerID(customerID *kernel.UUID) error {
	if customerID == nil {
		return nil
	}
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *Cart) setContact(email string, phone string) error {
	if email == "" && phone == "" {
		return ErrContactIsRequired
	}
	c.email = email
	c.phone = phone
	return nil
}

func (c *Cart) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return err
	}
	c.categoryID = categoryID
	return nil
}

func (c *Cart) setPeriod(period kernel.RentalPeriod) error {
	if err := period.Validate(); err != nil {
		return err
	}
	c.period = period
	return nil
}

func (c *Cart) setAddresses(pickupAddress string, returnAddress string) error {
	if pickupAddress == "" {
		return errs.NewValueIsRequiredError("pickupAddress")
	}
	if returnAddress == "" {
		return errs.NewValueIsRequiredError("returnAddress")
	}
	c.pickupAddress = pickupAddress
	c.returnAddress = returnAddress
	return nil
}

func (c *Cart) setQuote(quote booking.Charges) error {
	if err := quote.Validate(); err != nil {
		return err
	}
	c.quote = quote
	return nil
}

func (c *Cart) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *Cart) setTimestamps(lastActivityAt time.Time, createdAt time.Time) error {
	if lastActivityAt.IsZero() {
		return errs.NewValueIsRequiredError("lastActivityAt")
	}
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	c.lastActivityAt = lastActivityAt.UTC()
	c.createdAt = createdAt.UTC()
	return nil
}
