package vehicle

import (
	"errors"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/pkg/errs"
	"github.com/mapsensemedia/betterrental/internal/pkg/guard"
)

// ErrCategoryIsNotConstructed is returned when a Category instance was not
// created through the NewCategory or RestoreCategory factory methods.
var ErrCategoryIsNotConstructed = errors.New("Category must be created via NewCategory or RestoreCategory constructors")

const (
	minSeats = 1
	maxSeats = 12
)

// Transmission identifies the gearbox type of a vehicle category.
type Transmission string

const (
	// TransmissionAutomatic marks categories with automatic gearboxes.
	TransmissionAutomatic Transmission = "automatic"
	// TransmissionManual marks categories with manual gearboxes.
	TransmissionManual Transmission = "manual"
)

// Validate checks that the transmission is one of the known kinds.
func (t Transmission) Validate() error {
	if t != TransmissionAutomatic && t != TransmissionManual {
		return errs.NewValueIsInvalidError("transmission")
	}
	return nil
}

// Category is what customers actually book: a class of interchangeable
// vehicles with shared rates. Concrete units belong to exactly one category.
//
// Category follows these invariants:
//   - Name and class label are required
//   - Seats must be within a sane range
//   - Daily rate, deposit and delivery fee share one currency
//   - Inactive categories are hidden from search but keep their history
type Category struct {
	id           kernel.UUID
	name         string
	class        string
	seats        int
	transmission Transmission
	dailyRate    kernel.Money
	deposit      kernel.Money
	deliveryFee  kernel.Money
	active       bool

	guard guard.ConstructorGuard
}

// NewCategory creates a new active Category with validation.
//
// Parameters:
//   - id: Unique identifier for the category
//   - name: Display name, e.g. "Toyota Corolla or similar"
//   - class: Class label, e.g. "Compact", "SUV"
//   - seats: Number of seats
//   - transmission: Gearbox kind
//   - dailyRate: Price per billed rental day
//   - deposit: Security deposit held during the rental
//   - deliveryFee: Flat fee for delivering the vehicle
//
// Returns:
//   - *Category: The created category if all validations pass
//   - error: Validation error if any parameter is invalid
func NewCategory(
	id kernel.UUID,
	name string,
	class string,
	seats int,
	transmission Transmission,
	dailyRate kernel.Money,
	deposit kernel.Money,
	deliveryFee kernel.Money,
) (*Category, error) {
	category := &Category{
		active: true,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		category.setID(id),
		category.setName(name),
		category.setClass(class),
		category.setSeats(seats),
		category.setTransmission(transmission),
		category.setRates(dailyRate, deposit, deliveryFee),
	); err != nil {
		return nil, err
	}

	return category, nil
}

// RestoreCategory reconstructs a Category aggregate from persistent storage.
func RestoreCategory(
	id kernel.UUID,
	name string,
	class string,
	seats int,
	transmission Transmission,
	dailyRate kernel.Money,
	deposit kernel.Money,
	deliveryFee kernel.Money,
	active bool,
) (*Category, error) {
	category := &Category{
		active: active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		category.setID(id),
		category.setName(name),
		category.setClass(class),
		category.setSeats(seats),
		category.setTransmission(transmission),
		category.setRates(dailyRate, deposit, deliveryFee),
	); err != nil {
		return nil, err
	}

	return category, nil
}

// Validate ensures the Category was properly constructed through a constructor.
func (c *Category) Validate() error {
	if c == nil {
		return ErrCategoryIsNotConstructed
	}
	return c.guard.Validate(ErrCategoryIsNotConstructed)
}

// IsEqual compares two categories by their unique identifiers.
func (c *Category) IsEqual(other *Category) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the category's unique identifier.
func (c *Category) ID() kernel.UUID {
	return c.id
}

// Name returns the display name of the category.
func (c *Category) Name() string {
	return c.name
}

// Class returns the class label of the category.
func (c *Category) Class() string {
	return c.class
}

// Seats returns the number of seats.
func (c *Category) Seats() int {
	return c.seats
}

// Transmission returns the gearbox kind.
func (c *Category) Transmission() Transmission {
	return c.transmission
}

// DailyRate returns the price per billed rental day.
func (c *Category) DailyRate() kernel.Money {
	return c.dailyRate
}

// Deposit returns the security deposit held during a rental.
func (c *Category) Deposit() kernel.Money {
	return c.deposit
}

// DeliveryFee returns the flat delivery fee.
func (c *Category) DeliveryFee() kernel.Money {
	return c.deliveryFee
}

// IsActive reports whether the category is bookable.
func (c *Category) IsActive() bool {
	return c.active
}

// Rename changes the display name and class label.
func (c *Category) Rename(name string, class string) error {
	return errors.Join(c.setName(name), c.setClass(class))
}

// ChangeRates updates the pricing of the category. Existing bookings keep
// their checkout-time snapshot; only future quotes see the new rates.
func (c *Category) ChangeRates(dailyRate kernel.Money, deposit kernel.Money, deliveryFee kernel.Money) error {
	return c.setRates(dailyRate, deposit, deliveryFee)
}

// Activate makes the category bookable again.
func (c *Category) Activate() {
	c.active = true
}

// Deactivate hides the category from search without touching its history.
func (c *Category) Deactivate() {
	c.active = false
}

func (c *Category) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Category) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Category) setClass(class string) error {
	if class == "" {
		return errs.NewValueIsRequiredError("class")
	}
	c.class = class
	return nil
}

func (c *Category) setSeats(seats int) error {
	if seats < minSeats || seats > maxSeats {
		return errs.NewValueIsOutOfRangeError("seats", seats, minSeats, maxSeats)
	}
	c.seats = seats
	return nil
}

func (c *Category) setTransmission(transmission Transmission) error {
	if err := transmission.Validate(); err != nil {
		return err
	}
	c.transmission = transmission
	return nil
}

func (c *Category) setRates(dailyRate kernel.Money, deposit kernel.Money, deliveryFee kernel.Money) error {
	if err := errors.Join(dailyRate.Validate(), deposit.Validate(), deliveryFee.Validate()); err != nil {
		return err
	}
	if deposit.Currency() != dailyRate.Currency() || deliveryFee.Currency() != dailyRate.Currency() {
		return kernel.ErrCurrencyMismatch
	}

	c.dailyRate = dailyRate
	c.deposit = deposit
	c.deliveryFee = deliveryFee
	return nil
}
