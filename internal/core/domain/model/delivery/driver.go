package delivery

import (
	"errors"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/pkg/errs"
	"github.com/mapsensemedia/betterrental/internal/pkg/guard"
)

// ErrDriverIsNotConstructed is returned when a Driver instance was not created
// through the NewDriver or RestoreDriver factory methods.
var ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver or RestoreDriver constructors")

// Driver is a member of the delivery crew who moves vehicles between the lot
// and customer addresses. Drivers have no system login; the back office
// schedules runs for them and relays updates.
type Driver struct {
	id     kernel.UUID
	name   string
	phone  string
	active bool

	guard guard.ConstructorGuard
}

// NewDriver creates a new active Driver with validation.
//
// Parameters:
//   - id: Unique identifier for the driver
//   - name: Human-readable driver name
//   - phone: Phone number used for dispatch notifications
//
// Returns:
//   - *Driver: The created driver if all validations pass
//   - error: Validation error if any parameter is invalid
func NewDriver(id kernel.UUID, name string, phone string) (*Driver, error) {
	driver := &Driver{
		active: true,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		driver.setID(id),
		driver.setName(name),
		driver.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return driver, nil
}

// RestoreDriver reconstructs a Driver from persistent storage.
func RestoreDriver(id kernel.UUID, name string, phone string, active bool) (*Driver, error) {
	driver := &Driver{
		active: active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		driver.setID(id),
		driver.setName(name),
		driver.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return driver, nil
}

// Validate ensures the Driver was properly constructed through a constructor.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// IsEqual compares two drivers by their unique identifiers.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// Name returns the driver's name.
func (d *Driver) Name() string {
	return d.name
}

// Phone returns the driver's phone number.
func (d *Driver) Phone() string {
	return d.phone
}

// IsActive reports whether the driver currently takes runs.
func (d *Driver) IsActive() bool {
	return d.active
}

// Activate puts the driver back on the dispatch roster.
func (d *Driver) Activate() {
	d.active = true
}

// Deactivate takes the driver off the dispatch roster. Runs already assigned
// to them are unaffected.
func (d *Driver) Deactivate() {
	d.active = false
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	d.name = name
	return nil
}

func (d *Driver) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	d.phone = phone
	return nil
}
