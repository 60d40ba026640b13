package vehicle

import (
	"errors"
	"fmt"
	"time"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/pkg/errs"
	"github.com/mapsensemedia/betterrental/internal/pkg/guard"
)

// ErrUnitIsNotConstructed is returned when a Unit instance was not created
// through the NewUnit or RestoreUnit factory methods.
var ErrUnitIsNotConstructed = errors.New("Unit must be created via NewUnit or RestoreUnit constructors")

// ErrOdometerWentBackwards indicates an odometer reading lower than the
// recorded one. Odometers only count up.
var ErrOdometerWentBackwards = errors.New("odometer reading is lower than the recorded value")

const (
	minModelYear = 1990
	vinLength    = 17
)

// Unit is a concrete physical vehicle on the fleet, identified by its plate.
// Units carry the operational status machine; customers never book a unit
// directly, they book the category it belongs to.
type Unit struct {
	id         kernel.UUID
	categoryID kernel.UUID
	plate      string
	vin        string
	year       int
	odometerKm int
	status     UnitStatus

	guard guard.ConstructorGuard
}

// NewUnit creates a new Unit in Available status with validation.
//
// Parameters:
//   - id: Unique identifier for the unit
//   - categoryID: Category the unit belongs to
//   - plate: License plate, unique across the fleet
//   - vin: 17-character vehicle identification number
//   - year: Model year
//   - odometerKm: Current odometer reading in kilometers
//
// Returns:
//   - *Unit: The created unit if all validations pass
//   - error: Validation error if any parameter is invalid
func NewUnit(
	id kernel.UUID,
	categoryID kernel.UUID,
	plate string,
	vin string,
	year int,
	odometerKm int,
) (*Unit, error) {
	unit := &Unit{
		status: UnitStatusAvailable,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		unit.setID(id),
		unit.setCategoryID(categoryID),
		unit.setPlate(plate),
		unit.setVIN(vin),
		unit.setYear(year),
		unit.setOdometer(odometerKm),
	); err != nil {
		return nil, err
	}

	return unit, nil
}

// RestoreUnit reconstructs a Unit aggregate from persistent storage.
func RestoreUnit(
	id kernel.UUID,
	categoryID kernel.UUID,
	plate string,
	vin string,
	year int,
	odometerKm int,
	status UnitStatus,
) (*Unit, error) {
	unit := &Unit{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		unit.setID(id),
		unit.setCategoryID(categoryID),
		unit.setPlate(plate),
		unit.setVIN(vin),
		unit.setYear(year),
		unit.setOdometer(odometerKm),
		unit.setStatus(status),
	); err != nil {
		return nil, err
	}

	return unit, nil
}

// Validate ensures the Unit was properly constructed through a constructor.
func (u *Unit) Validate() error {
	if u == nil {
		return ErrUnitIsNotConstructed
	}
	return u.guard.Validate(ErrUnitIsNotConstructed)
}

// IsEqual compares two units by their unique identifiers.
func (u *Unit) IsEqual(other *Unit) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the unit's unique identifier.
func (u *Unit) ID() kernel.UUID {
	return u.id
}

// CategoryID returns the identifier of the category the unit belongs to.
func (u *Unit) CategoryID() kernel.UUID {
	return u.categoryID
}

// Plate returns the license plate.
func (u *Unit) Plate() string {
	return u.plate
}

// VIN returns the vehicle identification number.
func (u *Unit) VIN() string {
	return u.vin
}

// Year returns the model year.
func (u *Unit) Year() int {
	return u.year
}

// OdometerKm returns the last recorded odometer reading in kilometers.
func (u *Unit) OdometerKm() int {
	return u.odometerKm
}

// Status returns the operational status of the unit.
func (u *Unit) Status() UnitStatus {
	return u.status
}

// Reserve holds the unit for a confirmed booking.
func (u *Unit) Reserve() error {
	newStatus, err := u.status.Reserve()
	if err != nil {
		return err
	}
	u.status = newStatus
	return nil
}

// Rent marks the unit as handed over to the customer.
func (u *Unit) Rent() error {
	newStatus, err := u.status.Rent()
	if err != nil {
		return err
	}
	u.status = newStatus
	return nil
}

// Release puts the unit back on the lot after a cancellation or a settled return.
func (u *Unit) Release() error {
	newStatus, err := u.status.Release()
	if err != nil {
		return err
	}
	u.status = newStatus
	return nil
}

// EnterMaintenance pulls the unit into the shop.
func (u *Unit) EnterMaintenance() error {
	newStatus, err := u.status.EnterMaintenance()
	if err != nil {
		return err
	}
	u.status = newStatus
	return nil
}

// FinishMaintenance returns the unit from the shop to the lot.
func (u *Unit) FinishMaintenance() error {
	newStatus, err := u.status.FinishMaintenance()
	if err != nil {
		return err
	}
	u.status = newStatus
	return nil
}

// Retire removes the unit from the fleet for good.
func (u *Unit) Retire() error {
	newStatus, err := u.status.Retire()
	if err != nil {
		return err
	}
	u.status = newStatus
	return nil
}

// RecordOdometer stores a new odometer reading taken during handover or return.
// Readings must be monotonically non-decreasing.
func (u *Unit) RecordOdometer(km int) error {
	if km < u.odometerKm {
		return errs.NewValueIsInvalidErrorWithCause("odometerKm", ErrOdometerWentBackwards)
	}
	u.odometerKm = km
	return nil
}

func (u *Unit) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *Unit) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return err
	}
	u.categoryID = categoryID
	return nil
}

func (u *Unit) setPlate(plate string) error {
	if plate == "" {
		return errs.NewValueIsRequiredError("plate")
	}
	u.plate = plate
	return nil
}

func (u *Unit) setVIN(vin string) error {
	if vin == "" {
		return errs.NewValueIsRequiredError("vin")
	}
	if len(vin) != vinLength {
		return errs.NewValueIsInvalidErrorWithCause("vin",
			fmt.Errorf("VIN must be %d characters, got %d", vinLength, len(vin)))
	}
	u.vin = vin
	return nil
}

func (u *Unit) setYear(year int) error {
	maxYear := time.Now().Year() + 1
	if year < minModelYear || year > maxYear {
		return errs.NewValueIsOutOfRangeError("year", year, minModelYear, maxYear)
	}
	u.year = year
	return nil
}

func (u *Unit) setOdometer(km int) error {
	if km < 0 {
		return errs.NewValueIsInvalidErrorWithCause("odometerKm", fmt.Errorf("%d is negative", km))
	}
	u.odometerKm = km
	return nil
}

func (u *Unit) setStatus(status UnitStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	u.status = status
	return nil
}
