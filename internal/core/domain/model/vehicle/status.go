package vehicle

import (
	"fmt"

	"github.com/mapsensemedia/betterrental/internal/pkg/errs"
)

// UnitStatus represents the operational state of a concrete vehicle unit.
//
// State transitions:
//
//	Available ──> Reserved ──> Rented ──> Available
//	    │             │           │
//	    └──────>──────┴── Maintenance ──> Available
//	    (any non-retired status) ──> Retired
//
// UnitStatus is a value object that validates state transitions and provides
// string representations for persistence and display.
type UnitStatus int

const (
	// UnitStatusUnknown represents an invalid or undefined status.
	UnitStatusUnknown UnitStatus = iota

	// UnitStatusAvailable means the unit is on the lot and can be reserved.
	UnitStatusAvailable

	// UnitStatusReserved means the unit is held for a confirmed booking.
	UnitStatusReserved

	// UnitStatusRented means the unit is with a customer.
	UnitStatusRented

	// UnitStatusMaintenance means the unit is off the fleet for service work.
	UnitStatusMaintenance

	// UnitStatusRetired means the unit left the fleet for good. Final status.
	UnitStatusRetired
)

func getUnitStatusStrings() map[UnitStatus]string {
	return map[UnitStatus]string{
		UnitStatusUnknown:     "Unknown",
		UnitStatusAvailable:   "Available",
		UnitStatusReserved:    "Reserved",
		UnitStatusRented:      "Rented",
		UnitStatusMaintenance: "Maintenance",
		UnitStatusRetired:     "Retired",
	}
}

func getValidUnitStatusStrings() map[UnitStatus]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[UnitStatus]string{
		UnitStatusAvailable:   "Available",
		UnitStatusReserved:    "Reserved",
		UnitStatusRented:      "Rented",
		UnitStatusMaintenance: "Maintenance",
		UnitStatusRetired:     "Retired",
	}
}

// UnitStatusFromString parses a persisted status string back into a UnitStatus value.
func UnitStatusFromString(s string) (UnitStatus, error) {
	for status, str := range getValidUnitStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return UnitStatusUnknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid unit status", s))
}

// Validate checks if the UnitStatus value is valid.
func (s UnitStatus) Validate() error {
	if _, ok := getValidUnitStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid unit status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// This method implements the fmt.Stringer interface.
func (s UnitStatus) String() string {
	if str, ok := getUnitStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Reserve transitions the status to Reserved.
//
// Valid transitions:
//   - Available -> Reserved (unit held for a confirmed booking)
func (s UnitStatus) Reserve() (UnitStatus, error) {
	if s != UnitStatusAvailable {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to reserve", s.String()),
		)
	}
	return UnitStatusReserved, nil
}

// Rent transitions the status to Rented.
//
// Valid transitions:
//   - Reserved -> Rented (vehicle handed over to the customer)
func (s UnitStatus) Rent() (UnitStatus, error) {
	if s != UnitStatusReserved {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to rent", s.String()),
		)
	}
	return UnitStatusRented, nil
}

// Release transitions the status back to Available.
//
// Valid transitions:
//   - Reserved -> Available (booking cancelled, hold removed)
//   - Rented -> Available (vehicle returned and inspected)
func (s UnitStatus) Release() (UnitStatus, error) {
	if s != UnitStatusReserved && s != UnitStatusRented {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to release", s.String()),
		)
	}
	return UnitStatusAvailable, nil
}

// EnterMaintenance transitions the status to Maintenance.
// Any non-retired unit can be pulled into the shop.
func (s UnitStatus) EnterMaintenance() (UnitStatus, error) {
	if s == UnitStatusRetired || s.Validate() != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to enter maintenance", s.String()),
		)
	}
	return UnitStatusMaintenance, nil
}

// FinishMaintenance transitions the status from Maintenance back to Available.
func (s UnitStatus) FinishMaintenance() (UnitStatus, error) {
	if s != UnitStatusMaintenance {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to finish maintenance", s.String()),
		)
	}
	return UnitStatusAvailable, nil
}

// Retire transitions the status to Retired. Final, no way back to the fleet.
func (s UnitStatus) Retire() (UnitStatus, error) {
	if s == UnitStatusRetired || s.Validate() != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to retire", s.String()),
		)
	}
	return UnitStatusRetired, nil
}
