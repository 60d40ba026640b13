package booking

import (
	"fmt"

	"github.com/mapsensemedia/betterrental/internal/pkg/errs"
)

// Status represents the lifecycle state of a booking.
// It implements a state machine with defined transitions to ensure
// bookings follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Active ──> Completed
//	   │            │
//	   └────────────┴──> Cancelled
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status right after checkout.
	// Bookings in this status are waiting for back-office confirmation
	// and have no vehicle unit assigned yet.
	Pending

	// Confirmed indicates the back office accepted the booking and
	// assigned a concrete vehicle unit to it.
	Confirmed

	// Active indicates the vehicle has been handed over to the customer.
	// A booking becomes Active only through the delivered handover transition.
	Active

	// Completed indicates the vehicle came back and the return was settled.
	// This is a final state with no further transitions allowed.
	Completed

	// Cancelled indicates the booking was cancelled before the rental started.
	// This is a final state with no further transitions allowed.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Confirmed: "Confirmed",
		Active:    "Active",
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Confirmed: "Confirmed",
		Active:    "Active",
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

// StatusFromString parses a persisted status string back into a Status value.
// Returns an error for unrecognized strings so that corrupt rows are detected
// during rehydration instead of silently becoming Unknown.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Confirmed, Active, Completed, Cancelled.
// Unknown (0) and any other values are invalid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// Returns:
//   - "Pending", "Confirmed", "Active", "Completed" or "Cancelled" for valid statuses
//   - "Unknown" for invalid status values
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsFinal reports whether the status is terminal.
// Completed and Cancelled bookings accept no further transitions.
func (s Status) IsFinal() bool {
	return s == Completed || s == Cancelled
}

// ValidateCanHaveUnit validates the consistency between booking status and
// vehicle unit assignment. Enforces business rules about which statuses
// require a unit.
//
// Business Rules:
//   - Pending bookings must not have a unit assigned yet
//   - Confirmed, Active and Completed bookings must have a unit assigned
//   - Cancelled bookings may keep or lack a unit reference
//
// Parameters:
//   - hasUnit: whether the booking has a vehicle unit assigned
//
// Returns:
//   - error: validation error if status and unit assignment are inconsistent
func (s Status) ValidateCanHaveUnit(hasUnit bool) error {
	if s == Cancelled {
		return nil
	}

	if hasUnit && s == Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a unit", s.String()),
		)
	}

	if !hasUnit && (s == Confirmed || s == Active || s == Completed) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no unit", s.String()),
		)
	}

	return nil
}

// Confirm transitions the status to Confirmed.
//
// Valid transitions:
//   - Pending -> Confirmed (back office accepted the booking)
//
// Returns:
//   - (Confirmed, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) Confirm() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to confirm", s.String()),
		)
	}

	return Confirmed, nil
}

// Activate transitions the status to Active.
//
// Valid transitions:
//   - Confirmed -> Active (vehicle delivered to the customer)
//
// Returns:
//   - (Active, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) Activate() (Status, error) {
	if s != Confirmed {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to activate", s.String()),
		)
	}

	return Active, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Active -> Completed (vehicle returned and settled)
//
// Returns:
//   - (Completed, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) Complete() (Status, error) {
	if s != Active {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Completed, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//   - Confirmed -> Cancelled
//
// Active rentals cannot be cancelled: once the vehicle is with the customer
// the booking runs to completion through the return workflow.
//
// Returns:
//   - (Cancelled, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) Cancel() (Status, error) {
	if s != Pending && s != Confirmed {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}

	return Cancelled, nil
}
