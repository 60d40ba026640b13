package kernel

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/mapsensemedia/betterrental/internal/pkg/errs"
	"github.com/mapsensemedia/betterrental/internal/pkg/guard"
)

// hoursPerDay is the number of hours in one billed rental day.
const hoursPerDay = 24

// ErrRentalPeriodIsNotConstructed is returned when attempting to use an improperly
// initialized RentalPeriod. Periods must be created using the NewRentalPeriod constructor.
var ErrRentalPeriodIsNotConstructed = errs.NewValueIsRequiredError(
	"rental period must be created via NewRentalPeriod constructor")

// ErrRentalPeriodEndNotAfterStart indicates a period whose end does not come
// strictly after its start.
var ErrRentalPeriodEndNotAfterStart = errors.New("end must be after start")

// RentalPeriod represents the time span of a rental with a validated start and end.
// RentalPeriod is an immutable value object; timestamps are normalized to UTC on
// construction and the end is guaranteed to come strictly after the start.
// The zero value of RentalPeriod is invalid and will fail validation - use the
// constructor to create instances.
//
// Billing works in whole days: any started day counts as a full day (see Days).
//
// Example:
//
//	period, err := kernel.NewRentalPeriod(pickupAt, returnAt)
//	if err != nil {
//	    // Handle validation error
//	}
//	days := period.Days()
type RentalPeriod struct { //nolint:recvcheck //using for validation
	start time.Time
	end   time.Time
	guard guard.ConstructorGuard
}

// NewRentalPeriod creates a new RentalPeriod from the given start and end timestamps.
// Both timestamps are required and the end must come strictly after the start.
// Timestamps are stored in UTC regardless of the input location.
//
// Parameters:
//   - start: When the rental begins (vehicle handover)
//   - end: When the rental ends (vehicle return); must be after start
//
// Returns:
//   - RentalPeriod: A valid period instance
//   - error: Validation error if a timestamp is missing or the order is wrong
//
// Example:
//
//	period, err := NewRentalPeriod(
//	    time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
//	    time.Date(2025, 6, 4, 10, 0, 0, 0, time.UTC),
//	)
//	if err != nil {
//	    log.Fatal("Invalid period:", err)
//	}
func NewRentalPeriod(start time.Time, end time.Time) (RentalPeriod, error) {
	p := RentalPeriod{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(p.setStart(start), p.setEnd(end)); err != nil {
		return RentalPeriod{}, err
	}

	if !p.end.After(p.start) {
		return RentalPeriod{}, errs.NewValueIsInvalidErrorWithCause("rentalPeriod", ErrRentalPeriodEndNotAfterStart)
	}

	return p, nil
}

// Validate checks if the RentalPeriod was properly constructed using the constructor.
// The zero value of RentalPeriod is invalid and will fail this validation.
//
// Returns:
//   - error: ErrRentalPeriodIsNotConstructed if the period was not properly initialized, nil otherwise
func (p RentalPeriod) Validate() error {
	return p.guard.Validate(ErrRentalPeriodIsNotConstructed)
}

// Start returns the UTC timestamp at which the rental begins.
func (p RentalPeriod) Start() time.Time {
	return p.start
}

// End returns the UTC timestamp at which the rental ends.
func (p RentalPeriod) End() time.Time {
	return p.end
}

// Days returns the number of billed rental days.
// Any started day counts as a full day: a 25 hour rental bills 2 days.
// A properly constructed period always bills at least 1 day.
//
// Example:
//
//	period, _ := NewRentalPeriod(start, start.Add(25*time.Hour))
//	days := period.Days() // 2
func (p RentalPeriod) Days() int {
	return int(math.Ceil(p.end.Sub(p.start).Hours() / hoursPerDay))
}

// Overlaps reports whether two periods share at least one instant.
// Periods are treated as half-open intervals [start, end): a rental that ends
// exactly when another starts does not overlap it. Both periods must be
// properly constructed for the comparison to succeed.
//
// Parameters:
//   - other: The RentalPeriod to compare with
//
// Returns:
//   - bool: true if the periods overlap, false otherwise
//   - error: Validation error if either period is improperly constructed
//
// Example:
//
//	p1, _ := NewRentalPeriod(day1, day3)
//	p2, _ := NewRentalPeriod(day3, day5)
//	overlaps, _ := p1.Overlaps(p2) // false: p1 ends as p2 starts
func (p RentalPeriod) Overlaps(other RentalPeriod) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.start.Before(other.end) && other.start.Before(p.end), nil
}

// IsEqual compares two periods for equality.
// Two periods are equal if their start and end timestamps represent the same instants.
// Both periods must be properly constructed for the comparison to succeed.
//
// Parameters:
//   - other: The RentalPeriod to compare with
//
// Returns:
//   - bool: true if the periods are equal, false otherwise
//   - error: Validation error if either period is improperly constructed
func (p RentalPeriod) IsEqual(other RentalPeriod) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.start.Equal(other.start) && p.end.Equal(other.end), nil
}

// String returns a human-readable string representation of the RentalPeriod.
// The format is "RentalPeriod(start..end)" with RFC 3339 timestamps.
// This method implements the fmt.Stringer interface.
func (p RentalPeriod) String() string {
	return fmt.Sprintf("RentalPeriod(%s..%s)", p.start.Format(time.RFC3339), p.end.Format(time.RFC3339))
}

// setStart sets the start timestamp with validation.
// Note: We intentionally use a pointer receiver here while other methods use value receivers.
// Although mixing receiver types is generally not recommended, in this case we use pointer
// receivers for these private setters to enable self-encapsulated validation of business
// requirements during object construction.
func (p *RentalPeriod) setStart(start time.Time) error {
	if start.IsZero() {
		return errs.NewValueIsRequiredError("start")
	}

	p.start = start.UTC()
	return nil
}

// setEnd sets the end timestamp with validation.
// Note: We intentionally use a pointer receiver here while other methods use value receivers.
// Although mixing receiver types is generally not recommended, in this case we use pointer
// receivers for these private setters to enable self-encapsulated validation of business
// requirements during object construction.
func (p *RentalPeriod) setEnd(end time.Time) error {
	if end.IsZero() {
		return errs.NewValueIsRequiredError("end")
	}

	p.end = end.UTC()
	return nil
}
