package booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/pkg/errs"
	"github.com/mapsensemedia/betterrental/internal/pkg/guard"
)

// ErrDamageReportIsNotConstructed is returned when a DamageReport instance was
// not created through the NewDamageReport or RestoreDamageReport factory methods.
var ErrDamageReportIsNotConstructed = errors.New(
	"DamageReport must be created via NewDamageReport or RestoreDamageReport constructors")

// Severity grades how bad a recorded damage is.
type Severity int

const (
	// SeverityUnknown represents an invalid or undefined severity.
	SeverityUnknown Severity = iota

	// SeverityMinor covers cosmetic scuffs not affecting the vehicle's use.
	SeverityMinor

	// SeverityModerate covers damage needing repair before the next rental.
	SeverityModerate

	// SeveritySevere covers damage taking the vehicle off the road.
	SeveritySevere
)

func getSeverityStrings() map[Severity]string {
	return map[Severity]string{
		SeverityUnknown:  "Unknown",
		SeverityMinor:    "Minor",
		SeverityModerate: "Moderate",
		SeveritySevere:   "Severe",
	}
}

// SeverityFromString parses a persisted severity string back into a Severity value.
func SeverityFromString(s string) (Severity, error) {
	for severity, str := range getSeverityStrings() {
		if severity != SeverityUnknown && str == s {
			return severity, nil
		}
	}
	return SeverityUnknown, errs.NewValueIsInvalidErrorWithCause("severity is invalid",
		fmt.Errorf("%q is not a valid severity", s))
}

// Validate checks if the Severity value is valid.
func (s Severity) Validate() error {
	if s < SeverityMinor || s > SeveritySevere {
		return errs.NewValueIsInvalidErrorWithCause("severity is invalid",
			fmt.Errorf("%d is not a valid severity", s))
	}
	return nil
}

// String returns the human-readable name of the severity.
// This method implements the fmt.Stringer interface.
func (s Severity) String() string {
	if str, ok := getSeverityStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// DamageReport records damage found during the return inspection. The charge
// feeds the deposit withholding; photo keys point into the document store.
// Reports are written once at settlement and never modified.
type DamageReport struct {
	id          kernel.UUID
	bookingID   kernel.UUID
	description string
	severity    Severity
	charge      kernel.Money
	photoKeys   []string
	recordedAt  time.Time

	guard guard.ConstructorGuard
}

// NewDamageReport creates a new DamageReport with validation.
//
// Parameters:
//   - id: Unique identifier for the report
//   - bookingID: The booking whose return inspection found the damage
//   - description: What was found
//   - severity: How bad it is
//   - charge: The amount withheld from the deposit for this damage
//   - photoKeys: Document store keys of the inspection photos
//
// Returns:
//   - *DamageReport: The created report if all validations pass
//   - error: Validation error if any parameter is invalid
func NewDamageReport(
	id kernel.UUID,
	bookingID kernel.UUID,
	description string,
	severity Severity,
	charge kernel.Money,
	photoKeys []string,
) (*DamageReport, error) {
	return RestoreDamageReport(id, bookingID, description, severity, charge, photoKeys, time.Now().UTC())
}

// RestoreDamageReport reconstructs a DamageReport from persistent storage.
func RestoreDamageReport(
	id kernel.UUID,
	bookingID kernel.UUID,
	description string,
	severity Severity,
	charge kernel.Money,
	photoKeys []string,
	recordedAt time.Time,
) (*DamageReport, error) {
	report := &DamageReport{
		photoKeys: photoKeys,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		report.setID(id),
		report.setBookingID(bookingID),
		report.setDescription(description),
		report.setSeverity(severity),
		report.setCharge(charge),
		report.setRecordedAt(recordedAt),
	); err != nil {
		return nil, err
	}

	return report, nil
}

// Validate ensures the DamageReport was properly constructed through a constructor.
func (r *DamageReport) Validate() error {
	if r == nil {
		return ErrDamageReportIsNotConstructed
	}
	return r.guard.Validate(ErrDamageReportIsNotConstructed)
}

// ID returns the report's unique identifier.
func (r *DamageReport) ID() kernel.UUID {
	return r.id
}

// BookingID returns the booking whose return inspection found the damage.
func (r *DamageReport) BookingID() kernel.UUID {
	return r.bookingID
}

// Description returns what was found.
func (r *DamageReport) Description() string {
	return r.description
}

// Severity returns how bad the damage is.
func (r *DamageReport) Severity() Severity {
	return r.severity
}

// Charge returns the amount withheld from the deposit for this damage.
func (r *DamageReport) Charge() kernel.Money {
	return r.charge
}

// PhotoKeys returns the document store keys of the inspection photos.
func (r *DamageReport) PhotoKeys() []string {
	return r.photoKeys
}

// RecordedAt returns when the damage was recorded.
func (r *DamageReport) RecordedAt() time.Time {
	return r.recordedAt
}

func (r *DamageReport) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *DamageReport) setBookingID(bookingID kernel.UUID) error {
	if err := bookingID.Validate(); err != nil {
		return err
	}
	r.bookingID = bookingID
	return nil
}

func (r *DamageReport) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	r.description = description
	return nil
}

func (r *DamageReport) setSeverity(severity Severity) error {
	if err := severity.Validate(); err != nil {
		return err
	}
	r.severity = severity
	return nil
}

func (r *DamageReport) setCharge(charge kernel.Money) error {
	if err := charge.Validate(); err != nil {
		return err
	}
	if charge.IsZero() {
		return errs.NewValueIsInvalidError("charge must be positive")
	}
	r.charge = charge
	return nil
}

func (r *DamageReport) setRecordedAt(recordedAt time.Time) error {
	if recordedAt.IsZero() {
		return errs.NewValueIsRequiredError("recordedAt")
	}
	r.recordedAt = recordedAt.UTC()
	return nil
}
