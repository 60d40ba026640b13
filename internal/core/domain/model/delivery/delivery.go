package delivery

import (
	"errors"
	"fmt"
	"time"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/pkg/errs"
	"github.com/mapsensemedia/betterrental/internal/pkg/guard"
)

// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
// created through the NewDelivery or RestoreDelivery factory methods.
var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery constructors")

// ErrDriverNotAssigned indicates an attempt to advance a run that has no driver yet.
var ErrDriverNotAssigned = errors.New("a driver must be assigned before the run can advance")

// ErrDriverAlreadyOnRoad indicates an attempt to reassign a run that already started.
var ErrDriverAlreadyOnRoad = errors.New("driver can only be changed while the run is unassigned")

// Direction tells which way the vehicle travels on a run.
type Direction int

const (
	// DirectionUnknown represents an invalid or undefined direction.
	DirectionUnknown Direction = iota

	// DirectionHandover is a run that brings the vehicle to the customer at
	// the start of the rental.
	DirectionHandover

	// DirectionReturn is a run that collects the vehicle from the customer at
	// the end of the rental.
	DirectionReturn
)

func getDirectionStrings() map[Direction]string {
	return map[Direction]string{
		DirectionUnknown:  "Unknown",
		DirectionHandover: "Handover",
		DirectionReturn:   "Return",
	}
}

// DirectionFromString parses a persisted direction string back into a Direction value.
func DirectionFromString(s string) (Direction, error) {
	for direction, str := range getDirectionStrings() {
		if direction != DirectionUnknown && str == s {
			return direction, nil
		}
	}
	return DirectionUnknown, errs.NewValueIsInvalidErrorWithCause("direction is invalid",
		fmt.Errorf("%q is not a valid direction", s))
}

// Validate checks if the Direction value is valid.
func (d Direction) Validate() error {
	if d != DirectionHandover && d != DirectionReturn {
		return errs.NewValueIsInvalidErrorWithCause("direction is invalid",
			fmt.Errorf("%d is not a valid direction", d))
	}
	return nil
}

// String returns the human-readable name of the direction.
func (d Direction) String() string {
	if str, ok := getDirectionStrings()[d]; ok {
		return str
	}
	return "Unknown"
}

// StatusChange is one append-only row of a run's status log. It records who
// moved the run between which stages, when, and an optional free-form note.
type StatusChange struct {
	from  Status
	to    Status
	actor string
	note  string
	at    time.Time
}

// RestoreStatusChange reconstructs a status log row from persistent storage.
func RestoreStatusChange(from Status, to Status, actor string, note string, at time.Time) (StatusChange, error) {
	if err := to.Validate(); err != nil {
		return StatusChange{}, err
	}
	if actor == "" {
		return StatusChange{}, errs.NewValueIsRequiredError("actor")
	}
	if at.IsZero() {
		return StatusChange{}, errs.NewValueIsRequiredError("at")
	}

	return StatusChange{from: from, to: to, actor: actor, note: note, at: at.UTC()}, nil
}

// From returns the stage the run left. Zero for the initial log row.
func (c StatusChange) From() Status { return c.from }

// To returns the stage the run entered.
func (c StatusChange) To() Status { return c.to }

// Actor returns who triggered the change.
func (c StatusChange) Actor() string { return c.actor }

// Note returns the optional free-form note attached to the change.
func (c StatusChange) Note() string { return c.note }

// At returns when the change happened.
func (c StatusChange) At() time.Time { return c.at }

// Delivery represents one vehicle movement between the lot and a customer
// address. It is the aggregate root of the dispatch workflow: it owns the
// status state machine, the driver assignment and the append-only status log.
//
// Delivery follows these invariants:
//   - Must reference a valid booking
//   - Must have a valid direction, a scheduled time and a non-empty address
//   - A driver must be assigned before the run can advance past Unassigned
//   - The driver can only be changed while the run is still Unassigned
//   - Every status change appends an immutable log row
type Delivery struct {
	id        kernel.UUID
	bookingID kernel.UUID

	// driverID is the assigned driver (nil while unassigned)
	driverID *kernel.UUID

	direction   Direction
	scheduledAt time.Time
	address     string
	status      Status
	statusLog   []StatusChange

	// remindedAt marks when the pickup reminder went out (nil until then),
	// so the hourly reminder pass sends at most one SMS per run.
	remindedAt *time.Time

	guard guard.ConstructorGuard
}

// NewDelivery creates a new Delivery in Unassigned status with validation.
//
// Parameters:
//   - id: Unique identifier for the run
//   - bookingID: Booking the run belongs to
//   - direction: Handover or Return
//   - scheduledAt: When the run is supposed to happen
//   - address: Customer street address for the run
//
// Returns:
//   - *Delivery: The created run if all validations pass
//   - error: Validation error if any parameter is invalid
func NewDelivery(
	id kernel.UUID,
	bookingID kernel.UUID,
	direction Direction,
	scheduledAt time.Time,
	address string,
) (*Delivery, error) {
	delivery := &Delivery{
		status: Unassigned,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		delivery.setID(id),
		delivery.setBookingID(bookingID),
		delivery.setDirection(direction),
		delivery.setScheduledAt(scheduledAt),
		delivery.setAddress(address),
	); err != nil {
		return nil, err
	}

	return delivery, nil
}

// RestoreDelivery reconstructs a Delivery aggregate from persistent storage,
// including its status log.
//
// Parameters:
//   - id: Unique identifier for the run
//   - bookingID: Booking the run belongs to
//   - driverID: Assigned driver, nil while unassigned
//   - direction: Handover or Return
//   - scheduledAt: When the run is supposed to happen
//   - address: Customer street address for the run
//   - status: Persisted stage of the run
//   - statusLog: Persisted status log rows, in order
//   - remindedAt: When the pickup reminder went out, nil if it never did
//
// Returns:
//   - *Delivery: Restored run aggregate
//   - error: Validation error if any parameter is invalid
func RestoreDelivery(
	id kernel.UUID,
	bookingID kernel.UUID,
	driverID *kernel.UUID,
	direction Direction,
	scheduledAt time.Time,
	address string,
	status Status,
	statusLog []StatusChange,
	remindedAt *time.Time,
) (*Delivery, error) {
	delivery := &Delivery{
		statusLog: statusLog,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		delivery.setID(id),
		delivery.setBookingID(bookingID),
		delivery.setDirection(direction),
		delivery.setScheduledAt(scheduledAt),
		delivery.setAddress(address),
		delivery.setStatus(status),
	); err != nil {
		return nil, err
	}

	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return nil, err
		}
		delivery.driverID = driverID
	}

	if remindedAt != nil {
		at := remindedAt.UTC()
		delivery.remindedAt = &at
	}

	return delivery, nil
}

// Validate ensures the Delivery was properly constructed through a constructor.
func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// IsEqual compares two runs by their unique identifiers.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the run's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// BookingID returns the identifier of the booking the run belongs to.
func (d *Delivery) BookingID() kernel.UUID {
	return d.bookingID
}

// DriverID returns the assigned driver's ID.
// Returns nil while the run is unassigned.
func (d *Delivery) DriverID() *kernel.UUID {
	return d.driverID
}

// Direction returns whether the run hands the vehicle over or collects it.
func (d *Delivery) Direction() Direction {
	return d.direction
}

// ScheduledAt returns when the run is supposed to happen.
func (d *Delivery) ScheduledAt() time.Time {
	return d.scheduledAt
}

// Address returns the customer street address for the run.
func (d *Delivery) Address() string {
	return d.address
}

// Status returns the current stage of the run.
func (d *Delivery) Status() Status {
	return d.status
}

// RemindedAt returns when the pickup reminder went out.
// Returns nil while no reminder was sent.
func (d *Delivery) RemindedAt() *time.Time {
	return d.remindedAt
}

// MarkReminded records that the pickup reminder went out, so subsequent
// reminder passes skip the run.
func (d *Delivery) MarkReminded() {
	now := time.Now().UTC()
	d.remindedAt = &now
}

// StatusLog returns the append-only status log rows, oldest first.
// The returned slice is a copy; mutating it does not affect the aggregate.
func (d *Delivery) StatusLog() []StatusChange {
	log := make([]StatusChange, len(d.statusLog))
	copy(log, d.statusLog)
	return log
}

// AssignDriver assigns a driver to the run.
//
// Business rules:
//   - The driver ID must be valid
//   - Assignment and reassignment are only allowed while the run is Unassigned;
//     once the driver collected the vehicle the run sticks with them
//
// The stage stays Unassigned: it moves to PickedUp only when the driver
// confirms they collected the vehicle.
func (d *Delivery) AssignDriver(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if d.status != Unassigned {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", ErrDriverAlreadyOnRoad)
	}

	d.driverID = &driverID
	return nil
}

// Advance moves the run to its next linear stage and appends a log row.
//
// Business rules:
//   - A driver must be assigned before any advance
//   - Terminal statuses and side states have no next stage
//
// Parameters:
//   - actor: Who triggered the advance (shown in the status log)
//   - note: Optional free-form note for the log row
func (d *Delivery) Advance(actor string, note string) error {
	next, ok := d.status.Next()
	if !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s has no next stage", d.status))
	}

	return d.TransitionTo(next, actor, note)
}

// TransitionTo moves the run to an explicit target status and appends a log row.
//
// Business rules:
//   - The transition must be allowed by the state machine table
//   - Advancing along the linear stages requires an assigned driver;
//     cancelling or flagging an issue does not
//
// Parameters:
//   - to: The target status
//   - actor: Who triggered the change (shown in the status log)
//   - note: Optional free-form note for the log row
func (d *Delivery) TransitionTo(to Status, actor string, note string) error {
	if err := to.Validate(); err != nil {
		return err
	}
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	if !d.status.CanTransitionTo(to) {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("transition from %s to %s is not allowed", d.status, to))
	}
	if to.StepIndex() > 0 && d.driverID == nil {
		return errs.NewValueIsInvalidErrorWithCause("driverId", ErrDriverNotAssigned)
	}

	change := StatusChange{
		from:  d.status,
		to:    to,
		actor: actor,
		note:  note,
		at:    time.Now().UTC(),
	}

	d.status = to
	d.statusLog = append(d.statusLog, change)
	return nil
}

// Cancel calls the run off and appends a log row.
func (d *Delivery) Cancel(actor string, note string) error {
	return d.TransitionTo(Cancelled, actor, note)
}

// ReportIssue flags the run for back-office attention and appends a log row.
func (d *Delivery) ReportIssue(actor string, note string) error {
	if note == "" {
		return errs.NewValueIsRequiredError("note")
	}
	return d.TransitionTo(Issue, actor, note)
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setBookingID(bookingID kernel.UUID) error {
	if err := bookingID.Validate(); err != nil {
		return err
	}
	d.bookingID = bookingID
	return nil
}

func (d *Delivery) setDirection(direction Direction) error {
	if err := direction.Validate(); err != nil {
		return err
	}
	d.direction = direction
	return nil
}

func (d *Delivery) setScheduledAt(scheduledAt time.Time) error {
	if scheduledAt.IsZero() {
		return errs.NewValueIsRequiredError("scheduledAt")
	}
	d.scheduledAt = scheduledAt.UTC()
	return nil
}

func (d *Delivery) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	d.address = address
	return nil
}

func (d *Delivery) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}
