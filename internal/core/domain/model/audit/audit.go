// Package audit provides the append-only audit trail entry written by admin
// mutations and by the delivered handover transition. Entries record who did
// what to which resource, with before and after snapshots of the changed
// fields, and are never updated or removed.
package audit

import (
	"errors"
	"time"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/pkg/errs"
	"github.com/mapsensemedia/betterrental/internal/pkg/guard"
)

// ErrEntryIsNotConstructed is returned when an Entry instance was not created
// through the NewEntry or RestoreEntry factory methods.
var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry or RestoreEntry constructors")

// Entry is a single immutable audit trail row.
type Entry struct {
	id         kernel.UUID
	actorID    kernel.UUID
	action     string
	resource   string
	resourceID string
	oldValues  map[string]string
	newValues  map[string]string
	at         time.Time

	guard guard.ConstructorGuard
}

// NewEntry creates a new audit trail Entry with validation.
//
// Parameters:
//   - id: Unique identifier for the entry
//   - actorID: The account performing the action
//   - action: The performed action, e.g. "booking.confirm"
//   - resource: The kind of resource touched, e.g. "booking"
//   - resourceID: Identifier of the touched resource
//   - oldValues: Changed fields before the action, nil when creating
//   - newValues: Changed fields after the action, nil when deleting
//
// Returns:
//   - *Entry: The created entry if all validations pass
//   - error: Validation error if any parameter is invalid
func NewEntry(
	id kernel.UUID,
	actorID kernel.UUID,
	action string,
	resource string,
	resourceID string,
	oldValues map[string]string,
	newValues map[string]string,
) (*Entry, error) {
	return RestoreEntry(id, actorID, action, resource, resourceID, oldValues, newValues, time.Now().UTC())
}

// RestoreEntry reconstructs an audit trail Entry from persistent storage.
func RestoreEntry(
	id kernel.UUID,
	actorID kernel.UUID,
	action string,
	resource string,
	resourceID string,
	oldValues map[string]string,
	newValues map[string]string,
	at time.Time,
) (*Entry, error) {
	entry := &Entry{
		oldValues: oldValues,
		newValues: newValues,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		entry.setID(id),
		entry.setActorID(actorID),
		entry.setAction(action),
		entry.setResource(resource, resourceID),
		entry.setAt(at),
	); err != nil {
		return nil, err
	}

	return entry, nil
}

// Validate ensures the Entry instance was properly constructed through a constructor.
func (e *Entry) Validate() error {
	if e == nil {
		return ErrEntryIsNotConstructed
	}
	return e.guard.Validate(ErrEntryIsNotConstructed)
}

// ID returns the entry's unique identifier.
func (e *Entry) ID() kernel.UUID {
	return e.id
}

// ActorID returns the account that performed the action.
func (e *Entry) ActorID() kernel.UUID {
	return e.actorID
}

// Action returns the performed action.
func (e *Entry) Action() string {
	return e.action
}

// Resource returns the kind of resource touched.
func (e *Entry) Resource() string {
	return e.resource
}

// ResourceID returns the identifier of the touched resource.
func (e *Entry) ResourceID() string {
	return e.resourceID
}

// OldValues returns the changed fields before the action, possibly nil.
func (e *Entry) OldValues() map[string]string {
	return e.oldValues
}

// NewValues returns the changed fields after the action, possibly nil.
func (e *Entry) NewValues() map[string]string {
	return e.newValues
}

// At returns when the action happened.
func (e *Entry) At() time.Time {
	return e.at
}

func (e *Entry) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Entry) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	e.actorID = actorID
	return nil
}

func (e *Entry) setAction(action string) error {
	if action == "" {
		return errs.NewValueIsRequiredError("action")
	}
	e.action = action
	return nil
}

func (e *Entry) setResource(resource string, resourceID string) error {
	if resource == "" {
		return errs.NewValueIsRequiredError("resource")
	}
	if resourceID == "" {
		return errs.NewValueIsRequiredError("resourceID")
	}
	e.resource = resource
	e.resourceID = resourceID
	return nil
}

func (e *Entry) setAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("at")
	}
	e.at = at.UTC()
	return nil
}
