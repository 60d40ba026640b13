package kernel

import (
	"fmt"

	"github.com/mapsensemedia/betterrental/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates that a UUID was not initialized through
// one of the constructor functions. Validating a zero-value UUID returns it.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID is the identifier value object shared by every aggregate in the
// rental domain: bookings, carts, vehicle units, delivery runs and accounts
// all carry one. It wraps github.com/google/uuid so the domain never handles
// raw uuid values directly.
//
// The zero value is invalid; construct through NewUUID, UUIDFromString or
// UUIDFromBytes. UUID is immutable and safe for concurrent use.
//
// Example usage:
//
//	bookingID := kernel.NewUUID()
//
//	cartID, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")
//	if err != nil {
//	    // handle error
//	}
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random UUID (version 4). This is how every new
// aggregate gets its identifier: a fresh cart at quote time, a booking at
// checkout, a delivery run when the return pickup is scheduled.
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses a UUID from its string representation, typically a
// path parameter or a persisted column. Accepted formats include the plain
// hyphenated form, the braced form and the urn:uuid: prefixed form.
//
// Returns an error if the string is not a valid UUID.
//
// Example:
//
//	bookingID, err := kernel.UUIDFromString(c.Param("id"))
//	if err != nil {
//	    return fmt.Errorf("invalid booking ID: %w", err)
//	}
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes creates a UUID from a byte slice of exactly 16 bytes. The
// repositories use it to rebuild identifiers from their stored binary form.
// The nil UUID (all zero bytes) is rejected, matching the zero-value rule.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// String returns the canonical hyphenated representation,
// "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx". The zero value renders as the nil
// UUID string. Used for JSON payloads, log fields and text columns.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying uuid.UUID value, which the persistence DTOs
// store directly. For a byte slice use id.Bytes()[:]. Outside the repository
// layer prefer the UUID value object itself.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual compares two UUIDs by value.
//
// Example:
//
//	if booking.CustomerID().IsEqual(actorID) {
//	    // the actor rents this booking
//	}
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate reports whether the UUID came from one of the constructors.
// Returns ErrUUIDIsNotConstructed for the zero value, which is how aggregate
// setters reject identifiers that were never initialized.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
