package deposit

import (
	"errors"
	"time"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/pkg/errs"
	"github.com/mapsensemedia/betterrental/internal/pkg/guard"
)

// ErrDepositIsNotConstructed is returned when a Deposit instance was not created
// through the NewDeposit or RestoreDeposit factory methods.
var ErrDepositIsNotConstructed = errors.New("Deposit must be created via NewDeposit or RestoreDeposit constructors")

// ErrDepositAlreadySettled indicates an attempt to append a ledger entry to a
// deposit whose settlement already happened.
var ErrDepositAlreadySettled = errors.New("deposit is settled and accepts no further entries")

// ErrDepositNotExhausted indicates an attempt to settle a deposit while part of
// the held amount is still unaccounted for.
var ErrDepositNotExhausted = errors.New("deposit can only be settled once the remaining amount is zero")

// Deposit is the aggregate root for the security deposit of a single booking.
// It tracks the amount held at checkout and an append-only ledger of release
// and withhold entries against it.
//
// Deposit follows these invariants:
//   - Entry amounts are positive and never exceed the remaining deposit
//   - The ledger is append-only
//   - Once settled, no further entries are accepted
//   - Can only be created through its constructors
type Deposit struct {
	id        kernel.UUID
	bookingID kernel.UUID
	held      kernel.Money
	entries   []Entry
	settled   bool

	guard guard.ConstructorGuard
}

// NewDeposit creates a new open Deposit holding the given amount.
// Called during cart checkout, right after the payment gateway placed the hold.
//
// Parameters:
//   - id: Unique identifier for the deposit
//   - bookingID: Identifier of the booking this deposit secures
//   - held: The amount held from the customer; must be positive
//
// Returns:
//   - *Deposit: The created deposit if all validations pass
//   - error: Validation error if any parameter is invalid
func NewDeposit(id kernel.UUID, bookingID kernel.UUID, held kernel.Money) (*Deposit, error) {
	deposit := &Deposit{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		deposit.setID(id),
		deposit.setBookingID(bookingID),
		deposit.setHeld(held),
	); err != nil {
		return nil, err
	}

	return deposit, nil
}

// RestoreDeposit reconstructs a Deposit aggregate from persistent storage.
//
// Parameters:
//   - id: Unique identifier for the deposit
//   - bookingID: Identifier of the booking this deposit secures
//   - held: The amount originally held from the customer
//   - entries: The persisted ledger rows, in append order
//   - settled: Whether settlement already happened
//
// Returns:
//   - *Deposit: Restored deposit aggregate
//   - error: Validation error if any parameter is invalid or the ledger sums
//     exceed the held amount
func RestoreDeposit(
	id kernel.UUID,
	bookingID kernel.UUID,
	held kernel.Money,
	entries []Entry,
	settled bool,
) (*Deposit, error) {
	deposit := &Deposit{
		settled: settled,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		deposit.setID(id),
		deposit.setBookingID(bookingID),
		deposit.setHeld(held),
	); err != nil {
		return nil, err
	}

	// Replaying the ledger re-checks the invariant entry by entry, so a corrupt
	// set of rows is detected during rehydration.
	remaining := held
	for _, entry := range entries {
		next, err := remaining.Sub(entry.Amount())
		if err != nil {
			return nil, err
		}
		remaining = next
	}
	deposit.entries = append(deposit.entries, entries...)

	return deposit, nil
}

// Validate ensures the Deposit instance was properly constructed through a constructor.
func (d *Deposit) Validate() error {
	if d == nil {
		return ErrDepositIsNotConstructed
	}
	return d.guard.Validate(ErrDepositIsNotConstructed)
}

// IsEqual compares two deposits by their unique identifiers.
func (d *Deposit) IsEqual(other *Deposit) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the deposit's unique identifier.
func (d *Deposit) ID() kernel.UUID {
	return d.id
}

// BookingID returns the identifier of the booking this deposit secures.
func (d *Deposit) BookingID() kernel.UUID {
	return d.bookingID
}

// Held returns the amount originally held from the customer.
func (d *Deposit) Held() kernel.Money {
	return d.held
}

// Entries returns a copy of the ledger rows in append order.
// The returned slice is detached from the aggregate's internal state.
func (d *Deposit) Entries() []Entry {
	entries := make([]Entry, len(d.entries))
	copy(entries, d.entries)
	return entries
}

// IsSettled reports whether settlement already happened.
func (d *Deposit) IsSettled() bool {
	return d.settled
}

// Remaining returns the part of the held amount not yet released or withheld.
// The ledger invariant guarantees the subtraction never fails for a properly
// constructed deposit.
func (d *Deposit) Remaining() kernel.Money {
	remaining := d.held
	for _, entry := range d.entries {
		next, err := remaining.Sub(entry.Amount())
		if err != nil {
			return remaining
		}
		remaining = next
	}
	return remaining
}

// Released returns the total amount refunded back to the customer so far.
func (d *Deposit) Released() kernel.Money {
	return d.sumOfKind(KindRelease)
}

// Withheld returns the total amount kept against damages or fees so far.
func (d *Deposit) Withheld() kernel.Money {
	return d.sumOfKind(KindWithhold)
}

// Release appends a ledger row refunding part of the deposit to the customer.
//
// This method enforces the following business rules:
//   - The deposit must not be settled yet
//   - The amount must be positive and must not exceed the remaining deposit
//
// Parameters:
//   - amount: The amount to refund
//   - reason: Free-text explanation recorded in the ledger
//   - actor: Who performs the action
//
// Returns:
//   - nil on success
//   - error if the amount is invalid or exceeds the remaining deposit
func (d *Deposit) Release(amount kernel.Money, reason string, actor string) error {
	return d.appendEntry(KindRelease, amount, reason, actor)
}

// Withhold appends a ledger row keeping part of the deposit against damages or fees.
//
// This method enforces the following business rules:
//   - The deposit must not be settled yet
//   - The amount must be positive and must not exceed the remaining deposit
//
// Parameters:
//   - amount: The amount to keep
//   - reason: Free-text explanation recorded in the ledger
//   - actor: Who performs the action
//
// Returns:
//   - nil on success
//   - error if the amount is invalid or exceeds the remaining deposit
func (d *Deposit) Withhold(amount kernel.Money, reason string, actor string) error {
	return d.appendEntry(KindWithhold, amount, reason, actor)
}

// Settle closes the ledger. Only possible once every minor unit of the held
// amount is accounted for by release and withhold rows.
//
// Returns:
//   - nil on success
//   - ErrDepositAlreadySettled if settlement already happened
//   - ErrDepositNotExhausted if the remaining amount is not zero
func (d *Deposit) Settle() error {
	if d.settled {
		return ErrDepositAlreadySettled
	}
	if !d.Remaining().IsZero() {
		return ErrDepositNotExhausted
	}

	d.settled = true
	return nil
}

func (d *Deposit) appendEntry(kind EntryKind, amount kernel.Money, reason string, actor string) error {
	if d.settled {
		return ErrDepositAlreadySettled
	}

	entry, err := RestoreEntry(kind, amount, reason, actor, time.Now().UTC())
	if err != nil {
		return err
	}

	if _, err := d.Remaining().Sub(amount); err != nil {
		return err
	}

	d.entries = append(d.entries, entry)
	return nil
}

func (d *Deposit) sumOfKind(kind EntryKind) kernel.Money {
	total, err := kernel.Zero(d.held.Currency())
	if err != nil {
		return kernel.Money{}
	}
	for _, entry := range d.entries {
		if entry.Kind() != kind {
			continue
		}
		next, addErr := total.Add(entry.Amount())
		if addErr != nil {
			return total
		}
		total = next
	}
	return total
}

// setID validates and sets the deposit's unique identifier.
// This is a private method used only during construction.
func (d *Deposit) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

// setBookingID validates and sets the secured booking's identifier.
// This is a private method used only during construction.
func (d *Deposit) setBookingID(bookingID kernel.UUID) error {
	if err := bookingID.Validate(); err != nil {
		return err
	}
	d.bookingID = bookingID
	return nil
}

// setHeld validates and sets the held amount.
// This is a private method used only during construction.
func (d *Deposit) setHeld(held kernel.Money) error {
	if err := held.Validate(); err != nil {
		return err
	}
	if held.IsZero() {
		return errs.NewValueIsInvalidError("held amount must be positive")
	}
	d.held = held
	return nil
}
