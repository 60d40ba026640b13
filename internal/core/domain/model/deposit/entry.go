package deposit

import (
	"errors"
	"fmt"
	"time"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/pkg/errs"
)

// EntryKind tells whether a ledger row returns money to the customer or keeps it.
type EntryKind int

const (
	// KindUnknown represents an invalid or undefined entry kind.
	KindUnknown EntryKind = iota

	// KindRelease records an amount refunded back to the customer.
	KindRelease

	// KindWithhold records an amount kept against damages or fees.
	KindWithhold
)

func getEntryKindStrings() map[EntryKind]string {
	return map[EntryKind]string{
		KindUnknown:  "Unknown",
		KindRelease:  "Release",
		KindWithhold: "Withhold",
	}
}

// EntryKindFromString parses a persisted entry kind string back into an EntryKind value.
func EntryKindFromString(s string) (EntryKind, error) {
	for kind, str := range getEntryKindStrings() {
		if kind != KindUnknown && str == s {
			return kind, nil
		}
	}
	return KindUnknown, errs.NewValueIsInvalidErrorWithCause("entry kind is invalid",
		fmt.Errorf("%q is not a valid entry kind", s))
}

// Validate checks if the EntryKind value is valid.
func (k EntryKind) Validate() error {
	if k != KindRelease && k != KindWithhold {
		return errs.NewValueIsInvalidErrorWithCause("entry kind is invalid",
			fmt.Errorf("%d is not a valid entry kind", k))
	}
	return nil
}

// String returns the human-readable name of the entry kind.
// This method implements the fmt.Stringer interface.
func (k EntryKind) String() string {
	if str, ok := getEntryKindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}

// Entry is a single immutable row of the deposit ledger. Entries are created
// by the Deposit aggregate's Release and Withhold operations and restored from
// storage via RestoreEntry; they are never modified afterwards.
type Entry struct {
	kind   EntryKind
	amount kernel.Money
	reason string
	actor  string
	at     time.Time
}

// RestoreEntry reconstructs a ledger Entry from persistent storage.
//
// Parameters:
//   - kind: Whether the row is a release or a withholding
//   - amount: The positive amount moved by this row
//   - reason: Free-text explanation recorded by the actor
//   - actor: Who performed the action
//   - at: When the row was appended
//
// Returns:
//   - Entry: Restored ledger row
//   - error: Validation error if any parameter is invalid
func RestoreEntry(kind EntryKind, amount kernel.Money, reason string, actor string, at time.Time) (Entry, error) {
	if err := errors.Join(kind.Validate(), amount.Validate()); err != nil {
		return Entry{}, err
	}
	if amount.IsZero() {
		return Entry{}, errs.NewValueIsInvalidError("amount must be positive")
	}
	if actor == "" {
		return Entry{}, errs.NewValueIsRequiredError("actor")
	}
	if at.IsZero() {
		return Entry{}, errs.NewValueIsRequiredError("at")
	}

	return Entry{kind: kind, amount: amount, reason: reason, actor: actor, at: at.UTC()}, nil
}

// Kind returns whether the row is a release or a withholding.
func (e Entry) Kind() EntryKind { return e.kind }

// Amount returns the positive amount moved by this row.
func (e Entry) Amount() kernel.Money { return e.amount }

// Reason returns the free-text explanation recorded by the actor.
func (e Entry) Reason() string { return e.reason }

// Actor returns who performed the action.
func (e Entry) Actor() string { return e.actor }

// At returns when the row was appended to the ledger.
func (e Entry) At() time.Time { return e.at }
