package kernel

import (
	"errors"
	"fmt"
	"math"

	"github.com/mapsensemedia/betterrental/internal/pkg/errs"
	"github.com/mapsensemedia/betterrental/internal/pkg/guard"
)

// DefaultCurrency is the currency assumed by convenience constructors when the
// caller does not care about multi-currency support.
const DefaultCurrency = "USD"

// currencyCodeLength is the length of an ISO 4217 alphabetic currency code.
const currencyCodeLength = 3

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly initialized Money.
// Money must be created using NewMoney or Zero constructors to ensure validity.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney or Zero constructors")

// ErrCurrencyMismatch is returned when an arithmetic operation combines two
// Money values denominated in different currencies.
var ErrCurrencyMismatch = errs.NewValueIsInvalidError("currency codes of operands do not match")

// ErrInsufficientAmount is returned when a subtraction would produce a negative
// amount. Money never goes below zero; callers treat this as "not enough funds".
var ErrInsufficientAmount = errs.NewValueIsInvalidError("amount to subtract exceeds the available amount")

// Money represents a monetary amount in minor units (cents) of a single currency.
// Money is an immutable value object: all arithmetic returns a new instance and
// amounts are guaranteed to be non-negative. Storing minor units as int64 avoids
// floating point rounding issues in pricing and deposit calculations.
// The zero value of Money is invalid and will fail validation - use constructors to create instances.
//
// Example:
//
//	rate, err := kernel.NewMoney(8900, "USD") // $89.00
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("Daily rate: %s", rate) // Output: Daily rate: 89.00 USD
type Money struct { //nolint:recvcheck //using for validation
	amount   int64
	currency string
	guard    guard.ConstructorGuard
}

// NewMoney creates a new Money value with the specified amount of minor units
// and ISO 4217 currency code. The amount must be non-negative and the currency
// code must be exactly three uppercase letters.
//
// Parameters:
//   - amount: The amount in minor units (e.g., cents); must be >= 0
//   - currency: The ISO 4217 alphabetic currency code (e.g., "USD")
//
// Returns:
//   - Money: A valid money instance
//   - error: Validation error if the amount is negative or the currency code is malformed
//
// Example:
//
//	deposit, err := NewMoney(50000, "USD") // $500.00
//	if err != nil {
//	    log.Fatal("Invalid money:", err)
//	}
func NewMoney(amount int64, currency string) (Money, error) {
	m := Money{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(m.setAmount(amount), m.setCurrency(currency)); err != nil {
		return Money{}, err
	}

	return m, nil
}

// Zero creates a Money value of zero in the specified currency.
// Useful as the identity element when summing amounts.
//
// Example:
//
//	total := kernel.Zero("USD")
//	for _, fee := range fees {
//	    total, _ = total.Add(fee)
//	}
func Zero(currency string) (Money, error) {
	return NewMoney(0, currency)
}

// Validate checks if the Money was properly constructed using a constructor.
// The zero value of Money is invalid and will fail this validation.
//
// Returns:
//   - error: ErrMoneyIsNotConstructed if the money was not properly initialized, nil otherwise
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the amount in minor units.
// The returned amount is guaranteed to be non-negative for properly
// constructed Money instances.
func (m Money) Amount() int64 {
	return m.amount
}

// Currency returns the ISO 4217 alphabetic currency code.
func (m Money) Currency() string {
	return m.currency
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount == 0
}

// String returns a human-readable string representation of the Money.
// The format is "units.cc CUR", e.g. "89.00 USD". This method implements
// the fmt.Stringer interface and is used in documents and logs.
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d %s", m.amount/100, m.amount%100, m.currency)
}

// IsEqual compares two money values for equality.
// Two values are equal if they have the same amount and currency.
// Both values must be properly constructed for the comparison to succeed.
//
// Parameters:
//   - other: The Money to compare with
//
// Returns:
//   - bool: true if the values are equal, false otherwise
//   - error: Validation error if either value is improperly constructed
func (m Money) IsEqual(other Money) (bool, error) {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return m.amount == other.amount && m.currency == other.currency, nil
}

// Add returns the sum of two money values.
// Both operands must be properly constructed and denominated in the same currency.
//
// Parameters:
//   - other: The Money to add
//
// Returns:
//   - Money: A new value holding the sum
//   - error: Validation error or ErrCurrencyMismatch
//
// Example:
//
//	subtotal, _ := NewMoney(8900, "USD")
//	fee, _ := NewMoney(2500, "USD")
//	total, err := subtotal.Add(fee) // 114.00 USD
func (m Money) Add(other Money) (Money, error) {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return Money{}, err
	}
	if m.currency != other.currency {
		return Money{}, ErrCurrencyMismatch
	}

	return NewMoney(m.amount+other.amount, m.currency)
}

// Sub returns the difference of two money values.
// Returns ErrInsufficientAmount when the subtrahend exceeds the available
// amount: Money never represents a negative balance. The deposit ledger relies
// on this to reject withholdings larger than the remaining deposit.
//
// Parameters:
//   - other: The Money to subtract
//
// Returns:
//   - Money: A new value holding the difference
//   - error: Validation error, ErrCurrencyMismatch, or ErrInsufficientAmount
//
// Example:
//
//	held, _ := NewMoney(50000, "USD")
//	damage, _ := NewMoney(12000, "USD")
//	remaining, err := held.Sub(damage) // 380.00 USD
func (m Money) Sub(other Money) (Money, error) {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return Money{}, err
	}
	if m.currency != other.currency {
		return Money{}, ErrCurrencyMismatch
	}
	if other.amount > m.amount {
		return Money{}, ErrInsufficientAmount
	}

	return NewMoney(m.amount-other.amount, m.currency)
}

// MultiplyDays returns the amount multiplied by a whole number of billed days.
// Used by the pricing calculation to turn a daily rate into a time charge.
//
// Parameters:
//   - days: The number of days; must be >= 0
//
// Returns:
//   - Money: A new value holding the product
//   - error: Validation error if the receiver is invalid or days is negative
func (m Money) MultiplyDays(days int) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if days < 0 {
		return Money{}, errs.NewValueIsOutOfRangeError("days", days, 0, math.MaxInt)
	}

	return NewMoney(m.amount*int64(days), m.currency)
}

// Percent returns the given percentage of the amount, rounding half up to the
// nearest minor unit. Used for duration discounts and cancellation fees.
//
// Parameters:
//   - percent: The percentage to take; must be within [0..100]
//
// Returns:
//   - Money: A new value holding the percentage
//   - error: Validation error if the receiver is invalid or percent is out of range
//
// Example:
//
//	charge, _ := NewMoney(62300, "USD")
//	fee, err := charge.Percent(25) // 155.75 USD
func (m Money) Percent(percent int64) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if percent < 0 || percent > 100 {
		return Money{}, errs.NewValueIsOutOfRangeError("percent", percent, 0, 100)
	}

	return NewMoney((m.amount*percent+50)/100, m.currency)
}

// setAmount sets the amount with validation.
// Note: We intentionally use a pointer receiver here while other methods use value receivers.
// Although mixing receiver types is generally not recommended, in this case we use pointer
// receivers for these private setters to enable self-encapsulated validation of business
// requirements during object construction.
func (m *Money) setAmount(amount int64) error {
	if amount < 0 {
		return errs.NewValueIsOutOfRangeError("amount", amount, 0, int64(math.MaxInt64))
	}

	m.amount = amount
	return nil
}

// setCurrency sets the currency code with validation.
// Note: We intentionally use a pointer receiver here while other methods use value receivers.
// Although mixing receiver types is generally not recommended, in this case we use pointer
// receivers for these private setters to enable self-encapsulated validation of business
// requirements during object construction.
func (m *Money) setCurrency(currency string) error {
	if len(currency) != currencyCodeLength {
		return errs.NewValueIsInvalidError("currency")
	}
	for _, r := range currency {
		if r < 'A' || r > 'Z' {
			return errs.NewValueIsInvalidError("currency")
		}
	}

	m.currency = currency
	return nil
}
