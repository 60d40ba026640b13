// Package account provides domain entities for user accounts: customers who
// book vehicles and back-office staff who operate the system. Password hashing
// and token issuing live in the application layer; the aggregate only stores
// the opaque hash.
package account

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/pkg/errs"
	"github.com/mapsensemedia/betterrental/internal/pkg/guard"
)

// ErrAccountIsNotConstructed is returned when an Account instance was not
// created through the NewAccount or RestoreAccount factory methods.
var ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount or RestoreAccount constructors")

// Role decides which part of the system an account can reach.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleCustomer can manage its own carts, bookings and tickets.
	RoleCustomer

	// RoleAgent can operate the back office: fleet, bookings, deliveries, tickets.
	RoleAgent

	// RoleAdmin can do everything an agent can plus manage accounts.
	RoleAdmin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "Unknown",
		RoleCustomer: "customer",
		RoleAgent:    "agent",
		RoleAdmin:    "admin",
	}
}

// RoleFromString parses a persisted role string back into a Role value.
func RoleFromString(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if role != RoleUnknown && str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role is invalid",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is valid.
func (r Role) Validate() error {
	if r < RoleCustomer || r > RoleAdmin {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the persisted name of the role.
// This method implements the fmt.Stringer interface.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}

// IsStaff reports whether the role grants back-office access.
func (r Role) IsStaff() bool {
	return r == RoleAgent || r == RoleAdmin
}

// Account is the aggregate root for a system login. Emails are unique across
// the system; uniqueness is enforced by the persistence layer.
type Account struct {
	id           kernel.UUID
	email        string
	passwordHash string
	name         string
	role         Role
	active       bool
	createdAt    time.Time

	guard guard.ConstructorGuard
}

// NewAccount creates a new active Account with validation.
//
// Parameters:
//   - id: Unique identifier for the account
//   - email: Login email, stored lowercased
//   - passwordHash: Opaque password hash produced by the application layer
//   - name: Display name
//   - role: Access role
//
// Returns:
//   - *Account: The created account if all validations pass
//   - error: Validation error if any parameter is invalid
func NewAccount(id kernel.UUID, email string, passwordHash string, name string, role Role) (*Account, error) {
	account := &Account{
		active:    true,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		account.setID(id),
		account.setEmail(email),
		account.setPasswordHash(passwordHash),
		account.setName(name),
		account.setRole(role),
	); err != nil {
		return nil, err
	}

	return account, nil
}

// RestoreAccount reconstructs an Account aggregate from persistent storage.
func RestoreAccount(
	id kernel.UUID,
	email string,
	passwordHash string,
	name string,
	role Role,
	active bool,
	createdAt time.Time,
) (*Account, error) {
	account := &Account{
		active: active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		account.setID(id),
		account.setEmail(email),
		account.setPasswordHash(passwordHash),
		account.setName(name),
		account.setRole(role),
		account.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return account, nil
}

// Validate ensures the Account instance was properly constructed through a constructor.
func (a *Account) Validate() error {
	if a == nil {
		return ErrAccountIsNotConstructed
	}
	return a.guard.Validate(ErrAccountIsNotConstructed)
}

// IsEqual compares two accounts by their unique identifiers.
func (a *Account) IsEqual(other *Account) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the account's unique identifier.
func (a *Account) ID() kernel.UUID {
	return a.id
}

// Email returns the lowercased login email.
func (a *Account) Email() string {
	return a.email
}

// PasswordHash returns the opaque password hash.
func (a *Account) PasswordHash() string {
	return a.passwordHash
}

// Name returns the display name.
func (a *Account) Name() string {
	return a.name
}

// Role returns the access role.
func (a *Account) Role() Role {
	return a.role
}

// IsActive reports whether the account can log in.
func (a *Account) IsActive() bool {
	return a.active
}

// CreatedAt returns the creation timestamp of the account.
func (a *Account) CreatedAt() time.Time {
	return a.createdAt
}

// ChangePassword replaces the stored password hash.
func (a *Account) ChangePassword(passwordHash string) error {
	return a.setPasswordHash(passwordHash)
}

// Activate re-enables a deactivated account.
func (a *Account) Activate() {
	a.active = true
}

// Deactivate blocks the account from logging in without deleting its history.
func (a *Account) Deactivate() {
	a.active = false
}

func (a *Account) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Account) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return errs.NewValueIsInvalidError("email")
	}
	a.email = email
	return nil
}

func (a *Account) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	a.passwordHash = passwordHash
	return nil
}

func (a *Account) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	a.name = name
	return nil
}

func (a *Account) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}

func (a *Account) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	a.createdAt = createdAt.UTC()
	return nil
}
