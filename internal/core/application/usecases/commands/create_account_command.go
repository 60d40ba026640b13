package commands

import (
	"errors"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/account"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/pkg/errs"
	"github.com/mapsensemedia/betterrental/internal/pkg/guard"
)

var ErrCreateAccountCommandIsNotConstructed = errors.New(
	"CreateAccountCommand must be created via NewCreateAccountCommand constructor",
)

// minPasswordLength is the floor for raw passwords before hashing.
const minPasswordLength = 8

// CreateAccountCommand represents a registration or an admin creating a
// staff account. The raw password never leaves the handler: it is hashed
// before anything is persisted.
type CreateAccountCommand struct { //nolint:recvcheck //using for validation
	accountID kernel.UUID
	email     string
	password  string
	name      string
	role      account.Role

	guard guard.ConstructorGuard
}

// NewCreateAccountCommand creates a command to create an account.
func NewCreateAccountCommand(
	accountID kernel.UUID,
	email string,
	password string,
	name string,
	role account.Role,
) (CreateAccountCommand, error) {
	cmd := CreateAccountCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAccountID(accountID),
		cmd.setEmail(email),
		cmd.setPassword(password),
		cmd.setName(name),
		cmd.setRole(role),
	); err != nil {
		return CreateAccountCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateAccountCommand) Validate() error {
	return c.guard.Validate(ErrCreateAccountCommandIsNotConstructed)
}

// AccountID returns the identifier minted for the new account.
func (c CreateAccountCommand) AccountID() kernel.UUID { return c.accountID }

// Email returns the login email.
func (c CreateAccountCommand) Email() string { return c.email }

// Password returns the raw password to hash.
func (c CreateAccountCommand) Password() string { return c.password }

// Name returns the display name.
func (c CreateAccountCommand) Name() string { return c.name }

// Role returns the access role of the new account.
func (c CreateAccountCommand) Role() account.Role { return c.role }

func (c *CreateAccountCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}
	c.accountID = accountID
	return nil
}

func (c *CreateAccountCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *CreateAccountCommand) setPassword(password string) error {
	if len(password) < minPasswordLength {
		return errs.NewValueIsOutOfRangeError("password length", len(password), minPasswordLength, 72)
	}
	c.password = password
	return nil
}

func (c *CreateAccountCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateAccountCommand) setRole(role account.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}
