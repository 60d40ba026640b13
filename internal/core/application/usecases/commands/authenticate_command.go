package commands

import (
	"errors"

	"github.com/mapsensemedia/betterrental/internal/pkg/errs"
	"github.com/mapsensemedia/betterrental/internal/pkg/guard"
)

var ErrAuthenticateCommandIsNotConstructed = errors.New(
	"AuthenticateCommand must be created via NewAuthenticateCommand constructor",
)

// AuthenticateCommand represents a login attempt.
type AuthenticateCommand struct { //nolint:recvcheck //using for validation
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewAuthenticateCommand creates a command to authenticate an account.
func NewAuthenticateCommand(email string, password string) (AuthenticateCommand, error) {
	cmd := AuthenticateCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEmail(email),
		cmd.setPassword(password),
	); err != nil {
		return AuthenticateCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AuthenticateCommand) Validate() error {
	return c.guard.Validate(ErrAuthenticateCommandIsNotConstructed)
}

// Email returns the login email.
func (c AuthenticateCommand) Email() string { return c.email }

// Password returns the raw password to verify.
func (c AuthenticateCommand) Password() string { return c.password }

func (c *AuthenticateCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *AuthenticateCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	c.password = password
	return nil
}
