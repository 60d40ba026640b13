package commands

import (
	"context"
	"errors"
)

// ErrInvalidCredentials is returned on any failed login: unknown email, wrong
// password or a deactivated account. One error for all three, so responses
// leak nothing about which part failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthenticateCommandHandler handles the business logic for logins.
type AuthenticateCommandHandler struct {
	uowFactory AccountUoWFactory
	hasher     PasswordHasher
	issuer     TokenIssuer
}

// NewAuthenticateCommandHandler creates a handler for login operations.
func NewAuthenticateCommandHandler(
	uowFactory AccountUoWFactory,
	hasher PasswordHasher,
	issuer TokenIssuer,
) AuthenticateCommandHandler {
	return AuthenticateCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		issuer:     issuer,
	}
}

// Handle processes the login command and returns the bearer token on success.
func (h *AuthenticateCommandHandler) Handle(ctx context.Context, cmd AuthenticateCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()

	loggedInAccount, err := uow.AccountRepository().GetByEmail(ctx, cmd.Email())
	if err != nil {
		return "", ErrInvalidCredentials
	}

	if !loggedInAccount.IsActive() {
		return "", ErrInvalidCredentials
	}

	if err = h.hasher.Compare(loggedInAccount.PasswordHash(), cmd.Password()); err != nil {
		return "", ErrInvalidCredentials
	}

	return h.issuer.Issue(loggedInAccount.ID(), loggedInAccount.Role())
}
