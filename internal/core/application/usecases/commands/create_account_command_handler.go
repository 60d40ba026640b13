package commands

import (
	"context"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/account"
)

// CreateAccountCommandHandler handles the business logic for account creation.
// The email's uniqueness is enforced by the repository.
type CreateAccountCommandHandler struct {
	uowFactory AccountUoWFactory
	hasher     PasswordHasher
}

// NewCreateAccountCommandHandler creates a handler for account creation operations.
func NewCreateAccountCommandHandler(uowFactory AccountUoWFactory, hasher PasswordHasher) CreateAccountCommandHandler {
	return CreateAccountCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle processes the account creation command.
func (h *CreateAccountCommandHandler) Handle(ctx context.Context, cmd CreateAccountCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	passwordHash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return err
	}

	newAccount, err := account.NewAccount(cmd.AccountID(), cmd.Email(), passwordHash, cmd.Name(), cmd.Role())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.AccountRepository().Add(ctx, newAccount); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
