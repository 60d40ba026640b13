package commands

import (
	"context"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/core/domain/services"
)

// UpdateCartCommandHandler handles the business logic for editing a cart.
// Every edit reprices the quote from current category rates.
type UpdateCartCommandHandler struct {
	uowFactory CartUoWFactory
	pricer     services.Pricer
}

// NewUpdateCartCommandHandler creates a handler for cart update operations.
func NewUpdateCartCommandHandler(uowFactory CartUoWFactory, pricer services.Pricer) UpdateCartCommandHandler {
	return UpdateCartCommandHandler{
		uowFactory: uowFactory,
		pricer:     pricer,
	}
}

// Handle processes the cart update command.
func (h *UpdateCartCommandHandler) Handle(ctx context.Context, cmd UpdateCartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	period, err := kernel.NewRentalPeriod(cmd.Start(), cmd.End())
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

	existingCart, err := uow.CartRepository().Get(ctx, cmd.CartID())
	if err != nil {
		return err
	}

	category, err := uow.CategoryRepository().Get(ctx, existingCart.CategoryID())
	if err != nil {
		return err
	}

	quote, err := h.pricer.Quote(category, period)
	if err != nil {
		return err
	}

	if err = existingCart.Update(period, cmd.PickupAddress(), cmd.ReturnAddress(), quote); err != nil {
		return err
	}

	if err = uow.CartRepository().Update(ctx, existingCart); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
