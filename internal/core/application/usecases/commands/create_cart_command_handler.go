package commands

import (
	"context"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/cart"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/core/domain/services"
)

// CreateCartCommandHandler handles the business logic for starting a cart.
// Prices the quote server-side from the category's current rates so the
// client-facing numbers can never be tampered with.
type CreateCartCommandHandler struct {
	uowFactory CartUoWFactory
	pricer     services.Pricer
}

// NewCreateCartCommandHandler creates a handler for cart creation operations.
func NewCreateCartCommandHandler(uowFactory CartUoWFactory, pricer services.Pricer) CreateCartCommandHandler {
	return CreateCartCommandHandler{
		uowFactory: uowFactory,
		pricer:     pricer,
	}
}

// Handle processes the cart creation command.
// Builds the rental period, prices the quote and persists the new Active cart.
func (h *CreateCartCommandHandler) Handle(ctx context.Context, cmd CreateCartCommand) error {
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

	category, err := uow.CategoryRepository().Get(ctx, cmd.CategoryID())
	if err != nil {
		return err
	}

	quote, err := h.pricer.Quote(category, period)
	if err != nil {
		return err
	}

	newCart, err := cart.NewCart(
		cmd.CartID(),
		cmd.CustomerID(),
		cmd.Email(),
		cmd.Phone(),
		cmd.CategoryID(),
		period,
		cmd.PickupAddress(),
		cmd.ReturnAddress(),
		quote,
	)
	if err != nil {
		return err
	}

	if err = uow.CartRepository().Add(ctx, newCart); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
