package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/cart"
	"github.com/mapsensemedia/betterrental/internal/core/ports"
	"github.com/mapsensemedia/betterrental/internal/pkg/errs"
)

// NotifyCartRecoveryCommandHandler handles the manual recovery nudge for one
// abandoned cart. The nudge is a plain read plus an SMS send; nothing is
// written, so no transaction opens.
type NotifyCartRecoveryCommandHandler struct {
	uowFactory CartUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewNotifyCartRecoveryCommandHandler creates a handler for manual cart recovery nudges.
func NewNotifyCartRecoveryCommandHandler(
	uowFactory CartUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) NotifyCartRecoveryCommandHandler {
	return NotifyCartRecoveryCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the manual recovery nudge command.
func (h *NotifyCartRecoveryCommandHandler) Handle(ctx context.Context, cmd NotifyCartRecoveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()

	nudgedCart, err := uow.CartRepository().Get(ctx, cmd.CartID())
	if err != nil {
		return err
	}

	if nudgedCart.Status() != cart.Abandoned {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("only abandoned carts can be nudged, cart is %s", nudgedCart.Status()))
	}

	if nudgedCart.Phone() == "" {
		return errs.NewValueIsRequiredError("phone")
	}

	if err = h.notifier.SendSMS(ctx, nudgedCart.Phone(), cartRecoveryMessage(nudgedCart)); err != nil {
		h.logger.Error("cart recovery SMS failed", "cartId", nudgedCart.ID().String(), "error", err)
		return err
	}

	return nil
}
