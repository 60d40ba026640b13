package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/cart"
	"github.com/mapsensemedia/betterrental/internal/core/ports"
)

// SweepIdleCartsCommandHandler handles the periodic cart abandonment sweep.
// The state changes commit in one transaction; the recovery nudges go out
// afterwards and are logged on failure.
type SweepIdleCartsCommandHandler struct {
	uowFactory CartUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewSweepIdleCartsCommandHandler creates a handler for the cart sweep.
func NewSweepIdleCartsCommandHandler(
	uowFactory CartUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) SweepIdleCartsCommandHandler {
	return SweepIdleCartsCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes one sweep pass.
func (h *SweepIdleCartsCommandHandler) Handle(ctx context.Context, cmd SweepIdleCartsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	expiryCutoff := now.Add(-cmd.ExpireAfter())

	abandoned, err := h.abandonIdleCarts(ctx, uow, now.Add(-cmd.AbandonAfter()))
	if err != nil {
		return err
	}

	if err = h.expireAbandonedCarts(ctx, uow, expiryCutoff); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// Carts idle past the expiry cutoff were expired in this same pass;
	// a terminal cart gets no nudge.
	recoverable := make([]*cart.Cart, 0, len(abandoned))
	for _, abandonedCart := range abandoned {
		if abandonedCart.IdleSince(expiryCutoff) {
			continue
		}
		recoverable = append(recoverable, abandonedCart)
	}

	h.sendRecoveryNudges(ctx, recoverable)
	return nil
}

func (h *SweepIdleCartsCommandHandler) abandonIdleCarts(
	ctx context.Context,
	uow CartUoW,
	cutoff time.Time,
) ([]*cart.Cart, error) {
	idleCarts, err := uow.CartRepository().GetAllIdle(ctx, cart.Active, cutoff)
	if err != nil {
		return nil, err
	}

	for _, idleCart := range idleCarts {
		if err = idleCart.Abandon(); err != nil {
			return nil, err
		}

		if err = uow.CartRepository().Update(ctx, idleCart); err != nil {
			return nil, err
		}
	}

	return idleCarts, nil
}

func (h *SweepIdleCartsCommandHandler) expireAbandonedCarts(
	ctx context.Context,
	uow CartUoW,
	cutoff time.Time,
) error {
	staleCarts, err := uow.CartRepository().GetAllIdle(ctx, cart.Abandoned, cutoff)
	if err != nil {
		return err
	}

	for _, staleCart := range staleCarts {
		if err = staleCart.Expire(); err != nil {
			return err
		}

		if err = uow.CartRepository().Update(ctx, staleCart); err != nil {
			return err
		}
	}

	return nil
}

// cartRecoveryMessage is the SMS text of the abandoned-cart nudge, shared by
// the periodic sweep and the back-office recover-notify operation.
func cartRecoveryMessage(abandonedCart *cart.Cart) string {
	return fmt.Sprintf("Your rental for %s is still waiting. Pick up where you left off: cart %s",
		abandonedCart.Period(), abandonedCart.ID())
}

func (h *SweepIdleCartsCommandHandler) sendRecoveryNudges(ctx context.Context, abandoned []*cart.Cart) {
	for _, abandonedCart := range abandoned {
		phone := abandonedCart.Phone()
		if phone == "" {
			continue
		}

		if err := h.notifier.SendSMS(ctx, phone, cartRecoveryMessage(abandonedCart)); err != nil {
			h.logger.Error("cart recovery SMS failed", "cartId", abandonedCart.ID().String(), "error", err)
		}
	}
}
