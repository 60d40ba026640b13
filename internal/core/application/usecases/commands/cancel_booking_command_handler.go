package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/audit"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/core/domain/services"
	"github.com/mapsensemedia/betterrental/internal/core/ports"
)

// ErrBookingAccessDenied is returned when an actor who is neither the renting
// customer nor a staff member tries to manage a booking.
var ErrBookingAccessDenied = errors.New("booking can only be managed by its customer or by staff")

// CancelBookingCommandHandler handles the business logic for booking
// cancellation: the fee is computed from the policy tiers, the reserved unit
// and the deposit are freed, open runs are cancelled and the refund is issued
// after the commit.
type CancelBookingCommandHandler struct {
	uowFactory BookingUoWFactory
	policy     services.CancellationPolicy
	gateway    ports.PaymentGateway
	cache      ports.AvailabilityCache
	logger     *slog.Logger
}

// NewCancelBookingCommandHandler creates a handler for booking cancellation operations.
func NewCancelBookingCommandHandler(
	uowFactory BookingUoWFactory,
	policy services.CancellationPolicy,
	gateway ports.PaymentGateway,
	cache ports.AvailabilityCache,
	logger *slog.Logger,
) CancelBookingCommandHandler {
	return CancelBookingCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		gateway:    gateway,
		cache:      cache,
		logger:     logger,
	}
}

// Handle processes the booking cancellation command.
func (h *CancelBookingCommandHandler) Handle(ctx context.Context, cmd CancelBookingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cancelledBooking, err := uow.BookingRepository().Get(ctx, cmd.BookingID())
	if err != nil {
		return err
	}

	if err = h.checkActorAccess(ctx, uow, cancelledBooking.CustomerID(), cmd.ActorID()); err != nil {
		return err
	}

	oldStatus := cancelledBooking.Status()
	unitID := cancelledBooking.UnitID()

	fee, err := h.policy.Fee(cancelledBooking.Charges().Subtotal(), cancelledBooking.Period().Start(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = cancelledBooking.Cancel(fee); err != nil {
		return err
	}

	if err = uow.BookingRepository().Update(ctx, cancelledBooking); err != nil {
		return err
	}

	if unitID != nil {
		unit, unitErr := uow.UnitRepository().Get(ctx, *unitID)
		if unitErr != nil {
			return unitErr
		}

		if unitErr = unit.Release(); unitErr != nil {
			return unitErr
		}

		if unitErr = uow.UnitRepository().Update(ctx, unit); unitErr != nil {
			return unitErr
		}
	}

	bookingDeposit, err := uow.DepositRepository().GetByBooking(ctx, cmd.BookingID())
	if err != nil {
		return err
	}

	released := bookingDeposit.Remaining()
	if !released.IsZero() {
		if err = bookingDeposit.Release(released, "booking cancelled", cmd.ActorID().String()); err != nil {
			return err
		}
	}

	if err = bookingDeposit.Settle(); err != nil {
		return err
	}

	if err = uow.DepositRepository().Update(ctx, bookingDeposit); err != nil {
		return err
	}

	openRuns, err := uow.DeliveryRepository().GetOpenByBooking(ctx, cmd.BookingID())
	if err != nil {
		return err
	}

	for _, run := range openRuns {
		if err = run.Cancel(cmd.ActorID().String(), "booking cancelled"); err != nil {
			return err
		}

		if err = uow.DeliveryRepository().Update(ctx, run); err != nil {
			return err
		}
	}

	entry, err := audit.NewEntry(
		kernel.NewUUID(),
		cmd.ActorID(),
		"booking.cancel",
		"booking",
		cancelledBooking.ID().String(),
		map[string]string{"status": oldStatus.String()},
		map[string]string{
			"status":          cancelledBooking.Status().String(),
			"cancellationFee": fee.String(),
			"reason":          cmd.Reason(),
		},
	)
	if err != nil {
		return err
	}

	if err = uow.AuditRepository().Add(ctx, entry); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.afterCancellation(ctx, cancelledBooking.PaymentRef(), cancelledBooking.Charges().Total(), fee, released)
	return nil
}

// checkActorAccess lets the renting customer cancel their own booking and
// staff accounts cancel any booking. Everyone else is turned away before the
// aggregate changes.
func (h *CancelBookingCommandHandler) checkActorAccess(
	ctx context.Context,
	uow BookingUoW,
	customerID kernel.UUID,
	actorID kernel.UUID,
) error {
	if customerID.IsEqual(actorID) {
		return nil
	}

	actor, err := uow.AccountRepository().Get(ctx, actorID)
	if err != nil {
		return err
	}

	if !actor.Role().IsStaff() {
		return ErrBookingAccessDenied
	}

	return nil
}

// afterCancellation refunds everything the customer is owed: the paid total
// minus the cancellation fee, plus the released deposit. Failures are logged,
// the cancellation itself already committed.
func (h *CancelBookingCommandHandler) afterCancellation(
	ctx context.Context,
	paymentRef string,
	total kernel.Money,
	fee kernel.Money,
	releasedDeposit kernel.Money,
) {
	if paymentRef != "" {
		refund, err := total.Sub(fee)
		if err == nil {
			refund, err = refund.Add(releasedDeposit)
		}

		if err != nil {
			h.logger.Error("refund amount calculation failed", "paymentRef", paymentRef, "error", err)
		} else if !refund.IsZero() {
			if err = h.gateway.Refund(ctx, paymentRef, refund); err != nil {
				h.logger.Error("cancellation refund failed",
					"paymentRef", paymentRef,
					"amount", refund.String(),
					"error", err)
			}
		}
	}

	if err := h.cache.Invalidate(ctx); err != nil {
		h.logger.Error("availability cache invalidation failed", "error", err)
	}
}
