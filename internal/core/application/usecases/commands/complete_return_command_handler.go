package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/audit"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/booking"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/deposit"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/core/ports"
)

// CompleteReturnCommandHandler handles the business logic for return
// settlement: damages are recorded and withheld from the deposit, the
// remainder is released, the booking completes and the unit goes back on the
// lot. The deposit refund and the receipt document follow after the commit.
type CompleteReturnCommandHandler struct {
	uowFactory ReturnUoWFactory
	gateway    ports.PaymentGateway
	renderer   ports.DocumentRenderer
	documents  ports.DocumentStore
	cache      ports.AvailabilityCache
	logger     *slog.Logger
}

// NewCompleteReturnCommandHandler creates a handler for return settlement operations.
func NewCompleteReturnCommandHandler(
	uowFactory ReturnUoWFactory,
	gateway ports.PaymentGateway,
	renderer ports.DocumentRenderer,
	documents ports.DocumentStore,
	cache ports.AvailabilityCache,
	logger *slog.Logger,
) CompleteReturnCommandHandler {
	return CompleteReturnCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		renderer:   renderer,
		documents:  documents,
		cache:      cache,
		logger:     logger,
	}
}

// Handle processes the return settlement command.
func (h *CompleteReturnCommandHandler) Handle(ctx context.Context, cmd CompleteReturnCommand) error {
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

	settledBooking, err := uow.BookingRepository().Get(ctx, cmd.BookingID())
	if err != nil {
		return err
	}

	oldStatus := settledBooking.Status()

	bookingDeposit, err := uow.DepositRepository().GetByBooking(ctx, cmd.BookingID())
	if err != nil {
		return err
	}

	if err = h.recordDamages(ctx, uow, cmd, bookingDeposit); err != nil {
		return err
	}

	released := bookingDeposit.Remaining()
	if !released.IsZero() {
		if err = bookingDeposit.Release(released, "deposit released at return", cmd.ActorID().String()); err != nil {
			return err
		}
	}

	if err = bookingDeposit.Settle(); err != nil {
		return err
	}

	if err = uow.DepositRepository().Update(ctx, bookingDeposit); err != nil {
		return err
	}

	if err = settledBooking.Complete(); err != nil {
		return err
	}

	if err = uow.BookingRepository().Update(ctx, settledBooking); err != nil {
		return err
	}

	if unitID := settledBooking.UnitID(); unitID != nil {
		if err = h.releaseUnit(ctx, uow, *unitID, cmd.OdometerKm()); err != nil {
			return err
		}
	}

	entry, err := audit.NewEntry(
		kernel.NewUUID(),
		cmd.ActorID(),
		"booking.complete_return",
		"booking",
		settledBooking.ID().String(),
		map[string]string{"status": oldStatus.String()},
		map[string]string{
			"status":          settledBooking.Status().String(),
			"depositWithheld": bookingDeposit.Withheld().String(),
			"depositReleased": bookingDeposit.Released().String(),
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

	h.afterSettlement(ctx, cmd, settledBooking.PaymentRef(), bookingDeposit, released)
	return nil
}

// recordDamages persists one report per damage and withholds its charge from
// the deposit. A charge above the deposit's remaining balance is capped: the
// ledger never goes negative, the excess is written off.
func (h *CompleteReturnCommandHandler) recordDamages(
	ctx context.Context,
	uow ReturnUoW,
	cmd CompleteReturnCommand,
	bookingDeposit *deposit.Deposit,
) error {
	for _, damage := range cmd.Damages() {
		report, err := booking.NewDamageReport(
			kernel.NewUUID(),
			cmd.BookingID(),
			damage.Description,
			damage.Severity,
			damage.Charge,
			damage.PhotoKeys,
		)
		if err != nil {
			return err
		}

		if err = uow.DamageReportRepository().Add(ctx, report); err != nil {
			return err
		}

		withheld := damage.Charge
		remaining := bookingDeposit.Remaining()
		if remaining.IsZero() {
			continue
		}
		if withheld.Amount() > remaining.Amount() {
			withheld = remaining
		}

		if err = bookingDeposit.Withhold(withheld, damage.Description, cmd.ActorID().String()); err != nil {
			return err
		}
	}

	return nil
}

func (h *CompleteReturnCommandHandler) releaseUnit(
	ctx context.Context,
	uow ReturnUoW,
	unitID kernel.UUID,
	odometerKm int,
) error {
	unit, err := uow.UnitRepository().Get(ctx, unitID)
	if err != nil {
		return err
	}

	if err = unit.RecordOdometer(odometerKm); err != nil {
		return err
	}

	if err = unit.Release(); err != nil {
		return err
	}

	return uow.UnitRepository().Update(ctx, unit)
}

// afterSettlement refunds the released deposit and stores the receipt
// document. Failures are logged, the settlement itself already committed.
func (h *CompleteReturnCommandHandler) afterSettlement(
	ctx context.Context,
	cmd CompleteReturnCommand,
	paymentRef string,
	bookingDeposit *deposit.Deposit,
	released kernel.Money,
) {
	if paymentRef != "" && !released.IsZero() {
		if err := h.gateway.Refund(ctx, paymentRef, released); err != nil {
			h.logger.Error("deposit refund failed",
				"paymentRef", paymentRef,
				"amount", released.String(),
				"error", err)
		}
	}

	receipt, err := h.renderer.RenderDepositReceipt(ports.ReceiptData{
		BookingID:    cmd.BookingID(),
		CustomerName: cmd.CustomerName(),
		Held:         bookingDeposit.Held(),
		Entries:      bookingDeposit.Entries(),
		IssuedAt:     time.Now().UTC(),
	})
	if err != nil {
		h.logger.Error("deposit receipt rendering failed", "bookingId", cmd.BookingID().String(), "error", err)
	} else {
		key := fmt.Sprintf("receipts/%s.pdf", cmd.BookingID())
		if err = h.documents.Put(ctx, key, receipt, "application/pdf"); err != nil {
			h.logger.Error("deposit receipt upload failed", "key", key, "error", err)
		}
	}

	if err = h.cache.Invalidate(ctx); err != nil {
		h.logger.Error("availability cache invalidation failed", "error", err)
	}
}
