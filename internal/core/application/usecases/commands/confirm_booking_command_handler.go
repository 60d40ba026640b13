package commands

import (
	"context"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/audit"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
)

// ConfirmBookingCommandHandler handles the business logic for booking
// confirmation: a concrete unit is reserved for the booking and the change
// lands on the audit trail.
type ConfirmBookingCommandHandler struct {
	uowFactory BookingUoWFactory
}

// NewConfirmBookingCommandHandler creates a handler for booking confirmation operations.
func NewConfirmBookingCommandHandler(uowFactory BookingUoWFactory) ConfirmBookingCommandHandler {
	return ConfirmBookingCommandHandler{uowFactory: uowFactory}
}

// Handle processes the booking confirmation command.
func (h *ConfirmBookingCommandHandler) Handle(ctx context.Context, cmd ConfirmBookingCommand) error {
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

	confirmedBooking, err := uow.BookingRepository().Get(ctx, cmd.BookingID())
	if err != nil {
		return err
	}

	oldStatus := confirmedBooking.Status()

	unit, err := uow.UnitRepository().GetFirstAvailableInCategory(ctx, confirmedBooking.CategoryID())
	if err != nil {
		return err
	}

	if err = unit.Reserve(); err != nil {
		return err
	}

	if err = confirmedBooking.Confirm(unit.ID()); err != nil {
		return err
	}

	if err = uow.UnitRepository().Update(ctx, unit); err != nil {
		return err
	}

	if err = uow.BookingRepository().Update(ctx, confirmedBooking); err != nil {
		return err
	}

	entry, err := audit.NewEntry(
		kernel.NewUUID(),
		cmd.ActorID(),
		"booking.confirm",
		"booking",
		confirmedBooking.ID().String(),
		map[string]string{"status": oldStatus.String()},
		map[string]string{"status": confirmedBooking.Status().String(), "unitId": unit.ID().String()},
	)
	if err != nil {
		return err
	}

	if err = uow.AuditRepository().Add(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
