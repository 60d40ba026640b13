package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/audit"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/delivery"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/pkg/errs"
)

// ErrReturnRunAlreadyScheduled indicates the booking already has an open
// return run, a second one would double-dispatch the pickup.
var ErrReturnRunAlreadyScheduled = errors.New("booking already has an open return run")

// ScheduleReturnDeliveryCommandHandler handles the business logic for
// scheduling the return pickup of a booked vehicle.
type ScheduleReturnDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewScheduleReturnDeliveryCommandHandler creates a handler for return scheduling operations.
func NewScheduleReturnDeliveryCommandHandler(uowFactory DeliveryUoWFactory) ScheduleReturnDeliveryCommandHandler {
	return ScheduleReturnDeliveryCommandHandler{uowFactory: uowFactory}
}

// Handle processes the return scheduling command.
func (h *ScheduleReturnDeliveryCommandHandler) Handle(ctx context.Context, cmd ScheduleReturnDeliveryCommand) error {
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

	returnedBooking, err := uow.BookingRepository().Get(ctx, cmd.BookingID())
	if err != nil {
		return err
	}

	if returnedBooking.Status().IsFinal() {
		return errs.NewValueIsInvalidErrorWithCause("booking is not returnable",
			fmt.Errorf("booking %s is already %s", returnedBooking.ID(), returnedBooking.Status()))
	}

	openRuns, err := uow.DeliveryRepository().GetOpenByBooking(ctx, cmd.BookingID())
	if err != nil {
		return err
	}

	for _, run := range openRuns {
		if run.Direction() == delivery.DirectionReturn {
			return ErrReturnRunAlreadyScheduled
		}
	}

	returnRun, err := delivery.NewDelivery(
		cmd.DeliveryID(),
		cmd.BookingID(),
		delivery.DirectionReturn,
		cmd.ScheduledAt(),
		returnedBooking.ReturnAddress(),
	)
	if err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Add(ctx, returnRun); err != nil {
		return err
	}

	entry, err := audit.NewEntry(
		kernel.NewUUID(),
		cmd.ActorID(),
		"delivery.schedule_return",
		"delivery",
		returnRun.ID().String(),
		nil,
		map[string]string{
			"bookingId":   cmd.BookingID().String(),
			"scheduledAt": cmd.ScheduledAt().UTC().Format(time.RFC3339),
		},
	)
	if err != nil {
		return err
	}

	if err = uow.AuditRepository().Add(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
