package commands

import (
	"context"

	"github.com/mapsensemedia/betterrental/internal/core/ports"
)

// AdvanceDeliveryCommandHandler handles the business logic for stepping a run
// forward. Reaching Delivered on a handover run activates the booking in the
// same transaction; the back-office gets the change pushed after the commit.
type AdvanceDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	publisher  ports.DeliveryEventPublisher
}

// NewAdvanceDeliveryCommandHandler creates a handler for run advancement operations.
func NewAdvanceDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	publisher ports.DeliveryEventPublisher,
) AdvanceDeliveryCommandHandler {
	return AdvanceDeliveryCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the run advancement command.
func (h *AdvanceDeliveryCommandHandler) Handle(ctx context.Context, cmd AdvanceDeliveryCommand) error {
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

	run, err := uow.DeliveryRepository().Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	if err = run.Advance(cmd.ActorName(), cmd.Note()); err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Update(ctx, run); err != nil {
		return err
	}

	if err = applyDeliveredSideEffects(ctx, uow, run, cmd.ActorID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.PublishStatusChanged(deliveryEventFor(run, cmd.ActorName()))
	return nil
}
