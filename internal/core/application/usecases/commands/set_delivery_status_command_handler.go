package commands

import (
	"context"

	"github.com/mapsensemedia/betterrental/internal/core/ports"
)

// SetDeliveryStatusCommandHandler handles the business logic for explicit run
// stage changes from the back-office, including cancellations. Jumping a
// handover run straight to Delivered still activates the booking.
type SetDeliveryStatusCommandHandler struct {
	uowFactory DeliveryUoWFactory
	publisher  ports.DeliveryEventPublisher
}

// NewSetDeliveryStatusCommandHandler creates a handler for run stage override operations.
func NewSetDeliveryStatusCommandHandler(
	uowFactory DeliveryUoWFactory,
	publisher ports.DeliveryEventPublisher,
) SetDeliveryStatusCommandHandler {
	return SetDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the run stage change command.
func (h *SetDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd SetDeliveryStatusCommand) error {
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

	if err = run.TransitionTo(cmd.To(), cmd.ActorName(), cmd.Note()); err != nil {
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
