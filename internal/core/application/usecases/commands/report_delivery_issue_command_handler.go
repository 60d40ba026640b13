package commands

import (
	"context"

	"github.com/mapsensemedia/betterrental/internal/core/ports"
)

// ReportDeliveryIssueCommandHandler handles the business logic for flagging a
// problem on a run. The run lands in the Issue state until the back-office
// resolves it with an explicit stage change.
type ReportDeliveryIssueCommandHandler struct {
	uowFactory DeliveryUoWFactory
	publisher  ports.DeliveryEventPublisher
}

// NewReportDeliveryIssueCommandHandler creates a handler for run issue operations.
func NewReportDeliveryIssueCommandHandler(
	uowFactory DeliveryUoWFactory,
	publisher ports.DeliveryEventPublisher,
) ReportDeliveryIssueCommandHandler {
	return ReportDeliveryIssueCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the run issue command.
func (h *ReportDeliveryIssueCommandHandler) Handle(ctx context.Context, cmd ReportDeliveryIssueCommand) error {
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

	if err = run.ReportIssue(cmd.ActorName(), cmd.Note()); err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Update(ctx, run); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.publisher.PublishStatusChanged(deliveryEventFor(run, cmd.ActorName()))
	return nil
}
