package commands

import (
	"context"
)

// SetTicketStatusCommandHandler handles the business logic for ticket
// lifecycle changes.
type SetTicketStatusCommandHandler struct {
	uowFactory TicketUoWFactory
}

// NewSetTicketStatusCommandHandler creates a handler for ticket status operations.
func NewSetTicketStatusCommandHandler(uowFactory TicketUoWFactory) SetTicketStatusCommandHandler {
	return SetTicketStatusCommandHandler{uowFactory: uowFactory}
}

// Handle processes the ticket status change command.
func (h *SetTicketStatusCommandHandler) Handle(ctx context.Context, cmd SetTicketStatusCommand) error {
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

	changedTicket, err := uow.TicketRepository().Get(ctx, cmd.TicketID())
	if err != nil {
		return err
	}

	if err = changedTicket.TransitionTo(cmd.To()); err != nil {
		return err
	}

	if err = uow.TicketRepository().Update(ctx, changedTicket); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
