package commands

import (
	"context"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/ticket"
)

// OpenTicketCommandHandler handles the business logic for opening a support ticket.
type OpenTicketCommandHandler struct {
	uowFactory TicketUoWFactory
}

// NewOpenTicketCommandHandler creates a handler for ticket opening operations.
func NewOpenTicketCommandHandler(uowFactory TicketUoWFactory) OpenTicketCommandHandler {
	return OpenTicketCommandHandler{uowFactory: uowFactory}
}

// Handle processes the ticket opening command.
func (h *OpenTicketCommandHandler) Handle(ctx context.Context, cmd OpenTicketCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newTicket, err := ticket.NewTicket(
		cmd.TicketID(),
		cmd.BookingID(),
		cmd.Contact(),
		cmd.Subject(),
		cmd.Body(),
		cmd.Priority(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.TicketRepository().Add(ctx, newTicket); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
