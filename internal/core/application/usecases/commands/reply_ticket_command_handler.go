package commands

import (
	"context"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/ticket"
)

// ReplyTicketCommandHandler handles the business logic for agent replies.
// The first reply on an Open ticket assigns it and moves it to InProgress.
type ReplyTicketCommandHandler struct {
	uowFactory TicketUoWFactory
}

// NewReplyTicketCommandHandler creates a handler for ticket reply operations.
func NewReplyTicketCommandHandler(uowFactory TicketUoWFactory) ReplyTicketCommandHandler {
	return ReplyTicketCommandHandler{uowFactory: uowFactory}
}

// Handle processes the ticket reply command.
func (h *ReplyTicketCommandHandler) Handle(ctx context.Context, cmd ReplyTicketCommand) error {
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

	repliedTicket, err := uow.TicketRepository().Get(ctx, cmd.TicketID())
	if err != nil {
		return err
	}

	if repliedTicket.Status() == ticket.Open {
		if err = repliedTicket.Assign(cmd.Author()); err != nil {
			return err
		}
	}

	if err = repliedTicket.Reply(cmd.Author(), cmd.Body()); err != nil {
		return err
	}

	if err = uow.TicketRepository().Update(ctx, repliedTicket); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
