package commands

import (
	"errors"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/pkg/errs"
	"github.com/mapsensemedia/betterrental/internal/pkg/guard"
)

var ErrReplyTicketCommandIsNotConstructed = errors.New(
	"ReplyTicketCommand must be created via NewReplyTicketCommand constructor",
)

// ReplyTicketCommand represents an agent reply on a support ticket. Replying
// to an Open ticket also assigns it to the replying agent.
type ReplyTicketCommand struct { //nolint:recvcheck //using for validation
	ticketID kernel.UUID
	author   string
	body     string

	guard guard.ConstructorGuard
}

// NewReplyTicketCommand creates a command to reply on a ticket.
func NewReplyTicketCommand(ticketID kernel.UUID, author string, body string) (ReplyTicketCommand, error) {
	cmd := ReplyTicketCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTicketID(ticketID),
		cmd.setAuthor(author),
		cmd.setBody(body),
	); err != nil {
		return ReplyTicketCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReplyTicketCommand) Validate() error {
	return c.guard.Validate(ErrReplyTicketCommandIsNotConstructed)
}

// TicketID returns the ticket being replied to.
func (c ReplyTicketCommand) TicketID() kernel.UUID { return c.ticketID }

// Author returns the replying agent's display name.
func (c ReplyTicketCommand) Author() string { return c.author }

// Body returns the reply text.
func (c ReplyTicketCommand) Body() string { return c.body }

func (c *ReplyTicketCommand) setTicketID(ticketID kernel.UUID) error {
	if err := ticketID.Validate(); err != nil {
		return err
	}
	c.ticketID = ticketID
	return nil
}

func (c *ReplyTicketCommand) setAuthor(author string) error {
	if author == "" {
		return errs.NewValueIsRequiredError("author")
	}
	c.author = author
	return nil
}

func (c *ReplyTicketCommand) setBody(body string) error {
	if body == "" {
		return errs.NewValueIsRequiredError("body")
	}
	c.body = body
	return nil
}
