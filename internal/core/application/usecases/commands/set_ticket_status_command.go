package commands

import (
	"errors"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/ticket"
	"github.com/mapsensemedia/betterrental/internal/pkg/guard"
)

var ErrSetTicketStatusCommandIsNotConstructed = errors.New(
	"SetTicketStatusCommand must be created via NewSetTicketStatusCommand constructor",
)

// SetTicketStatusCommand represents an agent request to move a ticket along
// its lifecycle. The state machine rejects illegal moves.
type SetTicketStatusCommand struct { //nolint:recvcheck //using for validation
	ticketID kernel.UUID
	to       ticket.Status

	guard guard.ConstructorGuard
}

// NewSetTicketStatusCommand creates a command to set a ticket's status.
func NewSetTicketStatusCommand(ticketID kernel.UUID, to ticket.Status) (SetTicketStatusCommand, error) {
	cmd := SetTicketStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTicketID(ticketID),
		cmd.setTo(to),
	); err != nil {
		return SetTicketStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetTicketStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetTicketStatusCommandIsNotConstructed)
}

// TicketID returns the ticket whose status is being set.
func (c SetTicketStatusCommand) TicketID() kernel.UUID { return c.ticketID }

// To returns the requested status.
func (c SetTicketStatusCommand) To() ticket.Status { return c.to }

func (c *SetTicketStatusCommand) setTicketID(ticketID kernel.UUID) error {
	if err := ticketID.Validate(); err != nil {
		return err
	}
	c.ticketID = ticketID
	return nil
}

func (c *SetTicketStatusCommand) setTo(to ticket.Status) error {
	if err := to.Validate(); err != nil {
		return err
	}
	c.to = to
	return nil
}
