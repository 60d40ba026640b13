package commands

import (
	"errors"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/ticket"
	"github.com/mapsensemedia/betterrental/internal/pkg/guard"
)

var ErrOpenTicketCommandIsNotConstructed = errors.New(
	"OpenTicketCommand must be created via NewOpenTicketCommand constructor",
)

// OpenTicketCommand represents a customer request to open a support ticket,
// optionally tied to a booking.
type OpenTicketCommand struct { //nolint:recvcheck //using for validation
	ticketID  kernel.UUID
	bookingID *kernel.UUID
	contact   string
	subject   string
	body      string
	priority  ticket.Priority

	guard guard.ConstructorGuard
}

// NewOpenTicketCommand creates a command to open a support ticket.
// Subject, body and contact are validated by the aggregate.
func NewOpenTicketCommand(
	ticketID kernel.UUID,
	bookingID *kernel.UUID,
	contact string,
	subject string,
	body string,
	priority ticket.Priority,
) (OpenTicketCommand, error) {
	cmd := OpenTicketCommand{
		contact:  contact,
		subject:  subject,
		body:     body,
		priority: priority,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTicketID(ticketID),
		cmd.setBookingID(bookingID),
	); err != nil {
		return OpenTicketCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c OpenTicketCommand) Validate() error {
	return c.guard.Validate(ErrOpenTicketCommandIsNotConstructed)
}

// TicketID returns the identifier minted for the new ticket.
func (c OpenTicketCommand) TicketID() kernel.UUID { return c.ticketID }

// BookingID returns the related booking, nil for general requests.
func (c OpenTicketCommand) BookingID() *kernel.UUID { return c.bookingID }

// Contact returns the email or phone the customer wants answers on.
func (c OpenTicketCommand) Contact() string { return c.contact }

// Subject returns the short summary line.
func (c OpenTicketCommand) Subject() string { return c.subject }

// Body returns the original message.
func (c OpenTicketCommand) Body() string { return c.body }

// Priority returns the urgency ranking.
func (c OpenTicketCommand) Priority() ticket.Priority { return c.priority }

func (c *OpenTicketCommand) setTicketID(ticketID kernel.UUID) error {
	if err := ticketID.Validate(); err != nil {
		return err
	}
	c.ticketID = ticketID
	return nil
}

func (c *OpenTicketCommand) setBookingID(bookingID *kernel.UUID) error {
	if bookingID == nil {
		return nil
	}
	if err := bookingID.Validate(); err != nil {
		return err
	}
	c.bookingID = bookingID
	return nil
}
