package queries

import (
	"errors"
	"time"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/pkg/guard"
)

var (
	ErrGetTicketQueryIsNotConstructed = errors.New(
		"GetTicketQuery must be created via NewGetTicketQuery constructor",
	)
)

// GetTicketQuery retrieves one support ticket with its comment thread.
type GetTicketQuery struct {
	ticketID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetTicketQuery creates a query for the given ticket.
func NewGetTicketQuery(ticketID kernel.UUID) (GetTicketQuery, error) {
	if err := ticketID.Validate(); err != nil {
		return GetTicketQuery{}, err
	}

	return GetTicketQuery{
		ticketID: ticketID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// TicketID returns the ticket being retrieved.
func (q GetTicketQuery) TicketID() kernel.UUID {
	return q.ticketID
}

// Validate ensures the query was created through the constructor.
func (q GetTicketQuery) Validate() error {
	return q.guard.Validate(ErrGetTicketQueryIsNotConstructed)
}

// GetTicketQueryResponse is the ticket detail with the full thread.
type GetTicketQueryResponse struct {
	ID        string          `json:"id"`
	BookingID string          `json:"bookingId,omitempty"`
	Contact   string          `json:"contact"`
	Subject   string          `json:"subject"`
	Body      string          `json:"body"`
	Priority  string          `json:"priority"`
	Assignee  string          `json:"assignee,omitempty"`
	Status    string          `json:"status"`
	Comments  []TicketComment `json:"comments"`
	CreatedAt time.Time       `json:"createdAt"`
}

// TicketComment is one reply in the ticket thread.
type TicketComment struct {
	Author string    `json:"author"`
	Body   string    `json:"body"`
	At     time.Time `json:"at"`
}
