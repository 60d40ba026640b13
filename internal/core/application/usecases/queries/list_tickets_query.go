package queries

import (
	"errors"
	"time"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/ticket"
	"github.com/mapsensemedia/betterrental/internal/pkg/guard"
)

var (
	ErrListTicketsQueryIsNotConstructed = errors.New(
		"ListTicketsQuery must be created via NewListTicketsQuery constructor",
	)
)

// ListTicketsQuery lists support tickets for the back office, optionally
// filtered by status.
type ListTicketsQuery struct {
	status string

	guard guard.ConstructorGuard
}

// NewListTicketsQuery creates a ticket list query. Status is optional.
func NewListTicketsQuery(status string) (ListTicketsQuery, error) {
	if status != "" {
		if _, err := ticket.StatusFromString(status); err != nil {
			return ListTicketsQuery{}, err
		}
	}

	return ListTicketsQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Status returns the status filter, empty when unset.
func (q ListTicketsQuery) Status() string {
	return q.status
}

// Validate ensures the query was created through the constructor.
func (q ListTicketsQuery) Validate() error {
	return q.guard.Validate(ErrListTicketsQueryIsNotConstructed)
}

// ListTicketsQueryResponse is one ticket row in the back-office list.
type ListTicketsQueryResponse struct {
	ID        string    `json:"id"`
	BookingID string    `json:"bookingId,omitempty"`
	Contact   string    `json:"contact"`
	Subject   string    `json:"subject"`
	Priority  string    `json:"priority"`
	Assignee  string    `json:"assignee,omitempty"`
	Status    string    `json:"status"`
	Comments  int       `json:"comments"`
	CreatedAt time.Time `json:"createdAt"`
}
