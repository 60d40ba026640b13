package ports

import (
	"context"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/ticket"
)

// TicketRepository defines the persistence contract for support ticket aggregates.
// The comment thread of a ticket is part of the aggregate and travels with it.
type TicketRepository interface {
	// Add persists a new ticket aggregate to storage.
	Add(ctx context.Context, aggregate *ticket.Ticket) error

	// Update persists changes to an existing ticket, appending any new
	// comments. Existing comments are never touched.
	Update(ctx context.Context, aggregate *ticket.Ticket) error

	// Get retrieves a ticket aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*ticket.Ticket, error)
}
