package ports

import (
	"context"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/deposit"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
)

// DepositRepository defines the persistence contract for deposit aggregates.
// Ledger entries are part of the aggregate; Update only ever appends rows.
type DepositRepository interface {
	// Add persists a new deposit aggregate to storage.
	Add(ctx context.Context, aggregate *deposit.Deposit) error

	// Update persists changes to an existing deposit, appending any new
	// ledger rows. Existing rows are never touched.
	Update(ctx context.Context, aggregate *deposit.Deposit) error

	// Get retrieves a deposit aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*deposit.Deposit, error)

	// GetByBooking retrieves the deposit securing the given booking.
	GetByBooking(ctx context.Context, bookingID kernel.UUID) (*deposit.Deposit, error)
}
