package ports

import (
	"context"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/delivery"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery run aggregates.
// The status log rows of a run are part of the aggregate and travel with it.
type DeliveryRepository interface {
	// Add persists a new delivery run to storage.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery run, appending any new
	// status log rows. Existing log rows are never touched.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery run by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetAllOpen retrieves all runs that have not reached a final stage.
	// Used by the dispatcher to measure driver workload.
	GetAllOpen(ctx context.Context) ([]*delivery.Delivery, error)

	// GetOpenByBooking retrieves the non-final runs of a booking.
	// Used by cancellation to call off pending runs.
	GetOpenByBooking(ctx context.Context, bookingID kernel.UUID) ([]*delivery.Delivery, error)
}

// DriverRepository defines the persistence contract for delivery drivers.
type DriverRepository interface {
	// Add persists a new driver to storage.
	Add(ctx context.Context, aggregate *delivery.Driver) error

	// Update persists changes to an existing driver.
	Update(ctx context.Context, aggregate *delivery.Driver) error

	// Get retrieves a driver by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Driver, error)

	// GetAllActive retrieves all drivers currently taking runs.
	GetAllActive(ctx context.Context) ([]*delivery.Driver, error)
}
