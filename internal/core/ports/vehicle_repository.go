package ports

import (
	"context"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/vehicle"
)

// CategoryRepository defines the persistence contract for vehicle category aggregates.
type CategoryRepository interface {
	// Add persists a new category aggregate to storage.
	Add(ctx context.Context, aggregate *vehicle.Category) error

	// Update persists changes to an existing category aggregate.
	Update(ctx context.Context, aggregate *vehicle.Category) error

	// Get retrieves a category aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*vehicle.Category, error)

	// GetAllActive retrieves all categories customers can currently book.
	GetAllActive(ctx context.Context) ([]*vehicle.Category, error)
}

// UnitRepository defines the persistence contract for vehicle unit aggregates.
type UnitRepository interface {
	// Add persists a new unit aggregate to storage.
	Add(ctx context.Context, aggregate *vehicle.Unit) error

	// Update persists changes to an existing unit aggregate.
	Update(ctx context.Context, aggregate *vehicle.Unit) error

	// Get retrieves a unit aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*vehicle.Unit, error)

	// GetFirstAvailableInCategory retrieves one Available unit of the category.
	// Used by booking confirmation to reserve a concrete vehicle.
	GetFirstAvailableInCategory(ctx context.Context, categoryID kernel.UUID) (*vehicle.Unit, error)

	// CountAvailableInCategory counts the Available units of the category.
	CountAvailableInCategory(ctx context.Context, categoryID kernel.UUID) (int, error)
}
