package ports

import (
	"context"
	"time"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/cart"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
)

// CartRepository defines the persistence contract for checkout cart aggregates.
type CartRepository interface {
	// Add persists a new cart aggregate to storage.
	Add(ctx context.Context, aggregate *cart.Cart) error

	// Update persists changes to an existing cart aggregate.
	Update(ctx context.Context, aggregate *cart.Cart) error

	// Get retrieves a cart aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*cart.Cart, error)

	// GetAllIdle retrieves carts in the given status whose last activity is
	// older than the cutoff. Used by the abandonment sweeper.
	GetAllIdle(ctx context.Context, status cart.Status, cutoff time.Time) ([]*cart.Cart, error)
}
