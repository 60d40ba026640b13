package ports

import (
	"context"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/account"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/audit"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
)

// AccountRepository defines the persistence contract for account aggregates.
// Email uniqueness is enforced at this layer; Add returns a conflict error for
// an email that is already taken.
type AccountRepository interface {
	// Add persists a new account aggregate to storage.
	Add(ctx context.Context, aggregate *account.Account) error

	// Update persists changes to an existing account aggregate.
	Update(ctx context.Context, aggregate *account.Account) error

	// Get retrieves an account aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.Account, error)

	// GetByEmail retrieves an account by its lowercased login email.
	GetByEmail(ctx context.Context, email string) (*account.Account, error)
}

// AuditRepository defines the persistence contract for the audit trail.
// The trail is append-only; entries are never updated or removed.
type AuditRepository interface {
	// Add appends an entry to the audit trail.
	Add(ctx context.Context, entry *audit.Entry) error
}
