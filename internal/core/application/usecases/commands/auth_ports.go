package commands

import (
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/account"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
)

// PasswordHasher abstracts the one-way password hashing scheme.
type PasswordHasher interface {
	// Hash turns a raw password into a storable hash.
	Hash(password string) (string, error)

	// Compare reports whether the raw password matches the stored hash.
	// Returns an error on mismatch.
	Compare(hash string, password string) error
}

// TokenIssuer mints the bearer token a successful login hands out.
type TokenIssuer interface {
	Issue(accountID kernel.UUID, role account.Role) (string, error)
}
