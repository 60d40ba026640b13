// Package accountrepo provides data transfer objects and mapping functions for
// account persistence. Email uniqueness lives here: the unique index on the
// email column is the system-wide guarantee, and unique violations from the
// driver are mapped to a conflict error.
package accountrepo

import (
	"time"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/account"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AccountDTO represents the database structure for persisting account aggregates.
type AccountDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"uniqueIndex"`
	PasswordHash string
	Name         string
	Role         string `gorm:"type:varchar(16)"`
	Active       bool
	CreatedAt    time.Time
}

// TableName specifies the database table name for account entities.
func (AccountDTO) TableName() string {
	return "accounts"
}

func fromDomain(aggregate *account.Account) AccountDTO {
	return AccountDTO{
		ID:           aggregate.ID().Bytes(),
		Email:        aggregate.Email(),
		PasswordHash: aggregate.PasswordHash(),
		Name:         aggregate.Name(),
		Role:         aggregate.Role().String(),
		Active:       aggregate.IsActive(),
		CreatedAt:    aggregate.CreatedAt(),
	}
}

func toDomain(dto AccountDTO) (*account.Account, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := account.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return account.RestoreAccount(
		id,
		dto.Email,
		dto.PasswordHash,
		dto.Name,
		role,
		dto.Active,
		dto.CreatedAt,
	)
}
