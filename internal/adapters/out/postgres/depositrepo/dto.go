// Package depositrepo provides data transfer objects and mapping functions for
// security deposit persistence. The ledger rows are part of the deposit
// aggregate: they are loaded with it and appended with it, never rewritten.
package depositrepo

import (
	"time"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/deposit"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// MoneyDTO represents an embedded money column pair: minor units plus the
// ISO currency code.
type MoneyDTO struct {
	Amount   int64
	Currency string `gorm:"type:varchar(3)"`
}

func moneyToDTO(m kernel.Money) MoneyDTO {
	return MoneyDTO{Amount: m.Amount(), Currency: m.Currency()}
}

func (d MoneyDTO) toDomain() (kernel.Money, error) {
	return kernel.NewMoney(d.Amount, d.Currency)
}

// DepositDTO represents the database structure for persisting deposit
// aggregates. Each booking holds at most one deposit.
type DepositDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	BookingID uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Held      MoneyDTO  `gorm:"embedded;embeddedPrefix:held_"`
	Settled   bool
}

// TableName specifies the database table name for deposit entities.
func (DepositDTO) TableName() string {
	return "deposits"
}

// EntryDTO represents one append-only deposit ledger row. Rows are keyed by
// their position in the ledger, which also fixes the replay order.
type EntryDTO struct {
	DepositID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq       int       `gorm:"primaryKey"`
	Kind      string    `gorm:"type:varchar(16)"`
	Amount    MoneyDTO  `gorm:"embedded;embeddedPrefix:amount_"`
	Reason    string
	Actor     string
	At        time.Time
}

// TableName specifies the database table name for deposit ledger rows.
func (EntryDTO) TableName() string {
	return "deposit_entries"
}

func fromDomain(aggregate *deposit.Deposit) DepositDTO {
	return DepositDTO{
		ID:        aggregate.ID().Bytes(),
		BookingID: aggregate.BookingID().Bytes(),
		Held:      moneyToDTO(aggregate.Held()),
		Settled:   aggregate.IsSettled(),
	}
}

func entriesFromDomain(aggregate *deposit.Deposit, from int) []EntryDTO {
	entries := aggregate.Entries()
	dtos := make([]EntryDTO, 0, len(entries)-from)
	for seq := from; seq < len(entries); seq++ {
		entry := entries[seq]
		dtos = append(dtos, EntryDTO{
			DepositID: aggregate.ID().Bytes(),
			Seq:       seq,
			Kind:      entry.Kind().String(),
			Amount:    moneyToDTO(entry.Amount()),
			Reason:    entry.Reason(),
			Actor:     entry.Actor(),
			At:        entry.At(),
		})
	}
	return dtos
}

func toDomain(dto DepositDTO, entryDTOs []EntryDTO) (*deposit.Deposit, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	bookingID, err := kernel.UUIDFromBytes(dto.BookingID[:])
	if err != nil {
		return nil, err
	}

	held, err := dto.Held.toDomain()
	if err != nil {
		return nil, err
	}

	entries := make([]deposit.Entry, 0, len(entryDTOs))
	for _, row := range entryDTOs {
		kind, rowErr := deposit.EntryKindFromString(row.Kind)
		if rowErr != nil {
			return nil, rowErr
		}

		amount, rowErr := row.Amount.toDomain()
		if rowErr != nil {
			return nil, rowErr
		}

		entry, rowErr := deposit.RestoreEntry(kind, amount, row.Reason, row.Actor, row.At)
		if rowErr != nil {
			return nil, rowErr
		}
		entries = append(entries, entry)
	}

	return deposit.RestoreDeposit(id, bookingID, held, entries, dto.Settled)
}
