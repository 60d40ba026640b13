package queries

import (
	"context"

	"github.com/mapsensemedia/betterrental/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDepositStatementQueryHandler reads the deposit ledger of a booking.
type GetDepositStatementQueryHandler struct {
	db *gorm.DB
}

// NewGetDepositStatementQueryHandler creates a handler for deposit statements.
func NewGetDepositStatementQueryHandler(db *gorm.DB) GetDepositStatementQueryHandler {
	return GetDepositStatementQueryHandler{db: db}
}

// Handle returns the statement. Remaining is the held amount minus every
// ledger row, mirroring how the aggregate computes it.
func (h GetDepositStatementQueryHandler) Handle(
	ctx context.Context,
	query GetDepositStatementQuery,
) (GetDepositStatementQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDepositStatementQueryResponse{}, err
	}

	resp, depositID, err := h.loadDeposit(ctx, query)
	if err != nil {
		return GetDepositStatementQueryResponse{}, err
	}

	resp.Entries, err = h.loadEntries(ctx, depositID)
	if err != nil {
		return GetDepositStatementQueryResponse{}, err
	}

	resp.Remaining = resp.Held
	for _, entry := range resp.Entries {
		resp.Remaining -= entry.Amount
	}

	return resp, nil
}

func (h GetDepositStatementQueryHandler) loadDeposit(
	ctx context.Context,
	query GetDepositStatementQuery,
) (GetDepositStatementQueryResponse, uuid.UUID, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, held_amount, held_currency, settled
		FROM deposits
		WHERE booking_id = ?
	`, query.BookingID().Bytes()).Rows()
	if err != nil {
		return GetDepositStatementQueryResponse{}, uuid.UUID{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetDepositStatementQueryResponse{}, uuid.UUID{}, err
		}
		return GetDepositStatementQueryResponse{}, uuid.UUID{},
			errs.NewObjectNotFoundError("deposit for booking", query.BookingID())
	}

	var resp GetDepositStatementQueryResponse
	var id uuid.UUID

	err = rows.Scan(&id, &resp.Held, &resp.Currency, &resp.Settled)
	if err != nil {
		return GetDepositStatementQueryResponse{}, uuid.UUID{}, err
	}

	resp.DepositID = id.String()
	resp.BookingID = query.BookingID().String()

	return resp, id, nil
}

func (h GetDepositStatementQueryHandler) loadEntries(
	ctx context.Context,
	depositID uuid.UUID,
) ([]StatementEntry, error) {
	entries := make([]StatementEntry, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT kind, amount_amount, reason, actor, at
		FROM deposit_entries
		WHERE deposit_id = ?
		ORDER BY seq
	`, depositID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry StatementEntry
		err = rows.Scan(&entry.Kind, &entry.Amount, &entry.Reason, &entry.Actor, &entry.At)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
