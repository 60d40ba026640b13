package queries

import (
	"errors"
	"time"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/pkg/guard"
)

var (
	ErrGetDepositStatementQueryIsNotConstructed = errors.New(
		"GetDepositStatementQuery must be created via NewGetDepositStatementQuery constructor",
	)
)

// GetDepositStatementQuery retrieves the deposit ledger of a booking: the
// held amount, every release/withhold row, and the running remainder.
type GetDepositStatementQuery struct {
	bookingID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDepositStatementQuery creates a statement query for the booking.
func NewGetDepositStatementQuery(bookingID kernel.UUID) (GetDepositStatementQuery, error) {
	if err := bookingID.Validate(); err != nil {
		return GetDepositStatementQuery{}, err
	}

	return GetDepositStatementQuery{
		bookingID: bookingID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// BookingID returns the booking whose deposit is being read.
func (q GetDepositStatementQuery) BookingID() kernel.UUID {
	return q.bookingID
}

// Validate ensures the query was created through the constructor.
func (q GetDepositStatementQuery) Validate() error {
	return q.guard.Validate(ErrGetDepositStatementQueryIsNotConstructed)
}

// GetDepositStatementQueryResponse is the full deposit statement.
type GetDepositStatementQueryResponse struct {
	DepositID string           `json:"depositId"`
	BookingID string           `json:"bookingId"`
	Held      int64            `json:"held"`
	Remaining int64            `json:"remaining"`
	Currency  string           `json:"currency"`
	Settled   bool             `json:"settled"`
	Entries   []StatementEntry `json:"entries"`
}

// StatementEntry is one ledger row of the statement.
type StatementEntry struct {
	Kind   string    `json:"kind"`
	Amount int64     `json:"amount"`
	Reason string    `json:"reason,omitempty"`
	Actor  string    `json:"actor"`
	At     time.Time `json:"at"`
}
