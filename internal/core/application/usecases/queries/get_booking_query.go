package queries

import (
	"errors"
	"time"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/pkg/guard"
)

var (
	ErrGetBookingQueryIsNotConstructed = errors.New(
		"GetBookingQuery must be created via NewGetBookingQuery constructor",
	)
)

// GetBookingQuery retrieves a single booking with its financial snapshot,
// category name and assigned unit plate.
type GetBookingQuery struct {
	bookingID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetBookingQuery creates a query for the given booking.
func NewGetBookingQuery(bookingID kernel.UUID) (GetBookingQuery, error) {
	if err := bookingID.Validate(); err != nil {
		return GetBookingQuery{}, err
	}

	return GetBookingQuery{
		bookingID: bookingID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// BookingID returns the booking being retrieved.
func (q GetBookingQuery) BookingID() kernel.UUID {
	return q.bookingID
}

// Validate ensures the query was created through the constructor.
func (q GetBookingQuery) Validate() error {
	return q.guard.Validate(ErrGetBookingQueryIsNotConstructed)
}

// GetBookingQueryResponse is the booking detail view. CancellationFee is nil
// unless the booking was cancelled with a fee.
type GetBookingQueryResponse struct {
	ID              string         `json:"id"`
	CustomerID      string         `json:"customerId"`
	CategoryID      string         `json:"categoryId"`
	CategoryName    string         `json:"categoryName"`
	UnitID          string         `json:"unitId,omitempty"`
	UnitPlate       string         `json:"unitPlate,omitempty"`
	PeriodStart     time.Time      `json:"periodStart"`
	PeriodEnd       time.Time      `json:"periodEnd"`
	PickupAddress   string         `json:"pickupAddress"`
	ReturnAddress   string         `json:"returnAddress"`
	Charges         QuoteBreakdown `json:"charges"`
	CancellationFee *int64         `json:"cancellationFee,omitempty"`
	Status          string         `json:"status"`
	CreatedAt       time.Time      `json:"createdAt"`
}
