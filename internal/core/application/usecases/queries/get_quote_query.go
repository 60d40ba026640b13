package queries

import (
	"errors"
	"time"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/pkg/guard"
)

var (
	ErrGetQuoteQueryIsNotConstructed = errors.New(
		"GetQuoteQuery must be created via NewGetQuoteQuery constructor",
	)
)

// GetQuoteQuery prices a category for a rental period without creating
// anything. The same pricing service runs again at checkout, so the quote the
// customer sees is the quote they pay.
type GetQuoteQuery struct {
	categoryID kernel.UUID
	period     kernel.RentalPeriod

	guard guard.ConstructorGuard
}

// NewGetQuoteQuery creates a pricing request for a category and period.
func NewGetQuoteQuery(categoryID kernel.UUID, start time.Time, end time.Time) (GetQuoteQuery, error) {
	if err := categoryID.Validate(); err != nil {
		return GetQuoteQuery{}, err
	}

	period, err := kernel.NewRentalPeriod(start, end)
	if err != nil {
		return GetQuoteQuery{}, err
	}

	return GetQuoteQuery{
		categoryID: categoryID,
		period:     period,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// CategoryID returns the category being priced.
func (q GetQuoteQuery) CategoryID() kernel.UUID {
	return q.categoryID
}

// Period returns the rental period being priced.
func (q GetQuoteQuery) Period() kernel.RentalPeriod {
	return q.period
}

// Validate ensures the query was created through the constructor.
func (q GetQuoteQuery) Validate() error {
	return q.guard.Validate(ErrGetQuoteQueryIsNotConstructed)
}

// GetQuoteQueryResponse is the priced breakdown for the requested period.
// All amounts are minor units in the category's currency.
type GetQuoteQueryResponse struct {
	CategoryID  string `json:"categoryId"`
	Days        int    `json:"days"`
	Subtotal    int64  `json:"subtotal"`
	Discount    int64  `json:"discount"`
	DeliveryFee int64  `json:"deliveryFee"`
	Total       int64  `json:"total"`
	Deposit     int64  `json:"deposit"`
	Currency    string `json:"currency"`
}
