// Package queries contains the read side of the application: parameter
// structs validated through constructor guards and handlers running raw SQL
// over the GORM connection. Queries never load aggregates and never mutate
// state.
package queries

import (
	"errors"
	"time"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/pkg/guard"
)

var (
	ErrSearchAvailabilityQueryIsNotConstructed = errors.New(
		"SearchAvailabilityQuery must be created via NewSearchAvailabilityQuery constructor",
	)
)

// SearchAvailabilityQuery finds vehicle categories that still have a free
// unit for the requested rental period.
type SearchAvailabilityQuery struct {
	period kernel.RentalPeriod

	guard guard.ConstructorGuard
}

// NewSearchAvailabilityQuery creates an availability search for the given
// rental period.
func NewSearchAvailabilityQuery(start time.Time, end time.Time) (SearchAvailabilityQuery, error) {
	period, err := kernel.NewRentalPeriod(start, end)
	if err != nil {
		return SearchAvailabilityQuery{}, err
	}

	return SearchAvailabilityQuery{
		period: period,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Period returns the requested rental period.
func (q SearchAvailabilityQuery) Period() kernel.RentalPeriod {
	return q.period
}

// Validate ensures the query was created through the constructor.
func (q SearchAvailabilityQuery) Validate() error {
	return q.guard.Validate(ErrSearchAvailabilityQueryIsNotConstructed)
}

// SearchAvailabilityQueryResponse is one rentable category with pricing and
// the number of units still free for the period.
type SearchAvailabilityQueryResponse struct {
	CategoryID   string `json:"categoryId"`
	Name         string `json:"name"`
	Class        string `json:"class"`
	Seats        int    `json:"seats"`
	Transmission string `json:"transmission"`
	DailyRate    int64  `json:"dailyRate"`
	DeliveryFee  int64  `json:"deliveryFee"`
	Deposit      int64  `json:"deposit"`
	Currency     string `json:"currency"`
	FreeUnits    int    `json:"freeUnits"`
}
