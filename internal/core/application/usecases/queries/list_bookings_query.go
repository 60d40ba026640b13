package queries

import (
	"errors"
	"time"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/booking"
	"github.com/mapsensemedia/betterrental/internal/pkg/guard"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

var (
	ErrListBookingsQueryIsNotConstructed = errors.New(
		"ListBookingsQuery must be created via NewListBookingsQuery constructor",
	)
)

// ListBookingsQuery is the back-office booking list. Status and period
// filters are optional; results are paginated newest first.
type ListBookingsQuery struct {
	status   string
	from     time.Time
	to       time.Time
	page     int
	pageSize int

	guard guard.ConstructorGuard
}

// NewListBookingsQuery creates a booking list query. An empty status means no
// status filter; zero from/to times mean no period filter. Page is 1-based.
func NewListBookingsQuery(status string, from, to time.Time, page, pageSize int) (ListBookingsQuery, error) {
	if status != "" {
		if _, err := booking.StatusFromString(status); err != nil {
			return ListBookingsQuery{}, err
		}
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	return ListBookingsQuery{
		status:   status,
		from:     from,
		to:       to,
		page:     page,
		pageSize: pageSize,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Status returns the status filter, empty when unset.
func (q ListBookingsQuery) Status() string {
	return q.status
}

// From returns the period filter lower bound, zero when unset.
func (q ListBookingsQuery) From() time.Time {
	return q.from
}

// To returns the period filter upper bound, zero when unset.
func (q ListBookingsQuery) To() time.Time {
	return q.to
}

// Page returns the 1-based page number.
func (q ListBookingsQuery) Page() int {
	return q.page
}

// PageSize returns the page size.
func (q ListBookingsQuery) PageSize() int {
	return q.pageSize
}

// Validate ensures the query was created through the constructor.
func (q ListBookingsQuery) Validate() error {
	return q.guard.Validate(ErrListBookingsQueryIsNotConstructed)
}

// ListBookingsQueryResponse is one page of the booking list.
type ListBookingsQueryResponse struct {
	Bookings []BookingListItem `json:"bookings"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"pageSize"`
}

// BookingListItem is a booking row in the back-office list.
type BookingListItem struct {
	ID           string    `json:"id"`
	CategoryName string    `json:"categoryName"`
	UnitPlate    string    `json:"unitPlate,omitempty"`
	PeriodStart  time.Time `json:"periodStart"`
	PeriodEnd    time.Time `json:"periodEnd"`
	Total        int64     `json:"total"`
	Currency     string    `json:"currency"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}
