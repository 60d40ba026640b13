package queries

import (
	"errors"
	"time"

	"github.com/mapsensemedia/betterrental/internal/pkg/errs"
	"github.com/mapsensemedia/betterrental/internal/pkg/guard"
)

var (
	ErrGetCalendarQueryIsNotConstructed = errors.New(
		"GetCalendarQuery must be created via NewGetCalendarQuery constructor",
	)
)

// GetCalendarQuery builds the back-office occupancy calendar: every booking
// overlapping the date range, grouped per day.
type GetCalendarQuery struct {
	from time.Time
	to   time.Time

	guard guard.ConstructorGuard
}

// NewGetCalendarQuery creates a calendar query for the given date range.
func NewGetCalendarQuery(from time.Time, to time.Time) (GetCalendarQuery, error) {
	if from.IsZero() {
		return GetCalendarQuery{}, errs.NewValueIsRequiredError("from")
	}
	if !to.After(from) {
		return GetCalendarQuery{}, errs.NewValueIsInvalidError("to")
	}

	return GetCalendarQuery{
		from:  from.UTC(),
		to:    to.UTC(),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// From returns the range start.
func (q GetCalendarQuery) From() time.Time {
	return q.from
}

// To returns the range end.
func (q GetCalendarQuery) To() time.Time {
	return q.to
}

// Validate ensures the query was created through the constructor.
func (q GetCalendarQuery) Validate() error {
	return q.guard.Validate(ErrGetCalendarQueryIsNotConstructed)
}

// GetCalendarQueryResponse is one calendar day with the bookings occupying it.
// Days without bookings are omitted.
type GetCalendarQueryResponse struct {
	Date     time.Time         `json:"date"`
	Bookings []CalendarBooking `json:"bookings"`
}

// CalendarBooking is one booking bar on the calendar.
type CalendarBooking struct {
	BookingID    string    `json:"bookingId"`
	CategoryName string    `json:"categoryName"`
	UnitPlate    string    `json:"unitPlate,omitempty"`
	PeriodStart  time.Time `json:"periodStart"`
	PeriodEnd    time.Time `json:"periodEnd"`
	Status       string    `json:"status"`
}
