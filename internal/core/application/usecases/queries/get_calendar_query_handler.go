package queries

import (
	"context"
	"database/sql"
	"sort"
	"time"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/booking"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCalendarQueryHandler serves the occupancy calendar. It fetches the
// overlapping bookings once and spreads each across the days it covers.
type GetCalendarQueryHandler struct {
	db *gorm.DB
}

// NewGetCalendarQueryHandler creates a handler for calendar queries.
func NewGetCalendarQueryHandler(db *gorm.DB) GetCalendarQueryHandler {
	return GetCalendarQueryHandler{db: db}
}

// Handle returns the days in the range that have bookings, in ascending
// order. Cancelled bookings do not occupy calendar days.
func (h GetCalendarQueryHandler) Handle(
	ctx context.Context,
	query GetCalendarQuery,
) ([]GetCalendarQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			b.id,
			c.name,
			u.plate,
			b.period_start,
			b.period_end,
			b.status
		FROM bookings b
		JOIN categories c ON c.id = b.category_id
		LEFT JOIN units u ON u.id = b.unit_id
		WHERE b.status != ?
		AND b.period_start < ?
		AND b.period_end > ?
		ORDER BY b.period_start
	`, booking.Cancelled.String(), query.To(), query.From()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	days := make(map[time.Time][]CalendarBooking)
	for rows.Next() {
		var item CalendarBooking
		var id uuid.UUID
		var plate sql.NullString

		err = rows.Scan(
			&id,
			&item.CategoryName,
			&plate,
			&item.PeriodStart,
			&item.PeriodEnd,
			&item.Status,
		)
		if err != nil {
			return nil, err
		}

		item.BookingID = id.String()
		if plate.Valid {
			item.UnitPlate = plate.String
		}

		for _, day := range h.daysCovered(item, query.From(), query.To()) {
			days[day] = append(days[day], item)
		}
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	calendar := make([]GetCalendarQueryResponse, 0, len(days))
	for day, dayBookings := range days {
		calendar = append(calendar, GetCalendarQueryResponse{Date: day, Bookings: dayBookings})
	}
	sort.Slice(calendar, func(i, j int) bool {
		return calendar[i].Date.Before(calendar[j].Date)
	})

	return calendar, nil
}

// daysCovered returns the UTC midnights within [from, to) that the booking
// period touches.
func (h GetCalendarQueryHandler) daysCovered(
	item CalendarBooking,
	from time.Time,
	to time.Time,
) []time.Time {
	start := item.PeriodStart.UTC()
	if start.Before(from) {
		start = from
	}
	end := item.PeriodEnd.UTC()
	if end.After(to) {
		end = to
	}

	days := make([]time.Time, 0)
	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	for day.Before(end) {
		if !day.Before(from.Truncate(24 * time.Hour)) {
			days = append(days, day)
		}
		day = day.AddDate(0, 0, 1)
	}

	return days
}
