package queries

import (
	"context"
	"database/sql"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/delivery"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListDeliveriesQueryHandler serves the dispatch board.
type ListDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewListDeliveriesQueryHandler creates a handler for dispatch board queries.
func NewListDeliveriesQueryHandler(db *gorm.DB) ListDeliveriesQueryHandler {
	return ListDeliveriesQueryHandler{db: db}
}

// Handle returns the runs matching the status filter ordered by scheduled
// time. Without a filter only open runs are listed.
func (h ListDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query ListDeliveriesQuery,
) ([]ListDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	where := "WHERE d.status NOT IN (?, ?)"
	args := []any{delivery.Delivered.String(), delivery.Cancelled.String()}
	if query.Status() != "" {
		where = "WHERE d.status = ?"
		args = []any{query.Status()}
	}

	deliveries := make([]ListDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.booking_id,
			d.direction,
			d.scheduled_at,
			d.address,
			d.status,
			dr.name
		FROM deliveries d
		LEFT JOIN drivers dr ON dr.id = d.driver_id
		`+where+`
		ORDER BY d.scheduled_at
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item ListDeliveriesQueryResponse
		var id, bookingID uuid.UUID
		var driverName sql.NullString

		err = rows.Scan(
			&id,
			&bookingID,
			&item.Direction,
			&item.ScheduledAt,
			&item.Address,
			&item.Status,
			&driverName,
		)
		if err != nil {
			return nil, err
		}

		status, statusErr := delivery.StatusFromString(item.Status)
		if statusErr != nil {
			return nil, statusErr
		}

		item.ID = id.String()
		item.BookingID = bookingID.String()
		item.StepIndex = status.StepIndex()
		if driverName.Valid {
			item.DriverName = driverName.String
		}
		deliveries = append(deliveries, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
