package queries

import (
	"context"
	"database/sql"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/delivery"
	"github.com/mapsensemedia/betterrental/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeliveryQueryHandler retrieves the run detail for the progress view.
type GetDeliveryQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryQueryHandler creates a handler for delivery detail queries.
func NewGetDeliveryQueryHandler(db *gorm.DB) GetDeliveryQueryHandler {
	return GetDeliveryQueryHandler{db: db}
}

// Handle returns the run with its status log, or an object-not-found error.
func (h GetDeliveryQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryQuery,
) (GetDeliveryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeliveryQueryResponse{}, err
	}

	resp, err := h.loadRun(ctx, query)
	if err != nil {
		return GetDeliveryQueryResponse{}, err
	}

	resp.StatusLog, err = h.loadStatusLog(ctx, query)
	if err != nil {
		return GetDeliveryQueryResponse{}, err
	}

	return resp, nil
}

func (h GetDeliveryQueryHandler) loadRun(
	ctx context.Context,
	query GetDeliveryQuery,
) (GetDeliveryQueryResponse, error) {
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
		WHERE d.id = ?
	`, query.DeliveryID().Bytes()).Rows()
	if err != nil {
		return GetDeliveryQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetDeliveryQueryResponse{}, err
		}
		return GetDeliveryQueryResponse{}, errs.NewObjectNotFoundError("delivery", query.DeliveryID())
	}

	var resp GetDeliveryQueryResponse
	var id, bookingID uuid.UUID
	var driverName sql.NullString

	err = rows.Scan(
		&id,
		&bookingID,
		&resp.Direction,
		&resp.ScheduledAt,
		&resp.Address,
		&resp.Status,
		&driverName,
	)
	if err != nil {
		return GetDeliveryQueryResponse{}, err
	}

	status, err := delivery.StatusFromString(resp.Status)
	if err != nil {
		return GetDeliveryQueryResponse{}, err
	}

	resp.ID = id.String()
	resp.BookingID = bookingID.String()
	resp.StepIndex = status.StepIndex()
	if driverName.Valid {
		resp.DriverName = driverName.String
	}

	return resp, nil
}

func (h GetDeliveryQueryHandler) loadStatusLog(
	ctx context.Context,
	query GetDeliveryQuery,
) ([]StatusLogEntry, error) {
	log := make([]StatusLogEntry, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			from_status,
			to_status,
			actor,
			note,
			at
		FROM delivery_status_changes
		WHERE delivery_id = ?
		ORDER BY seq
	`, query.DeliveryID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry StatusLogEntry
		err = rows.Scan(&entry.From, &entry.To, &entry.Actor, &entry.Note, &entry.At)
		if err != nil {
			return nil, err
		}
		log = append(log, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return log, nil
}
