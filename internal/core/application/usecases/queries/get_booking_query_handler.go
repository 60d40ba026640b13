package queries

import (
	"context"
	"database/sql"

	"github.com/mapsensemedia/betterrental/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetBookingQueryHandler retrieves the booking detail view.
type GetBookingQueryHandler struct {
	db *gorm.DB
}

// NewGetBookingQueryHandler creates a handler for booking retrieval.
func NewGetBookingQueryHandler(db *gorm.DB) GetBookingQueryHandler {
	return GetBookingQueryHandler{db: db}
}

// Handle returns the booking joined with its category and unit, or an
// object-not-found error.
func (h GetBookingQueryHandler) Handle(
	ctx context.Context,
	query GetBookingQuery,
) (GetBookingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetBookingQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			b.id,
			b.customer_id,
			b.category_id,
			c.name,
			b.unit_id,
			u.plate,
			b.period_start,
			b.period_end,
			b.pickup_address,
			b.return_address,
			b.charges_subtotal_amount,
			b.charges_discount_amount,
			b.charges_delivery_fee_amount,
			b.charges_total_amount,
			b.charges_deposit_amount,
			b.charges_total_currency,
			b.cancellation_fee_amount,
			b.status,
			b.created_at
		FROM bookings b
		JOIN categories c ON c.id = b.category_id
		LEFT JOIN units u ON u.id = b.unit_id
		WHERE b.id = ?
	`, query.BookingID().Bytes()).Rows()
	if err != nil {
		return GetBookingQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetBookingQueryResponse{}, err
		}
		return GetBookingQueryResponse{}, errs.NewObjectNotFoundError("booking", query.BookingID())
	}

	var resp GetBookingQueryResponse
	var id, customerID, categoryID uuid.UUID
	var unitID uuid.NullUUID
	var plate sql.NullString
	var cancellationFee sql.NullInt64

	err = rows.Scan(
		&id,
		&customerID,
		&categoryID,
		&resp.CategoryName,
		&unitID,
		&plate,
		&resp.PeriodStart,
		&resp.PeriodEnd,
		&resp.PickupAddress,
		&resp.ReturnAddress,
		&resp.Charges.Subtotal,
		&resp.Charges.Discount,
		&resp.Charges.DeliveryFee,
		&resp.Charges.Total,
		&resp.Charges.Deposit,
		&resp.Charges.Currency,
		&cancellationFee,
		&resp.Status,
		&resp.CreatedAt,
	)
	if err != nil {
		return GetBookingQueryResponse{}, err
	}

	resp.ID = id.String()
	resp.CustomerID = customerID.String()
	resp.CategoryID = categoryID.String()
	if unitID.Valid {
		resp.UnitID = unitID.UUID.String()
	}
	if plate.Valid {
		resp.UnitPlate = plate.String
	}
	if cancellationFee.Valid {
		resp.CancellationFee = &cancellationFee.Int64
	}

	return resp, nil
}
