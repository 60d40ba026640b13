package queries

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListBookingsQueryHandler serves the paginated back-office booking list.
type ListBookingsQueryHandler struct {
	db *gorm.DB
}

// NewListBookingsQueryHandler creates a handler for booking list queries.
func NewListBookingsQueryHandler(db *gorm.DB) ListBookingsQueryHandler {
	return ListBookingsQueryHandler{db: db}
}

// Handle returns one page of bookings matching the filters, newest first,
// together with the total match count for pagination.
func (h ListBookingsQueryHandler) Handle(
	ctx context.Context,
	query ListBookingsQuery,
) (ListBookingsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListBookingsQueryResponse{}, err
	}

	where := "WHERE 1=1"
	args := make([]any, 0, 3)
	if query.Status() != "" {
		where += " AND b.status = ?"
		args = append(args, query.Status())
	}
	if !query.From().IsZero() {
		where += " AND b.period_end > ?"
		args = append(args, query.From())
	}
	if !query.To().IsZero() {
		where += " AND b.period_start < ?"
		args = append(args, query.To())
	}

	var total int64
	err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM bookings b "+where, args...).
		Scan(&total).Error
	if err != nil {
		return ListBookingsQueryResponse{}, err
	}

	offset := (query.Page() - 1) * query.PageSize()
	pageArgs := append(args, query.PageSize(), offset)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			b.id,
			c.name,
			u.plate,
			b.period_start,
			b.period_end,
			b.charges_total_amount,
			b.charges_total_currency,
			b.status,
			b.created_at
		FROM bookings b
		JOIN categories c ON c.id = b.category_id
		LEFT JOIN units u ON u.id = b.unit_id
		`+where+`
		ORDER BY b.created_at DESC
		LIMIT ? OFFSET ?
	`, pageArgs...).Rows()
	if err != nil {
		return ListBookingsQueryResponse{}, err
	}
	defer rows.Close()

	bookings := make([]BookingListItem, 0, query.PageSize())
	for rows.Next() {
		var item BookingListItem
		var id uuid.UUID
		var plate sql.NullString

		err = rows.Scan(
			&id,
			&item.CategoryName,
			&plate,
			&item.PeriodStart,
			&item.PeriodEnd,
			&item.Total,
			&item.Currency,
			&item.Status,
			&item.CreatedAt,
		)
		if err != nil {
			return ListBookingsQueryResponse{}, err
		}

		item.ID = id.String()
		if plate.Valid {
			item.UnitPlate = plate.String
		}
		bookings = append(bookings, item)
	}

	if err = rows.Err(); err != nil {
		return ListBookingsQueryResponse{}, err
	}

	return ListBookingsQueryResponse{
		Bookings: bookings,
		Total:    total,
		Page:     query.Page(),
		PageSize: query.PageSize(),
	}, nil
}
