package queries

import (
	"context"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/cart"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListAbandonedCartsQueryHandler serves the recovery list in the back office.
type ListAbandonedCartsQueryHandler struct {
	db *gorm.DB
}

// NewListAbandonedCartsQueryHandler creates a handler for abandoned-cart lists.
func NewListAbandonedCartsQueryHandler(db *gorm.DB) ListAbandonedCartsQueryHandler {
	return ListAbandonedCartsQueryHandler{db: db}
}

// Handle returns all abandoned carts, most recently active first.
func (h ListAbandonedCartsQueryHandler) Handle(
	ctx context.Context,
	query ListAbandonedCartsQuery,
) ([]ListAbandonedCartsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	carts := make([]ListAbandonedCartsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			ct.id,
			ct.email,
			ct.phone,
			c.name,
			ct.period_start,
			ct.period_end,
			ct.quote_total_amount,
			ct.quote_total_currency,
			ct.last_activity_at
		FROM carts ct
		JOIN categories c ON c.id = ct.category_id
		WHERE ct.status = ?
		ORDER BY ct.last_activity_at DESC
	`, cart.Abandoned.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item ListAbandonedCartsQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&item.Email,
			&item.Phone,
			&item.CategoryName,
			&item.PeriodStart,
			&item.PeriodEnd,
			&item.Total,
			&item.Currency,
			&item.LastActivityAt,
		)
		if err != nil {
			return nil, err
		}

		item.ID = id.String()
		carts = append(carts, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return carts, nil
}
