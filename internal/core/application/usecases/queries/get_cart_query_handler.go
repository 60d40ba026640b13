package queries

import (
	"context"

	"github.com/mapsensemedia/betterrental/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCartQueryHandler retrieves a single cart joined with its category name.
type GetCartQueryHandler struct {
	db *gorm.DB
}

// NewGetCartQueryHandler creates a handler for cart retrieval.
func NewGetCartQueryHandler(db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{db: db}
}

// Handle returns the cart or an object-not-found error.
func (h GetCartQueryHandler) Handle(
	ctx context.Context,
	query GetCartQuery,
) (GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			ct.id,
			ct.customer_id,
			ct.email,
			ct.phone,
			ct.category_id,
			c.name,
			ct.period_start,
			ct.period_end,
			ct.pickup_address,
			ct.return_address,
			ct.quote_subtotal_amount,
			ct.quote_discount_amount,
			ct.quote_delivery_fee_amount,
			ct.quote_total_amount,
			ct.quote_deposit_amount,
			ct.quote_total_currency,
			ct.status,
			ct.last_activity_at
		FROM carts ct
		JOIN categories c ON c.id = ct.category_id
		WHERE ct.id = ?
	`, query.CartID().Bytes()).Rows()
	if err != nil {
		return GetCartQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetCartQueryResponse{}, err
		}
		return GetCartQueryResponse{}, errs.NewObjectNotFoundError("cart", query.CartID())
	}

	var cart GetCartQueryResponse
	var id, categoryID uuid.UUID
	var customerID uuid.NullUUID

	err = rows.Scan(
		&id,
		&customerID,
		&cart.Email,
		&cart.Phone,
		&categoryID,
		&cart.CategoryName,
		&cart.PeriodStart,
		&cart.PeriodEnd,
		&cart.PickupAddress,
		&cart.ReturnAddress,
		&cart.Quote.Subtotal,
		&cart.Quote.Discount,
		&cart.Quote.DeliveryFee,
		&cart.Quote.Total,
		&cart.Quote.Deposit,
		&cart.Quote.Currency,
		&cart.Status,
		&cart.LastActivityAt,
	)
	if err != nil {
		return GetCartQueryResponse{}, err
	}

	cart.ID = id.String()
	cart.CategoryID = categoryID.String()
	if customerID.Valid {
		cart.CustomerID = customerID.UUID.String()
	}

	return cart, nil
}
