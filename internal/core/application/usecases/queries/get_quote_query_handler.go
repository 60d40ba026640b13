package queries

import (
	"context"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/vehicle"
	"github.com/mapsensemedia/betterrental/internal/core/domain/services"
	"github.com/mapsensemedia/betterrental/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetQuoteQueryHandler prices a rental server-side using the same Pricer the
// checkout runs.
type GetQuoteQueryHandler struct {
	db     *gorm.DB
	pricer services.Pricer
}

// NewGetQuoteQueryHandler creates a handler for quote requests.
func NewGetQuoteQueryHandler(db *gorm.DB, pricer services.Pricer) GetQuoteQueryHandler {
	return GetQuoteQueryHandler{db: db, pricer: pricer}
}

// Handle loads the category and prices the period. Inactive or unknown
// categories are reported as not found.
func (h GetQuoteQueryHandler) Handle(
	ctx context.Context,
	query GetQuoteQuery,
) (GetQuoteQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetQuoteQueryResponse{}, err
	}

	category, err := h.loadActiveCategory(ctx, query.CategoryID())
	if err != nil {
		return GetQuoteQueryResponse{}, err
	}

	charges, err := h.pricer.Quote(category, query.Period())
	if err != nil {
		return GetQuoteQueryResponse{}, err
	}

	return GetQuoteQueryResponse{
		CategoryID:  query.CategoryID().String(),
		Days:        query.Period().Days(),
		Subtotal:    charges.Subtotal().Amount(),
		Discount:    charges.Discount().Amount(),
		DeliveryFee: charges.DeliveryFee().Amount(),
		Total:       charges.Total().Amount(),
		Deposit:     charges.Deposit().Amount(),
		Currency:    charges.Total().Currency(),
	}, nil
}

func (h GetQuoteQueryHandler) loadActiveCategory(
	ctx context.Context,
	categoryID kernel.UUID,
) (*vehicle.Category, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			name,
			class,
			seats,
			transmission,
			daily_rate_amount,
			daily_rate_currency,
			deposit_amount,
			deposit_currency,
			delivery_fee_amount,
			delivery_fee_currency
		FROM categories
		WHERE id = ? AND active
	`, categoryID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, err
		}
		return nil, errs.NewObjectNotFoundError("category", categoryID)
	}

	var (
		name, class, transmission                  string
		seats                                      int
		rateAmount, depositAmount, feeAmount       int64
		rateCurrency, depositCurrency, feeCurrency string
	)
	err = rows.Scan(
		&name,
		&class,
		&seats,
		&transmission,
		&rateAmount,
		&rateCurrency,
		&depositAmount,
		&depositCurrency,
		&feeAmount,
		&feeCurrency,
	)
	if err != nil {
		return nil, err
	}

	dailyRate, err := kernel.NewMoney(rateAmount, rateCurrency)
	if err != nil {
		return nil, err
	}

	deposit, err := kernel.NewMoney(depositAmount, depositCurrency)
	if err != nil {
		return nil, err
	}

	deliveryFee, err := kernel.NewMoney(feeAmount, feeCurrency)
	if err != nil {
		return nil, err
	}

	return vehicle.RestoreCategory(
		categoryID,
		name,
		class,
		seats,
		vehicle.Transmission(transmission),
		dailyRate,
		deposit,
		deliveryFee,
		true,
	)
}
