package queries

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/booking"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/vehicle"
	"github.com/mapsensemedia/betterrental/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const availabilityCacheTTL = 5 * time.Minute

// SearchAvailabilityQueryHandler answers the customer-facing search. Results
// are cached per day range; every mutation that changes availability drops
// the whole cache.
type SearchAvailabilityQueryHandler struct {
	db    *gorm.DB
	cache ports.AvailabilityCache
}

// NewSearchAvailabilityQueryHandler creates a handler for availability searches.
func NewSearchAvailabilityQueryHandler(
	db *gorm.DB,
	cache ports.AvailabilityCache,
) SearchAvailabilityQueryHandler {
	return SearchAvailabilityQueryHandler{db: db, cache: cache}
}

// Handle returns the active categories with at least one unit free for the
// query period. A unit is free when it is not retired or in maintenance and
// not claimed by an overlapping non-cancelled booking.
func (h SearchAvailabilityQueryHandler) Handle(
	ctx context.Context,
	query SearchAvailabilityQuery,
) ([]SearchAvailabilityQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("availability:%s:%s",
		query.Period().Start().UTC().Format("2006-01-02"),
		query.Period().End().UTC().Format("2006-01-02"),
	)

	if payload, ok, err := h.cache.Get(ctx, cacheKey); err == nil && ok {
		var cached []SearchAvailabilityQueryResponse
		if err = json.Unmarshal(payload, &cached); err == nil {
			return cached, nil
		}
	}

	categories, err := h.search(ctx, query)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(categories); err == nil {
		// Cache write failures only cost the next request a database round trip.
		_ = h.cache.Set(ctx, cacheKey, payload, availabilityCacheTTL)
	}

	return categories, nil
}

func (h SearchAvailabilityQueryHandler) search(
	ctx context.Context,
	query SearchAvailabilityQuery,
) ([]SearchAvailabilityQueryResponse, error) {
	categories := make([]SearchAvailabilityQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.name,
			c.class,
			c.seats,
			c.transmission,
			c.daily_rate_amount,
			c.delivery_fee_amount,
			c.deposit_amount,
			c.daily_rate_currency,
			(SELECT COUNT(*) FROM units u
				WHERE u.category_id = c.id AND u.status NOT IN (?, ?))
			- (SELECT COUNT(*) FROM bookings b
				WHERE b.category_id = c.id
				AND b.status != ?
				AND b.period_start < ?
				AND b.period_end > ?) AS free_units
		FROM categories c
		WHERE c.active
		ORDER BY c.name
	`,
		vehicle.UnitStatusMaintenance.String(),
		vehicle.UnitStatusRetired.String(),
		booking.Cancelled.String(),
		query.Period().End(),
		query.Period().Start(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var category SearchAvailabilityQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&category.Name,
			&category.Class,
			&category.Seats,
			&category.Transmission,
			&category.DailyRate,
			&category.DeliveryFee,
			&category.Deposit,
			&category.Currency,
			&category.FreeUnits,
		)
		if err != nil {
			return nil, err
		}

		if category.FreeUnits <= 0 {
			continue
		}

		category.CategoryID = id.String()
		categories = append(categories, category)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}
