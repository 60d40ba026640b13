package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FleetOverviewQueryHandler aggregates unit counts per category and status.
type FleetOverviewQueryHandler struct {
	db *gorm.DB
}

// NewFleetOverviewQueryHandler creates a handler for fleet overview queries.
func NewFleetOverviewQueryHandler(db *gorm.DB) FleetOverviewQueryHandler {
	return FleetOverviewQueryHandler{db: db}
}

// Handle returns every category with its per-status unit counts, ordered by
// category name. Categories without units appear with empty counts.
func (h FleetOverviewQueryHandler) Handle(
	ctx context.Context,
	query FleetOverviewQuery,
) ([]FleetOverviewQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.name,
			c.active,
			u.status,
			COUNT(u.id)
		FROM categories c
		LEFT JOIN units u ON u.category_id = c.id
		GROUP BY c.id, c.name, c.active, u.status
		ORDER BY c.name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	overview := make([]FleetOverviewQueryResponse, 0)
	index := make(map[string]int)

	for rows.Next() {
		var id uuid.UUID
		var name string
		var active bool
		var status *string
		var count int

		err = rows.Scan(&id, &name, &active, &status, &count)
		if err != nil {
			return nil, err
		}

		categoryID := id.String()
		pos, ok := index[categoryID]
		if !ok {
			pos = len(overview)
			index[categoryID] = pos
			overview = append(overview, FleetOverviewQueryResponse{
				CategoryID: categoryID,
				Name:       name,
				Active:     active,
				Counts:     make(map[string]int),
			})
		}

		// status is NULL for categories without any unit.
		if status != nil {
			overview[pos].Counts[*status] += count
			overview[pos].Total += count
		}
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return overview, nil
}
