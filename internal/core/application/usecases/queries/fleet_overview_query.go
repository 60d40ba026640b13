package queries

import (
	"errors"

	"github.com/mapsensemedia/betterrental/internal/pkg/guard"
)

var (
	ErrFleetOverviewQueryIsNotConstructed = errors.New(
		"FleetOverviewQuery must be created via NewFleetOverviewQuery constructor",
	)
)

// FleetOverviewQuery summarises the fleet: unit counts per status for every
// category, active or not.
type FleetOverviewQuery struct {
	guard guard.ConstructorGuard
}

// NewFleetOverviewQuery creates a fleet overview query.
func NewFleetOverviewQuery() FleetOverviewQuery {
	return FleetOverviewQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q FleetOverviewQuery) Validate() error {
	return q.guard.Validate(ErrFleetOverviewQueryIsNotConstructed)
}

// FleetOverviewQueryResponse is one category with its unit counts keyed by
// unit status name.
type FleetOverviewQueryResponse struct {
	CategoryID string         `json:"categoryId"`
	Name       string         `json:"name"`
	Active     bool           `json:"active"`
	Counts     map[string]int `json:"counts"`
	Total      int            `json:"total"`
}
