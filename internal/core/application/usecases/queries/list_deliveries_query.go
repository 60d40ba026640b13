package queries

import (
	"errors"
	"time"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/delivery"
	"github.com/mapsensemedia/betterrental/internal/pkg/guard"
)

var (
	ErrListDeliveriesQueryIsNotConstructed = errors.New(
		"ListDeliveriesQuery must be created via NewListDeliveriesQuery constructor",
	)
)

// ListDeliveriesQuery feeds the dispatch board. An empty status lists every
// run that is not yet closed out.
type ListDeliveriesQuery struct {
	status string

	guard guard.ConstructorGuard
}

// NewListDeliveriesQuery creates a dispatch board query. Status is optional.
func NewListDeliveriesQuery(status string) (ListDeliveriesQuery, error) {
	if status != "" {
		if _, err := delivery.StatusFromString(status); err != nil {
			return ListDeliveriesQuery{}, err
		}
	}

	return ListDeliveriesQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Status returns the status filter, empty when unset.
func (q ListDeliveriesQuery) Status() string {
	return q.status
}

// Validate ensures the query was created through the constructor.
func (q ListDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrListDeliveriesQueryIsNotConstructed)
}

// ListDeliveriesQueryResponse is one run on the dispatch board. StepIndex is
// the 0-based position among the ordered stages, -1 for side states.
type ListDeliveriesQueryResponse struct {
	ID          string    `json:"id"`
	BookingID   string    `json:"bookingId"`
	Direction   string    `json:"direction"`
	ScheduledAt time.Time `json:"scheduledAt"`
	Address     string    `json:"address"`
	Status      string    `json:"status"`
	StepIndex   int       `json:"stepIndex"`
	DriverName  string    `json:"driverName,omitempty"`
}
