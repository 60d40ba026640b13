package queries

import (
	"errors"
	"time"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/pkg/guard"
)

var (
	ErrGetDeliveryQueryIsNotConstructed = errors.New(
		"GetDeliveryQuery must be created via NewGetDeliveryQuery constructor",
	)
)

// GetDeliveryQuery retrieves one delivery run with its full status history.
type GetDeliveryQuery struct {
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveryQuery creates a query for the given run.
func NewGetDeliveryQuery(deliveryID kernel.UUID) (GetDeliveryQuery, error) {
	if err := deliveryID.Validate(); err != nil {
		return GetDeliveryQuery{}, err
	}

	return GetDeliveryQuery{
		deliveryID: deliveryID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// DeliveryID returns the run being retrieved.
func (q GetDeliveryQuery) DeliveryID() kernel.UUID {
	return q.deliveryID
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryQueryIsNotConstructed)
}

// GetDeliveryQueryResponse is the run detail with its status log for the
// progress view.
type GetDeliveryQueryResponse struct {
	ID          string           `json:"id"`
	BookingID   string           `json:"bookingId"`
	Direction   string           `json:"direction"`
	ScheduledAt time.Time        `json:"scheduledAt"`
	Address     string           `json:"address"`
	Status      string           `json:"status"`
	StepIndex   int              `json:"stepIndex"`
	DriverName  string           `json:"driverName,omitempty"`
	StatusLog   []StatusLogEntry `json:"statusLog"`
}

// StatusLogEntry is one row of the append-only status history.
type StatusLogEntry struct {
	From  string    `json:"from"`
	To    string    `json:"to"`
	Actor string    `json:"actor"`
	Note  string    `json:"note,omitempty"`
	At    time.Time `json:"at"`
}
