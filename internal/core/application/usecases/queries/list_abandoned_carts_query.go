package queries

import (
	"errors"
	"time"

	"github.com/mapsensemedia/betterrental/internal/pkg/guard"
)

var (
	ErrListAbandonedCartsQueryIsNotConstructed = errors.New(
		"ListAbandonedCartsQuery must be created via NewListAbandonedCartsQuery constructor",
	)
)

// ListAbandonedCartsQuery lists carts the sweeper marked abandoned, for
// recovery outreach in the back office.
type ListAbandonedCartsQuery struct {
	guard guard.ConstructorGuard
}

// NewListAbandonedCartsQuery creates an abandoned-cart list query.
func NewListAbandonedCartsQuery() ListAbandonedCartsQuery {
	return ListAbandonedCartsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListAbandonedCartsQuery) Validate() error {
	return q.guard.Validate(ErrListAbandonedCartsQueryIsNotConstructed)
}

// ListAbandonedCartsQueryResponse is one abandoned cart with the contact
// details available for a recovery nudge.
type ListAbandonedCartsQueryResponse struct {
	ID             string    `json:"id"`
	Email          string    `json:"email,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	CategoryName   string    `json:"categoryName"`
	PeriodStart    time.Time `json:"periodStart"`
	PeriodEnd      time.Time `json:"periodEnd"`
	Total          int64     `json:"total"`
	Currency       string    `json:"currency"`
	LastActivityAt time.Time `json:"lastActivityAt"`
}
