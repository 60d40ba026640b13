package queries

import (
	"errors"
	"time"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/pkg/guard"
)

var (
	ErrGetCartQueryIsNotConstructed = errors.New(
		"GetCartQuery must be created via NewGetCartQuery constructor",
	)
)

// GetCartQuery retrieves a single shopping cart with its quoted totals.
type GetCartQuery struct {
	cartID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a query for the given cart.
func NewGetCartQuery(cartID kernel.UUID) (GetCartQuery, error) {
	if err := cartID.Validate(); err != nil {
		return GetCartQuery{}, err
	}

	return GetCartQuery{
		cartID: cartID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// CartID returns the cart being retrieved.
func (q GetCartQuery) CartID() kernel.UUID {
	return q.cartID
}

// Validate ensures the query was created through the constructor.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// GetCartQueryResponse is the cart as shown to the customer before checkout.
type GetCartQueryResponse struct {
	ID             string         `json:"id"`
	CustomerID     string         `json:"customerId,omitempty"`
	Email          string         `json:"email,omitempty"`
	Phone          string         `json:"phone,omitempty"`
	CategoryID     string         `json:"categoryId"`
	CategoryName   string         `json:"categoryName"`
	PeriodStart    time.Time      `json:"periodStart"`
	PeriodEnd      time.Time      `json:"periodEnd"`
	PickupAddress  string         `json:"pickupAddress"`
	ReturnAddress  string         `json:"returnAddress"`
	Quote          QuoteBreakdown `json:"quote"`
	Status         string         `json:"status"`
	LastActivityAt time.Time      `json:"lastActivityAt"`
}

// QuoteBreakdown is the priced snapshot carried by carts and bookings.
type QuoteBreakdown struct {
	Subtotal    int64  `json:"subtotal"`
	Discount    int64  `json:"discount"`
	DeliveryFee int64  `json:"deliveryFee"`
	Total       int64  `json:"total"`
	Deposit     int64  `json:"deposit"`
	Currency    string `json:"currency"`
}
