package ports

import (
	"context"
	"time"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/deposit"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
)

// DocumentStore abstracts blob storage for generated documents: rental
// agreements, deposit receipts and damage photos.
type DocumentStore interface {
	// Put stores a document under the given key, overwriting any previous content.
	Put(ctx context.Context, key string, content []byte, contentType string) error

	// Get retrieves a previously stored document.
	Get(ctx context.Context, key string) ([]byte, error)

	// URL returns a link under which the document can be fetched.
	URL(key string) string
}

// AgreementData is everything the rental agreement document shows.
type AgreementData struct {
	BookingID     kernel.UUID
	CustomerName  string
	CategoryName  string
	Period        kernel.RentalPeriod
	PickupAddress string
	ReturnAddress string
	Subtotal      kernel.Money
	Discount      kernel.Money
	DeliveryFee   kernel.Money
	Total         kernel.Money
	Deposit       kernel.Money
	IssuedAt      time.Time
}

// ReceiptData is everything the deposit receipt document shows, including the
// full ledger of the settled deposit.
type ReceiptData struct {
	BookingID    kernel.UUID
	CustomerName string
	Held         kernel.Money
	Entries      []deposit.Entry
	IssuedAt     time.Time
}

// DocumentRenderer turns settlement data into printable PDF documents.
type DocumentRenderer interface {
	// RenderAgreement renders the rental agreement handed to the customer at checkout.
	RenderAgreement(data AgreementData) ([]byte, error)

	// RenderDepositReceipt renders the deposit statement produced at return settlement.
	RenderDepositReceipt(data ReceiptData) ([]byte, error)
}

// AvailabilityCache caches search results per category and date range.
// Entries are invalidated whenever bookings or units change.
type AvailabilityCache interface {
	// Get returns the cached payload for the key, or ok=false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores the payload under the key for the given lifetime.
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error

	// Invalidate drops all cached search results.
	Invalidate(ctx context.Context) error
}

// DeliveryEvent is pushed to back-office clients when a run changes status.
type DeliveryEvent struct {
	DeliveryID string `json:"deliveryId"`
	BookingID  string `json:"bookingId"`
	Status     string `json:"status"`
	StepIndex  int    `json:"stepIndex"`
	Actor      string `json:"actor"`
}

// DeliveryEventPublisher broadcasts delivery status changes to connected
// back-office clients. Publishing is fire-and-forget.
type DeliveryEventPublisher interface {
	PublishStatusChanged(event DeliveryEvent)
}
