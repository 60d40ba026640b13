package ports

import (
	"context"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/booking"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
)

// BookingRepository defines the persistence contract for booking aggregates.
type BookingRepository interface {
	// Add persists a new booking aggregate to storage.
	Add(ctx context.Context, aggregate *booking.Booking) error

	// Update persists changes to an existing booking aggregate.
	Update(ctx context.Context, aggregate *booking.Booking) error

	// Get retrieves a booking aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*booking.Booking, error)

	// GetOverlapping retrieves the non-cancelled bookings of a category whose
	// rental period overlaps the given one. Used by the availability check.
	GetOverlapping(ctx context.Context, categoryID kernel.UUID, period kernel.RentalPeriod) ([]*booking.Booking, error)
}

// DamageReportRepository defines the persistence contract for damage reports.
// Reports are written once at return settlement and never modified.
type DamageReportRepository interface {
	// Add persists a new damage report to storage.
	Add(ctx context.Context, report *booking.DamageReport) error

	// GetAllByBooking retrieves the reports recorded against a booking.
	GetAllByBooking(ctx context.Context, bookingID kernel.UUID) ([]*booking.DamageReport, error)
}
