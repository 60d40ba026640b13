package bookingrepo

import (
	"context"
	"errors"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/booking"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/pkg/errs"

	"gorm.io/gorm"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormBookingRepository implements BookingRepository using GORM.
type GormBookingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormBookingRepository creates a new GORM booking repository.
func NewGormBookingRepository(db *gorm.DB, tracker aggregateTracker) *GormBookingRepository {
	return &GormBookingRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new booking to the database.
func (r *GormBookingRepository) Add(ctx context.Context, aggregate *booking.Booking) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing booking to the database.
func (r *GormBookingRepository) Update(ctx context.Context, aggregate *booking.Booking) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&BookingDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a booking by ID.
func (r *GormBookingRepository) Get(ctx context.Context, id kernel.UUID) (*booking.Booking, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BookingDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("booking", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetOverlapping retrieves the non-cancelled bookings of a category whose
// rental period overlaps the given one.
func (r *GormBookingRepository) GetOverlapping(
	ctx context.Context,
	categoryID kernel.UUID,
	period kernel.RentalPeriod,
) ([]*booking.Booking, error) {
	if err := errors.Join(categoryID.Validate(), period.Validate()); err != nil {
		return nil, err
	}

	var dtos []BookingDTO
	err := r.db.WithContext(ctx).
		Where("category_id = ? AND status != ? AND period_start < ? AND period_end > ?",
			categoryID.Bytes(), booking.Cancelled.String(), period.End(), period.Start()).
		Find(&dtos).
		Error
	if err != nil {
		return nil, err
	}

	bookings := make([]*booking.Booking, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, aggregate)
	}

	return bookings, nil
}

// GormDamageReportRepository implements DamageReportRepository using GORM.
// Reports are write-once, so there is no update path.
type GormDamageReportRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormDamageReportRepository creates a new GORM damage report repository.
func NewGormDamageReportRepository(db *gorm.DB, tracker aggregateTracker) *GormDamageReportRepository {
	return &GormDamageReportRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new damage report to the database.
func (r *GormDamageReportRepository) Add(ctx context.Context, report *booking.DamageReport) error {
	if err := report.Validate(); err != nil {
		return err
	}

	dto := damageReportFromDomain(report)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(report.ID(), report)
	return nil
}

// GetAllByBooking retrieves the reports recorded against a booking.
func (r *GormDamageReportRepository) GetAllByBooking(
	ctx context.Context,
	bookingID kernel.UUID,
) ([]*booking.DamageReport, error) {
	if err := bookingID.Validate(); err != nil {
		return nil, err
	}

	var dtos []DamageReportDTO
	err := r.db.WithContext(ctx).
		Order("recorded_at").
		Find(&dtos, "booking_id = ?", bookingID.Bytes()).
		Error
	if err != nil {
		return nil, err
	}

	reports := make([]*booking.DamageReport, 0, len(dtos))
	for _, dto := range dtos {
		report, err := damageReportToDomain(dto)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}

	return reports, nil
}
