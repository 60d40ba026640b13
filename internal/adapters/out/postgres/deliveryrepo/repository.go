package deliveryrepo

import (
	"context"
	"errors"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/delivery"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormDeliveryRepository implements DeliveryRepository using GORM.
// A run and its status log rows always travel together: Get loads the log,
// Update appends the rows grown since the last load.
type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormDeliveryRepository creates a new GORM delivery repository.
func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery run and its status log to the database.
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if rows := statusChangesFromDomain(aggregate, 0); len(rows) > 0 {
		if err := r.db.WithContext(ctx).Create(&rows).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing delivery run, appending any new status log rows.
// Existing log rows are never touched.
func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DeliveryDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	var persisted int64
	err := r.db.WithContext(ctx).Model(&StatusChangeDTO{}).
		Where("delivery_id = ?", dto.ID).
		Count(&persisted).
		Error
	if err != nil {
		return err
	}

	if rows := statusChangesFromDomain(aggregate, int(persisted)); len(rows) > 0 {
		if err = r.db.WithContext(ctx).Create(&rows).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a delivery run by ID, including its status log.
func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery", id.String())
		}
		return nil, err
	}

	logDTOs, err := r.loadStatusLog(ctx, dto.ID)
	if err != nil {
		return nil, err
	}

	return toDomain(dto, logDTOs)
}

// GetAllOpen retrieves all runs that have not reached a final stage.
func (r *GormDeliveryRepository) GetAllOpen(ctx context.Context) ([]*delivery.Delivery, error) {
	var dtos []DeliveryDTO
	err := r.db.WithContext(ctx).
		Where("status NOT IN ?", []string{delivery.Delivered.String(), delivery.Cancelled.String()}).
		Order("scheduled_at").
		Find(&dtos).
		Error
	if err != nil {
		return nil, err
	}

	return r.hydrateAll(ctx, dtos)
}

// GetOpenByBooking retrieves the non-final runs of a booking.
func (r *GormDeliveryRepository) GetOpenByBooking(
	ctx context.Context,
	bookingID kernel.UUID,
) ([]*delivery.Delivery, error) {
	if err := bookingID.Validate(); err != nil {
		return nil, err
	}

	var dtos []DeliveryDTO
	err := r.db.WithContext(ctx).
		Where("booking_id = ? AND status NOT IN ?",
			bookingID.Bytes(), []string{delivery.Delivered.String(), delivery.Cancelled.String()}).
		Order("scheduled_at").
		Find(&dtos).
		Error
	if err != nil {
		return nil, err
	}

	return r.hydrateAll(ctx, dtos)
}

func (r *GormDeliveryRepository) hydrateAll(ctx context.Context, dtos []DeliveryDTO) ([]*delivery.Delivery, error) {
	runs := make([]*delivery.Delivery, 0, len(dtos))
	for _, dto := range dtos {
		logDTOs, err := r.loadStatusLog(ctx, dto.ID)
		if err != nil {
			return nil, err
		}

		run, err := toDomain(dto, logDTOs)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	return runs, nil
}

func (r *GormDeliveryRepository) loadStatusLog(ctx context.Context, deliveryID uuid.UUID) ([]StatusChangeDTO, error) {
	var logDTOs []StatusChangeDTO
	err := r.db.WithContext(ctx).
		Order("seq").
		Find(&logDTOs, "delivery_id = ?", deliveryID).
		Error
	if err != nil {
		return nil, err
	}
	return logDTOs, nil
}

// GormDriverRepository implements DriverRepository using GORM.
type GormDriverRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormDriverRepository creates a new GORM driver repository.
func NewGormDriverRepository(db *gorm.DB, tracker aggregateTracker) *GormDriverRepository {
	return &GormDriverRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new driver to the database.
func (r *GormDriverRepository) Add(ctx context.Context, aggregate *delivery.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := driverFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing driver to the database.
func (r *GormDriverRepository) Update(ctx context.Context, aggregate *delivery.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := driverFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DriverDTO{}).
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

// Get retrieves a driver by ID.
func (r *GormDriverRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DriverDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", id.String())
		}
		return nil, err
	}

	return driverToDomain(dto)
}

// GetAllActive retrieves all drivers currently taking runs.
func (r *GormDriverRepository) GetAllActive(ctx context.Context) ([]*delivery.Driver, error) {
	var dtos []DriverDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos, "active = ?", true).Error; err != nil {
		return nil, err
	}

	drivers := make([]*delivery.Driver, 0, len(dtos))
	for _, dto := range dtos {
		driver, err := driverToDomain(dto)
		if err != nil {
			return nil, err
		}
		drivers = append(drivers, driver)
	}

	return drivers, nil
}
