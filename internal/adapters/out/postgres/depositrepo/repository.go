package depositrepo

import (
	"context"
	"errors"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/deposit"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormDepositRepository implements DepositRepository using GORM.
// A deposit and its ledger rows always travel together: Get loads the ledger,
// Update appends the rows grown since the last load.
type GormDepositRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormDepositRepository creates a new GORM deposit repository.
func NewGormDepositRepository(db *gorm.DB, tracker aggregateTracker) *GormDepositRepository {
	return &GormDepositRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new deposit and its ledger to the database.
func (r *GormDepositRepository) Add(ctx context.Context, aggregate *deposit.Deposit) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if rows := entriesFromDomain(aggregate, 0); len(rows) > 0 {
		if err := r.db.WithContext(ctx).Create(&rows).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing deposit, appending any new ledger rows. Existing
// rows are never touched.
func (r *GormDepositRepository) Update(ctx context.Context, aggregate *deposit.Deposit) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DepositDTO{}).
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
	err := r.db.WithContext(ctx).Model(&EntryDTO{}).
		Where("deposit_id = ?", dto.ID).
		Count(&persisted).
		Error
	if err != nil {
		return err
	}

	if rows := entriesFromDomain(aggregate, int(persisted)); len(rows) > 0 {
		if err = r.db.WithContext(ctx).Create(&rows).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a deposit by ID, including its ledger.
func (r *GormDepositRepository) Get(ctx context.Context, id kernel.UUID) (*deposit.Deposit, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DepositDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("deposit", id.String())
		}
		return nil, err
	}

	return r.hydrate(ctx, dto)
}

// GetByBooking retrieves the deposit securing the given booking.
func (r *GormDepositRepository) GetByBooking(ctx context.Context, bookingID kernel.UUID) (*deposit.Deposit, error) {
	if err := bookingID.Validate(); err != nil {
		return nil, err
	}

	var dto DepositDTO
	if err := r.db.WithContext(ctx).First(&dto, "booking_id = ?", bookingID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("deposit for booking", bookingID.String())
		}
		return nil, err
	}

	return r.hydrate(ctx, dto)
}

func (r *GormDepositRepository) hydrate(ctx context.Context, dto DepositDTO) (*deposit.Deposit, error) {
	entryDTOs, err := r.loadEntries(ctx, dto.ID)
	if err != nil {
		return nil, err
	}

	return toDomain(dto, entryDTOs)
}

func (r *GormDepositRepository) loadEntries(ctx context.Context, depositID uuid.UUID) ([]EntryDTO, error) {
	var entryDTOs []EntryDTO
	err := r.db.WithContext(ctx).
		Order("seq").
		Find(&entryDTOs, "deposit_id = ?", depositID).
		Error
	if err != nil {
		return nil, err
	}
	return entryDTOs, nil
}
