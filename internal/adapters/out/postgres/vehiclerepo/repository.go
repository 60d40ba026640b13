package vehiclerepo

import (
	"context"
	"errors"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/vehicle"
	"github.com/mapsensemedia/betterrental/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormCategoryRepository implements CategoryRepository using GORM.
type GormCategoryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormCategoryRepository creates a new GORM category repository.
func NewGormCategoryRepository(db *gorm.DB, tracker aggregateTracker) *GormCategoryRepository {
	return &GormCategoryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new category to the database.
func (r *GormCategoryRepository) Add(ctx context.Context, aggregate *vehicle.Category) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := categoryFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing category to the database.
func (r *GormCategoryRepository) Update(ctx context.Context, aggregate *vehicle.Category) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := categoryFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CategoryDTO{}).
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

// Get retrieves a category by ID.
func (r *GormCategoryRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.Category, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CategoryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("category", id.String())
		}
		return nil, err
	}

	return categoryToDomain(dto)
}

// GetAllActive retrieves all categories customers can currently book.
func (r *GormCategoryRepository) GetAllActive(ctx context.Context) ([]*vehicle.Category, error) {
	var dtos []CategoryDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos, "active = ?", true).Error; err != nil {
		return nil, err
	}

	categories := make([]*vehicle.Category, 0, len(dtos))
	for _, dto := range dtos {
		category, err := categoryToDomain(dto)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}

	return categories, nil
}

// GormUnitRepository implements UnitRepository using GORM.
type GormUnitRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormUnitRepository creates a new GORM unit repository.
func NewGormUnitRepository(db *gorm.DB, tracker aggregateTracker) *GormUnitRepository {
	return &GormUnitRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new unit to the database.
func (r *GormUnitRepository) Add(ctx context.Context, aggregate *vehicle.Unit) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := unitFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing unit to the database.
func (r *GormUnitRepository) Update(ctx context.Context, aggregate *vehicle.Unit) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := unitFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&UnitDTO{}).
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

// Get retrieves a unit by ID.
func (r *GormUnitRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.Unit, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UnitDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("unit", id.String())
		}
		return nil, err
	}

	return unitToDomain(dto)
}

// GetFirstAvailableInCategory retrieves one Available unit of the category.
// The row is locked for update so two concurrent confirmations cannot reserve
// the same vehicle.
func (r *GormUnitRepository) GetFirstAvailableInCategory(
	ctx context.Context,
	categoryID kernel.UUID,
) (*vehicle.Unit, error) {
	if err := categoryID.Validate(); err != nil {
		return nil, err
	}

	var dto UnitDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Order("plate").
		First(&dto, "category_id = ? AND status = ?", categoryID.Bytes(), vehicle.UnitStatusAvailable.String()).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("available unit", categoryID.String())
		}
		return nil, err
	}

	return unitToDomain(dto)
}

// CountAvailableInCategory counts the Available units of the category.
func (r *GormUnitRepository) CountAvailableInCategory(ctx context.Context, categoryID kernel.UUID) (int, error) {
	if err := categoryID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&UnitDTO{}).
		Where("category_id = ? AND status = ?", categoryID.Bytes(), vehicle.UnitStatusAvailable.String()).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}

	return int(count), nil
}
