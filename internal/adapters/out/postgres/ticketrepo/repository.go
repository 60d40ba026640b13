package ticketrepo

import (
	"context"
	"errors"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/ticket"
	"github.com/mapsensemedia/betterrental/internal/pkg/errs"

	"gorm.io/gorm"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormTicketRepository implements TicketRepository using GORM.
// A ticket and its comment thread always travel together: Get loads the
// thread, Update appends the comments grown since the last load.
type GormTicketRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormTicketRepository creates a new GORM ticket repository.
func NewGormTicketRepository(db *gorm.DB, tracker aggregateTracker) *GormTicketRepository {
	return &GormTicketRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new ticket and its comments to the database.
func (r *GormTicketRepository) Add(ctx context.Context, aggregate *ticket.Ticket) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if rows := commentsFromDomain(aggregate, 0); len(rows) > 0 {
		if err := r.db.WithContext(ctx).Create(&rows).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing ticket, appending any new comments. Existing
// comments are never touched.
func (r *GormTicketRepository) Update(ctx context.Context, aggregate *ticket.Ticket) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&TicketDTO{}).
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
	err := r.db.WithContext(ctx).Model(&CommentDTO{}).
		Where("ticket_id = ?", dto.ID).
		Count(&persisted).
		Error
	if err != nil {
		return err
	}

	if rows := commentsFromDomain(aggregate, int(persisted)); len(rows) > 0 {
		if err = r.db.WithContext(ctx).Create(&rows).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a ticket by ID, including its comment thread.
func (r *GormTicketRepository) Get(ctx context.Context, id kernel.UUID) (*ticket.Ticket, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TicketDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("ticket", id.String())
		}
		return nil, err
	}

	var commentDTOs []CommentDTO
	err := r.db.WithContext(ctx).
		Order("seq").
		Find(&commentDTOs, "ticket_id = ?", dto.ID).
		Error
	if err != nil {
		return nil, err
	}

	return toDomain(dto, commentDTOs)
}
