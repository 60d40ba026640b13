package auditrepo

import (
	"context"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/audit"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormAuditRepository implements AuditRepository using GORM. The trail is
// append-only, so Add is the only write path.
type GormAuditRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormAuditRepository creates a new GORM audit repository.
func NewGormAuditRepository(db *gorm.DB, tracker aggregateTracker) *GormAuditRepository {
	return &GormAuditRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add appends an entry to the audit trail.
func (r *GormAuditRepository) Add(ctx context.Context, entry *audit.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(entry)
	if err != nil {
		return err
	}

	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(entry.ID(), entry)
	return nil
}
