// Package auditrepo provides data transfer objects and mapping functions for
// the append-only audit trail. Value snapshots are stored as jsonb so the
// trail can be filtered with SQL when investigating an incident.
package auditrepo

import (
	"encoding/json"
	"time"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/audit"

	"github.com/google/uuid"
)

// EntryDTO represents the database structure for persisting audit trail entries.
type EntryDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ActorID    uuid.UUID `gorm:"type:uuid;index"`
	Action     string    `gorm:"index"`
	Resource   string    `gorm:"index:idx_audit_resource"`
	ResourceID string    `gorm:"index:idx_audit_resource"`
	OldValues  []byte    `gorm:"type:jsonb"`
	NewValues  []byte    `gorm:"type:jsonb"`
	At         time.Time `gorm:"index"`
}

// TableName specifies the database table name for audit trail entries.
func (EntryDTO) TableName() string {
	return "audit_entries"
}

func fromDomain(entry *audit.Entry) (EntryDTO, error) {
	oldValues, err := marshalValues(entry.OldValues())
	if err != nil {
		return EntryDTO{}, err
	}

	newValues, err := marshalValues(entry.NewValues())
	if err != nil {
		return EntryDTO{}, err
	}

	return EntryDTO{
		ID:         entry.ID().Bytes(),
		ActorID:    entry.ActorID().Bytes(),
		Action:     entry.Action(),
		Resource:   entry.Resource(),
		ResourceID: entry.ResourceID(),
		OldValues:  oldValues,
		NewValues:  newValues,
		At:         entry.At(),
	}, nil
}

func marshalValues(values map[string]string) ([]byte, error) {
	if values == nil {
		return nil, nil
	}
	return json.Marshal(values)
}
