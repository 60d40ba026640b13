package queries

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/mapsensemedia/betterrental/internal/pkg/guard"
)

var (
	ErrListAuditEntriesQueryIsNotConstructed = errors.New(
		"ListAuditEntriesQuery must be created via NewListAuditEntriesQuery constructor",
	)
)

// ListAuditEntriesQuery lists the audit trail, optionally narrowed to one
// resource.
type ListAuditEntriesQuery struct {
	resource   string
	resourceID string
	limit      int

	guard guard.ConstructorGuard
}

// NewListAuditEntriesQuery creates an audit trail query. Resource and
// resource id are optional; limit caps the row count.
func NewListAuditEntriesQuery(resource string, resourceID string, limit int) ListAuditEntriesQuery {
	if limit < 1 || limit > maxPageSize {
		limit = maxPageSize
	}

	return ListAuditEntriesQuery{
		resource:   resource,
		resourceID: resourceID,
		limit:      limit,
		guard:      guard.NewConstructorGuard(),
	}
}

// Resource returns the resource filter, empty when unset.
func (q ListAuditEntriesQuery) Resource() string {
	return q.resource
}

// ResourceID returns the resource id filter, empty when unset.
func (q ListAuditEntriesQuery) ResourceID() string {
	return q.resourceID
}

// Limit returns the maximum number of rows returned.
func (q ListAuditEntriesQuery) Limit() int {
	return q.limit
}

// Validate ensures the query was created through the constructor.
func (q ListAuditEntriesQuery) Validate() error {
	return q.guard.Validate(ErrListAuditEntriesQueryIsNotConstructed)
}

// ListAuditEntriesQueryResponse is one row of the audit trail.
type ListAuditEntriesQueryResponse struct {
	ID         string          `json:"id"`
	ActorID    string          `json:"actorId"`
	Action     string          `json:"action"`
	Resource   string          `json:"resource"`
	ResourceID string          `json:"resourceId"`
	OldValues  json.RawMessage `json:"oldValues,omitempty"`
	NewValues  json.RawMessage `json:"newValues,omitempty"`
	At         time.Time       `json:"at"`
}
