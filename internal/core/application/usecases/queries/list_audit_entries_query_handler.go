package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListAuditEntriesQueryHandler reads the append-only audit trail.
type ListAuditEntriesQueryHandler struct {
	db *gorm.DB
}

// NewListAuditEntriesQueryHandler creates a handler for audit trail queries.
func NewListAuditEntriesQueryHandler(db *gorm.DB) ListAuditEntriesQueryHandler {
	return ListAuditEntriesQueryHandler{db: db}
}

// Handle returns the newest audit rows first, narrowed by the optional
// resource filters.
func (h ListAuditEntriesQueryHandler) Handle(
	ctx context.Context,
	query ListAuditEntriesQuery,
) ([]ListAuditEntriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	where := "WHERE 1=1"
	args := make([]any, 0, 3)
	if query.Resource() != "" {
		where += " AND resource = ?"
		args = append(args, query.Resource())
	}
	if query.ResourceID() != "" {
		where += " AND resource_id = ?"
		args = append(args, query.ResourceID())
	}
	args = append(args, query.Limit())

	entries := make([]ListAuditEntriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			actor_id,
			action,
			resource,
			resource_id,
			old_values,
			new_values,
			at
		FROM audit_entries
		`+where+`
		ORDER BY at DESC
		LIMIT ?
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry ListAuditEntriesQueryResponse
		var id, actorID uuid.UUID
		var oldValues, newValues []byte

		err = rows.Scan(
			&id,
			&actorID,
			&entry.Action,
			&entry.Resource,
			&entry.ResourceID,
			&oldValues,
			&newValues,
			&entry.At,
		)
		if err != nil {
			return nil, err
		}

		entry.ID = id.String()
		entry.ActorID = actorID.String()
		entry.OldValues = oldValues
		entry.NewValues = newValues
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
