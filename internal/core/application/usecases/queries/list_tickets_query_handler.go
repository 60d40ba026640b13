package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListTicketsQueryHandler serves the support ticket list. Urgent work floats
// to the top.
type ListTicketsQueryHandler struct {
	db *gorm.DB
}

// NewListTicketsQueryHandler creates a handler for ticket list queries.
func NewListTicketsQueryHandler(db *gorm.DB) ListTicketsQueryHandler {
	return ListTicketsQueryHandler{db: db}
}

// Handle returns the tickets matching the status filter, urgent first, then
// newest first within the same priority.
func (h ListTicketsQueryHandler) Handle(
	ctx context.Context,
	query ListTicketsQuery,
) ([]ListTicketsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	where := ""
	args := make([]any, 0, 1)
	if query.Status() != "" {
		where = "WHERE t.status = ?"
		args = append(args, query.Status())
	}

	tickets := make([]ListTicketsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			t.id,
			t.booking_id,
			t.contact,
			t.subject,
			t.priority,
			t.assignee,
			t.status,
			(SELECT COUNT(*) FROM ticket_comments tc WHERE tc.ticket_id = t.id),
			t.created_at
		FROM tickets t
		`+where+`
		ORDER BY
			CASE t.priority
				WHEN 'Urgent' THEN 0
				WHEN 'High' THEN 1
				WHEN 'Normal' THEN 2
				ELSE 3
			END,
			t.created_at DESC
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item ListTicketsQueryResponse
		var id uuid.UUID
		var bookingID uuid.NullUUID

		err = rows.Scan(
			&id,
			&bookingID,
			&item.Contact,
			&item.Subject,
			&item.Priority,
			&item.Assignee,
			&item.Status,
			&item.Comments,
			&item.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		item.ID = id.String()
		if bookingID.Valid {
			item.BookingID = bookingID.UUID.String()
		}
		tickets = append(tickets, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tickets, nil
}
