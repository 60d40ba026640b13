package queries

import (
	"context"

	"github.com/mapsensemedia/betterrental/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTicketQueryHandler retrieves the ticket detail with its thread.
type GetTicketQueryHandler struct {
	db *gorm.DB
}

// NewGetTicketQueryHandler creates a handler for ticket detail queries.
func NewGetTicketQueryHandler(db *gorm.DB) GetTicketQueryHandler {
	return GetTicketQueryHandler{db: db}
}

// Handle returns the ticket and its comments, or an object-not-found error.
func (h GetTicketQueryHandler) Handle(
	ctx context.Context,
	query GetTicketQuery,
) (GetTicketQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetTicketQueryResponse{}, err
	}

	resp, err := h.loadTicket(ctx, query)
	if err != nil {
		return GetTicketQueryResponse{}, err
	}

	resp.Comments, err = h.loadComments(ctx, query)
	if err != nil {
		return GetTicketQueryResponse{}, err
	}

	return resp, nil
}

func (h GetTicketQueryHandler) loadTicket(
	ctx context.Context,
	query GetTicketQuery,
) (GetTicketQueryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			booking_id,
			contact,
			subject,
			body,
			priority,
			assignee,
			status,
			created_at
		FROM tickets
		WHERE id = ?
	`, query.TicketID().Bytes()).Rows()
	if err != nil {
		return GetTicketQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetTicketQueryResponse{}, err
		}
		return GetTicketQueryResponse{}, errs.NewObjectNotFoundError("ticket", query.TicketID())
	}

	var resp GetTicketQueryResponse
	var id uuid.UUID
	var bookingID uuid.NullUUID

	err = rows.Scan(
		&id,
		&bookingID,
		&resp.Contact,
		&resp.Subject,
		&resp.Body,
		&resp.Priority,
		&resp.Assignee,
		&resp.Status,
		&resp.CreatedAt,
	)
	if err != nil {
		return GetTicketQueryResponse{}, err
	}

	resp.ID = id.String()
	if bookingID.Valid {
		resp.BookingID = bookingID.UUID.String()
	}

	return resp, nil
}

func (h GetTicketQueryHandler) loadComments(
	ctx context.Context,
	query GetTicketQuery,
) ([]TicketComment, error) {
	comments := make([]TicketComment, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT author, body, at
		FROM ticket_comments
		WHERE ticket_id = ?
		ORDER BY seq
	`, query.TicketID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var comment TicketComment
		err = rows.Scan(&comment.Author, &comment.Body, &comment.At)
		if err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return comments, nil
}
