// Package ticketrepo provides data transfer objects and mapping functions for
// support ticket persistence. The comment thread is part of the ticket
// aggregate: it is loaded with it and appended with it, never rewritten.
package ticketrepo

import (
	"time"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/ticket"

	"github.com/google/uuid"
)

// TicketDTO represents the database structure for persisting ticket aggregates.
type TicketDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	BookingID *uuid.UUID `gorm:"type:uuid;index"`
	Contact   string
	Subject   string
	Body      string
	Priority  string `gorm:"type:varchar(16);index"`
	Assignee  string
	Status    string `gorm:"type:varchar(16);index"`
	CreatedAt time.Time
}

// TableName specifies the database table name for ticket entities.
func (TicketDTO) TableName() string {
	return "tickets"
}

// CommentDTO represents one append-only reply in a ticket's thread. Rows are
// keyed by their position in the thread, which also fixes the replay order.
type CommentDTO struct {
	TicketID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq      int       `gorm:"primaryKey"`
	Author   string
	Body     string
	At       time.Time
}

// TableName specifies the database table name for ticket comments.
func (CommentDTO) TableName() string {
	return "ticket_comments"
}

func fromDomain(aggregate *ticket.Ticket) TicketDTO {
	var bookingID *uuid.UUID
	if id := aggregate.BookingID(); id != nil {
		raw := id.Bytes()
		bookingID = &raw
	}

	return TicketDTO{
		ID:        aggregate.ID().Bytes(),
		BookingID: bookingID,
		Contact:   aggregate.Contact(),
		Subject:   aggregate.Subject(),
		Body:      aggregate.Body(),
		Priority:  aggregate.Priority().String(),
		Assignee:  aggregate.Assignee(),
		Status:    aggregate.Status().String(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

func commentsFromDomain(aggregate *ticket.Ticket, from int) []CommentDTO {
	comments := aggregate.Comments()
	dtos := make([]CommentDTO, 0, len(comments)-from)
	for seq := from; seq < len(comments); seq++ {
		comment := comments[seq]
		dtos = append(dtos, CommentDTO{
			TicketID: aggregate.ID().Bytes(),
			Seq:      seq,
			Author:   comment.Author(),
			Body:     comment.Body(),
			At:       comment.At(),
		})
	}
	return dtos
}

func toDomain(dto TicketDTO, commentDTOs []CommentDTO) (*ticket.Ticket, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var bookingID *kernel.UUID
	if dto.BookingID != nil {
		bID, bookingErr := kernel.UUIDFromBytes((*dto.BookingID)[:])
		if bookingErr != nil {
			return nil, bookingErr
		}
		bookingID = &bID
	}

	priority, err := ticket.PriorityFromString(dto.Priority)
	if err != nil {
		return nil, err
	}

	status, err := ticket.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	comments := make([]ticket.Comment, 0, len(commentDTOs))
	for _, row := range commentDTOs {
		comment, rowErr := ticket.RestoreComment(row.Author, row.Body, row.At)
		if rowErr != nil {
			return nil, rowErr
		}
		comments = append(comments, comment)
	}

	return ticket.RestoreTicket(
		id,
		bookingID,
		dto.Contact,
		dto.Subject,
		dto.Body,
		priority,
		dto.Assignee,
		status,
		comments,
		dto.CreatedAt,
	)
}
