package ticket

import (
	"errors"
	"fmt"
	"time"

	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/pkg/errs"
	"github.com/mapsensemedia/betterrental/internal/pkg/guard"
)

// ErrTicketIsNotConstructed is returned when a Ticket instance was not created
// through the NewTicket or RestoreTicket factory methods.
var ErrTicketIsNotConstructed = errors.New("Ticket must be created via NewTicket or RestoreTicket constructors")

// ErrTicketIsClosed indicates an attempt to reply to or mutate a closed ticket.
var ErrTicketIsClosed = errors.New("ticket is closed")

// Comment is a single immutable row of a ticket's reply thread.
type Comment struct {
	author string
	body   string
	at     time.Time
}

// RestoreComment reconstructs a thread Comment from persistent storage.
func RestoreComment(author string, body string, at time.Time) (Comment, error) {
	if author == "" {
		return Comment{}, errs.NewValueIsRequiredError("author")
	}
	if body == "" {
		return Comment{}, errs.NewValueIsRequiredError("body")
	}
	if at.IsZero() {
		return Comment{}, errs.NewValueIsRequiredError("at")
	}
	return Comment{author: author, body: body, at: at.UTC()}, nil
}

// Author returns who wrote the comment.
func (c Comment) Author() string { return c.author }

// Body returns the comment text.
func (c Comment) Body() string { return c.body }

// At returns when the comment was appended.
func (c Comment) At() time.Time { return c.at }

// Ticket is the aggregate root for a customer support request. It carries the
// original message, priority, an optional booking reference, the assignment
// and an append-only reply thread.
type Ticket struct {
	id kernel.UUID

	// bookingID links the ticket to a booking when the request concerns one
	bookingID *kernel.UUID

	contact  string
	subject  string
	body     string
	priority Priority
	assignee string
	status   Status
	comments []Comment

	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewTicket creates a new Open Ticket with validation.
//
// Parameters:
//   - id: Unique identifier for the ticket
//   - bookingID: Related booking, nil for general requests
//   - contact: Email or phone the customer wants answers on
//   - subject: Short summary line
//   - body: The original message
//   - priority: Urgency ranking
//
// Returns:
//   - *Ticket: The created ticket if all validations pass
//   - error: Validation error if any parameter is invalid
func NewTicket(
	id kernel.UUID,
	bookingID *kernel.UUID,
	contact string,
	subject string,
	body string,
	priority Priority,
) (*Ticket, error) {
	ticket := &Ticket{
		status:    Open,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		ticket.setID(id),
		ticket.setBookingID(bookingID),
		ticket.setContact(contact),
		ticket.setSubject(subject),
		ticket.setBody(body),
		ticket.setPriority(priority),
	); err != nil {
		return nil, err
	}

	return ticket, nil
}

// RestoreTicket reconstructs a Ticket aggregate from persistent storage.
func RestoreTicket(
	id kernel.UUID,
	bookingID *kernel.UUID,
	contact string,
	subject string,
	body string,
	priority Priority,
	assignee string,
	status Status,
	comments []Comment,
	createdAt time.Time,
) (*Ticket, error) {
	ticket := &Ticket{
		assignee: assignee,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		ticket.setID(id),
		ticket.setBookingID(bookingID),
		ticket.setContact(contact),
		ticket.setSubject(subject),
		ticket.setBody(body),
		ticket.setPriority(priority),
		ticket.setStatus(status),
		ticket.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	ticket.comments = append(ticket.comments, comments...)
	return ticket, nil
}

// Validate ensures the Ticket instance was properly constructed through a constructor.
func (t *Ticket) Validate() error {
	if t == nil {
		return ErrTicketIsNotConstructed
	}
	return t.guard.Validate(ErrTicketIsNotConstructed)
}

// IsEqual compares two tickets by their unique identifiers.
func (t *Ticket) IsEqual(other *Ticket) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the ticket's unique identifier.
func (t *Ticket) ID() kernel.UUID {
	return t.id
}

// BookingID returns the related booking's ID, nil for general requests.
func (t *Ticket) BookingID() *kernel.UUID {
	return t.bookingID
}

// Contact returns the email or phone the customer wants answers on.
func (t *Ticket) Contact() string {
	return t.contact
}

// Subject returns the short summary line.
func (t *Ticket) Subject() string {
	return t.subject
}

// Body returns the original message.
func (t *Ticket) Body() string {
	return t.body
}

// Priority returns the urgency ranking.
func (t *Ticket) Priority() Priority {
	return t.priority
}

// Assignee returns the agent working the ticket, empty when unassigned.
func (t *Ticket) Assignee() string {
	return t.assignee
}

// Status returns the current status of the ticket.
func (t *Ticket) Status() Status {
	return t.status
}

// Comments returns a copy of the reply thread in append order.
func (t *Ticket) Comments() []Comment {
	comments := make([]Comment, len(t.comments))
	copy(comments, t.comments)
	return comments
}

// CreatedAt returns the creation timestamp of the ticket.
func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

// Assign hands the ticket to an agent and moves an Open ticket to InProgress.
//
// Returns:
//   - nil on success
//   - error if the assignee is empty or the ticket is closed
func (t *Ticket) Assign(assignee string) error {
	if assignee == "" {
		return errs.NewValueIsRequiredError("assignee")
	}
	if t.status == Closed {
		return ErrTicketIsClosed
	}

	t.assignee = assignee
	if t.status == Open {
		t.status = InProgress
	}
	return nil
}

// Reply appends a comment to the thread.
//
// Returns:
//   - nil on success
//   - ErrTicketIsClosed for closed tickets
//   - Validation error if author or body is empty
func (t *Ticket) Reply(author string, body string) error {
	if t.status == Closed {
		return ErrTicketIsClosed
	}

	comment, err := RestoreComment(author, body, time.Now().UTC())
	if err != nil {
		return err
	}

	t.comments = append(t.comments, comment)
	return nil
}

// TransitionTo moves the ticket to the target status, validating the move
// against the workflow.
//
// Returns:
//   - nil on success
//   - error if the target status is invalid or the transition is not allowed
func (t *Ticket) TransitionTo(to Status) error {
	if err := to.Validate(); err != nil {
		return err
	}
	if !t.status.CanTransitionTo(to) {
		return errs.NewValueIsInvalidErrorWithCause("status transition is invalid",
			fmt.Errorf("cannot move a ticket from %s to %s", t.status, to))
	}

	t.status = to
	return nil
}

func (t *Ticket) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Ticket) setBookingID(bookingID *kernel.UUID) error {
	if bookingID == nil {
		return nil
	}
	if err := bookingID.Validate(); err != nil {
		return err
	}
	t.bookingID = bookingID
	return nil
}

func (t *Ticket) setContact(contact string) error {
	if contact == "" {
		return errs.NewValueIsRequiredError("contact")
	}
	t.contact = contact
	return nil
}

func (t *Ticket) setSubject(subject string) error {
	if subject == "" {
		return errs.NewValueIsRequiredError("subject")
	}
	t.subject = subject
	return nil
}

func (t *Ticket) setBody(body string) error {
	if body == "" {
		return errs.NewValueIsRequiredError("body")
	}
	t.body = body
	return nil
}

func (t *Ticket) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	t.priority = priority
	return nil
}

func (t *Ticket) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	t.status = status
	return nil
}

func (t *Ticket) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	t.createdAt = createdAt.UTC()
	return nil
}
