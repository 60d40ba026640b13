// Package ticket provides domain entities and business logic for customer
// support tickets. It implements the Ticket aggregate root with a priority
// scale, an assignment workflow and an append-only comment thread.
//
// Key business rules:
//   - Ticket status follows a defined workflow: Open -> InProgress -> Resolved -> Closed,
//     with a shortcut Open -> Closed for tickets needing no work
//   - Comments are append-only and rejected on closed tickets
//   - Priority is one of Low, Normal, High, Urgent
package ticket
