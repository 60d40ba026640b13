// Package delivery provides domain entities and business logic for moving
// vehicles between the lot and customer addresses. It implements the Delivery
// aggregate root with a table-driven status state machine and an append-only
// status log, plus the Driver entity the dispatcher assigns runs to.
//
// The package includes:
//   - Delivery: The aggregate root for one vehicle movement (handover or return)
//   - Status: A state machine over the ordered stages
//     Unassigned -> PickedUp -> EnRoute -> Arrived -> Delivered, with the
//     terminal side states Cancelled and Issue
//   - StatusChange: An immutable status log row (who, when, from, to, note)
//   - Driver: A delivery crew member
//
// Key business rules:
//   - A driver must be assigned before a run advances past Unassigned
//   - The driver can only be changed while the run is still Unassigned
//   - Every status change appends an immutable log row
//   - Cancelled and Issue are reachable from any non-final stage and are final
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package delivery
