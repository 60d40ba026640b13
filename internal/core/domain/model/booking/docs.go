// Package booking provides domain entities and business logic for rental
// reservations. It implements the Booking aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Booking: The aggregate root that manages reservation identity, the rental
//     period, addresses, and the lifecycle state
//   - Charges: An immutable financial snapshot priced at checkout time
//   - Status: A state machine that enforces valid booking status transitions
//
// Key business rules:
//   - Bookings must reference a valid customer and vehicle category
//   - Booking status follows a defined workflow: Pending -> Confirmed -> Active -> Completed
//   - Pending and Confirmed bookings can be cancelled; Active ones cannot
//   - A vehicle unit is assigned on confirmation and required from then on
//   - The financial snapshot must satisfy Total = Subtotal - Discount + DeliveryFee
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package booking
