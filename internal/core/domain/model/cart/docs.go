// Package cart provides domain entities and business logic for checkout carts.
// It implements the Cart aggregate root: the pre-booking state a customer
// builds up while choosing a vehicle category, dates and addresses.
//
// The package includes:
//   - Cart: The aggregate root holding the draft rental and its contact details
//   - Status: A state machine covering conversion, abandonment and expiry
//
// Key business rules:
//   - A cart needs at least one contact channel (email or phone)
//   - Carts are editable only while Active
//   - An idle Active cart becomes Abandoned; an idle Abandoned cart expires
//   - Checkout converts Active or Abandoned carts; Converted and Expired are final
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package cart
