// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the rental system. It implements business
// workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - Pricer: Computes the financial snapshot of a rental quote
//   - CancellationPolicy: Computes tiered cancellation fees
//   - DeliveryDispatcher: Finds and assigns drivers to delivery runs
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
