// Package deposit provides domain entities and business logic for security
// deposit handling. It implements the Deposit aggregate root: the amount held
// at checkout plus an append-only ledger of release and withhold entries.
//
// The package includes:
//   - Deposit: The aggregate root tracking the held amount, its ledger and settlement
//   - Entry: An immutable ledger row recording a single release or withholding
//   - EntryKind: The kind of a ledger row (Release or Withhold)
//
// Key business rules:
//   - Entry amounts are always positive
//   - A release or withholding never exceeds the remaining deposit
//     (remaining = held - sum of released - sum of withheld)
//   - The ledger is append-only: entries are never updated or removed
//   - A settled deposit accepts no further entries
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package deposit
