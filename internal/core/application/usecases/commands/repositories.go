// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"github.com/mapsensemedia/betterrental/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// BookingRepoFactory provides access to the booking repository within a transaction.
	BookingRepoFactory interface {
		BookingRepository() ports.BookingRepository
	}

	// CategoryRepoFactory provides access to the category repository within a transaction.
	CategoryRepoFactory interface {
		CategoryRepository() ports.CategoryRepository
	}

	// UnitRepoFactory provides access to the unit repository within a transaction.
	UnitRepoFactory interface {
		UnitRepository() ports.UnitRepository
	}

	// DeliveryRepoFactory provides access to the delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// DriverRepoFactory provides access to the driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// CartRepoFactory provides access to the cart repository within a transaction.
	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	// TicketRepoFactory provides access to the ticket repository within a transaction.
	TicketRepoFactory interface {
		TicketRepository() ports.TicketRepository
	}

	// DepositRepoFactory provides access to the deposit repository within a transaction.
	DepositRepoFactory interface {
		DepositRepository() ports.DepositRepository
	}

	// AccountRepoFactory provides access to the account repository within a transaction.
	AccountRepoFactory interface {
		AccountRepository() ports.AccountRepository
	}

	// DamageReportRepoFactory provides access to the damage report repository within a transaction.
	DamageReportRepoFactory interface {
		DamageReportRepository() ports.DamageReportRepository
	}

	// AuditRepoFactory provides access to the audit repository within a transaction.
	AuditRepoFactory interface {
		AuditRepository() ports.AuditRepository
	}

	// CartUoW manages transactions for cart create/update operations.
	// The category repository is needed to reprice the quote server-side.
	CartUoW interface {
		TxManager
		CartRepoFactory
		CategoryRepoFactory
	}

	// CartUoWFactory creates new cart unit of work instances.
	CartUoWFactory interface {
		Create() CartUoW
	}

	// CheckoutUoW manages the checkout transaction: it converts a cart into a
	// booking with its deposit and handover delivery in one atomic write.
	CheckoutUoW interface {
		TxManager
		CartRepoFactory
		CategoryRepoFactory
		UnitRepoFactory
		BookingRepoFactory
		DepositRepoFactory
		DeliveryRepoFactory
	}

	// CheckoutUoWFactory creates new checkout unit of work instances.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// BookingUoW manages transactions for booking confirmation and cancellation,
	// which touch the booking, its unit, deposit and open deliveries. The
	// account repository backs the ownership check on customer-initiated
	// cancellations.
	BookingUoW interface {
		TxManager
		BookingRepoFactory
		UnitRepoFactory
		DepositRepoFactory
		DeliveryRepoFactory
		AccountRepoFactory
		AuditRepoFactory
	}

	// BookingUoWFactory creates new booking unit of work instances.
	BookingUoWFactory interface {
		Create() BookingUoW
	}

	// DeliveryUoW manages transactions for delivery workflow operations.
	// The booking and unit repositories are needed for the terminal
	// delivered transition's side effects.
	DeliveryUoW interface {
		TxManager
		DeliveryRepoFactory
		DriverRepoFactory
		BookingRepoFactory
		UnitRepoFactory
		AuditRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// ReturnUoW manages the return settlement transaction: booking completion,
	// damage reports, deposit settlement and the unit's release.
	ReturnUoW interface {
		TxManager
		BookingRepoFactory
		UnitRepoFactory
		DepositRepoFactory
		DamageReportRepoFactory
		AuditRepoFactory
	}

	// ReturnUoWFactory creates new return unit of work instances.
	ReturnUoWFactory interface {
		Create() ReturnUoW
	}

	// FleetUoW manages transactions for fleet administration.
	FleetUoW interface {
		TxManager
		CategoryRepoFactory
		UnitRepoFactory
		AuditRepoFactory
	}

	// FleetUoWFactory creates new fleet unit of work instances.
	FleetUoWFactory interface {
		Create() FleetUoW
	}

	// TicketUoW manages transactions for support ticket operations.
	TicketUoW interface {
		TxManager
		TicketRepoFactory
	}

	// TicketUoWFactory creates new ticket unit of work instances.
	TicketUoWFactory interface {
		Create() TicketUoW
	}

	// AccountUoW manages transactions for account operations.
	AccountUoW interface {
		TxManager
		AccountRepoFactory
	}

	// AccountUoWFactory creates new account unit of work instances.
	AccountUoWFactory interface {
		Create() AccountUoW
	}
)
