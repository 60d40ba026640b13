// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern. A unit of work spans one business transaction: repositories
// obtained from it share the transaction started by Begin, and aggregates
// written through them are tracked until Commit or Rollback.
//
// Repositories obtained before Begin execute on the main connection, which is
// how read-only operations (quotes, logins, reminder scans) avoid opening a
// transaction at all.
package postgres

import (
	"context"

	"github.com/mapsensemedia/betterrental/internal/adapters/out/postgres/accountrepo"
	"github.com/mapsensemedia/betterrental/internal/adapters/out/postgres/auditrepo"
	"github.com/mapsensemedia/betterrental/internal/adapters/out/postgres/bookingrepo"
	"github.com/mapsensemedia/betterrental/internal/adapters/out/postgres/cartrepo"
	"github.com/mapsensemedia/betterrental/internal/adapters/out/postgres/deliveryrepo"
	"github.com/mapsensemedia/betterrental/internal/adapters/out/postgres/depositrepo"
	"github.com/mapsensemedia/betterrental/internal/adapters/out/postgres/ticketrepo"
	"github.com/mapsensemedia/betterrental/internal/adapters/out/postgres/vehiclerepo"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances using a shared GORM
// database connection. Each business operation gets a fresh unit of work,
// isolated from concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork instance with its own transaction state
// and aggregate tracking.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction across the repositories
// of a business operation. Repository accessors return implementations bound
// to the current transaction when one is active, or to the main connection
// otherwise.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction for the unit of work.
// Calling Begin again on an instance with an open transaction is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns error if no active transaction exists or if the commit fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns error if no active transaction exists or if the rollback fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// BookingRepository returns a BookingRepository bound to the current transaction.
func (uow *GormUnitOfWork) BookingRepository() ports.BookingRepository {
	return bookingrepo.NewGormBookingRepository(uow.conn(), uow)
}

// DamageReportRepository returns a DamageReportRepository bound to the current transaction.
func (uow *GormUnitOfWork) DamageReportRepository() ports.DamageReportRepository {
	return bookingrepo.NewGormDamageReportRepository(uow.conn(), uow)
}

// CategoryRepository returns a CategoryRepository bound to the current transaction.
func (uow *GormUnitOfWork) CategoryRepository() ports.CategoryRepository {
	return vehiclerepo.NewGormCategoryRepository(uow.conn(), uow)
}

// UnitRepository returns a UnitRepository bound to the current transaction.
func (uow *GormUnitOfWork) UnitRepository() ports.UnitRepository {
	return vehiclerepo.NewGormUnitRepository(uow.conn(), uow)
}

// DeliveryRepository returns a DeliveryRepository bound to the current transaction.
func (uow *GormUnitOfWork) DeliveryRepository() ports.DeliveryRepository {
	return deliveryrepo.NewGormDeliveryRepository(uow.conn(), uow)
}

// DriverRepository returns a DriverRepository bound to the current transaction.
func (uow *GormUnitOfWork) DriverRepository() ports.DriverRepository {
	return deliveryrepo.NewGormDriverRepository(uow.conn(), uow)
}

// CartRepository returns a CartRepository bound to the current transaction.
func (uow *GormUnitOfWork) CartRepository() ports.CartRepository {
	return cartrepo.NewGormCartRepository(uow.conn(), uow)
}

// TicketRepository returns a TicketRepository bound to the current transaction.
func (uow *GormUnitOfWork) TicketRepository() ports.TicketRepository {
	return ticketrepo.NewGormTicketRepository(uow.conn(), uow)
}

// DepositRepository returns a DepositRepository bound to the current transaction.
func (uow *GormUnitOfWork) DepositRepository() ports.DepositRepository {
	return depositrepo.NewGormDepositRepository(uow.conn(), uow)
}

// AccountRepository returns an AccountRepository bound to the current transaction.
func (uow *GormUnitOfWork) AccountRepository() ports.AccountRepository {
	return accountrepo.NewGormAccountRepository(uow.conn(), uow)
}

// AuditRepository returns an AuditRepository bound to the current transaction.
func (uow *GormUnitOfWork) AuditRepository() ports.AuditRepository {
	return auditrepo.NewGormAuditRepository(uow.conn(), uow)
}

// TrackAggregate registers a domain aggregate as modified within this unit of
// work. Repository implementations call it on every successful write.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
