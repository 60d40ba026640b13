package postgres_test

import (
	"context"
	"testing"
	"time"

	postgresadapter "github.com/mapsensemedia/betterrental/internal/adapters/out/postgres"
	"github.com/mapsensemedia/betterrental/internal/adapters/out/postgres/accountrepo"
	"github.com/mapsensemedia/betterrental/internal/adapters/out/postgres/auditrepo"
	"github.com/mapsensemedia/betterrental/internal/adapters/out/postgres/bookingrepo"
	"github.com/mapsensemedia/betterrental/internal/adapters/out/postgres/cartrepo"
	"github.com/mapsensemedia/betterrental/internal/adapters/out/postgres/deliveryrepo"
	"github.com/mapsensemedia/betterrental/internal/adapters/out/postgres/depositrepo"
	"github.com/mapsensemedia/betterrental/internal/adapters/out/postgres/ticketrepo"
	"github.com/mapsensemedia/betterrental/internal/adapters/out/postgres/vehiclerepo"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/booking"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/delivery"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/deposit"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/vehicle"
	"github.com/mapsensemedia/betterrental/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM-based unit of work against
// a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite starts the PostgreSQL container, connects and migrates the schema.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&vehiclerepo.CategoryDTO{},
		&vehiclerepo.UnitDTO{},
		&cartrepo.CartDTO{},
		&bookingrepo.BookingDTO{},
		&bookingrepo.DamageReportDTO{},
		&deliveryrepo.DeliveryDTO{},
		&deliveryrepo.StatusChangeDTO{},
		&deliveryrepo.DriverDTO{},
		&depositrepo.DepositDTO{},
		&depositrepo.EntryDTO{},
		&ticketrepo.TicketDTO{},
		&ticketrepo.CommentDTO{},
		&accountrepo.AccountDTO{},
		&auditrepo.EntryDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgresadapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest truncates all tables so tests cannot interfere with each other.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(`TRUNCATE TABLE
		categories, units, carts, bookings, damage_reports,
		deliveries, delivery_status_changes, drivers,
		deposits, deposit_entries, tickets, ticket_comments,
		accounts, audit_entries`).Error
	suite.Require().NoError(err)
}

// TearDownSuite terminates the PostgreSQL container.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.BookingRepository())
	suite.NotNil(uow2.DeliveryRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Repeated begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Commit without an active transaction should fail")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Rollback without an active transaction should fail")
}

// TestUnitOfWork_CheckoutWorkflow persists a booking with its deposit and
// handover run in one transaction, the way checkout does.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CheckoutWorkflow() {
	ctx := context.Background()
	uow := suite.factory.Create()

	category := suite.createTestCategory(ctx, uow)
	testBooking := suite.newTestBooking(category.ID())

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.BookingRepository().Add(ctx, testBooking)
	suite.Require().NoError(err)

	testDeposit, err := deposit.NewDeposit(kernel.NewUUID(), testBooking.ID(), suite.money(20000))
	suite.Require().NoError(err)
	err = uow.DepositRepository().Add(ctx, testDeposit)
	suite.Require().NoError(err)

	run, err := delivery.NewDelivery(
		kernel.NewUUID(),
		testBooking.ID(),
		delivery.DirectionHandover,
		testBooking.Period().Start(),
		testBooking.PickupAddress(),
	)
	suite.Require().NoError(err)
	err = uow.DeliveryRepository().Add(ctx, run)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Everything must be visible through a fresh unit of work.
	newUow := suite.factory.Create()

	retrievedBooking, err := newUow.BookingRepository().Get(ctx, testBooking.ID())
	suite.Require().NoError(err)
	suite.Equal(booking.Pending, retrievedBooking.Status())

	retrievedDeposit, err := newUow.DepositRepository().GetByBooking(ctx, testBooking.ID())
	suite.Require().NoError(err)
	suite.Equal(int64(20000), retrievedDeposit.Remaining().Amount())

	openRuns, err := newUow.DeliveryRepository().GetOpenByBooking(ctx, testBooking.ID())
	suite.Require().NoError(err)
	suite.Len(openRuns, 1)
	suite.Equal(delivery.Unassigned, openRuns[0].Status())
}

// TestUnitOfWork_TransactionRollback verifies rollback discards writes across
// multiple repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	category := suite.createTestCategory(ctx, uow)
	testBooking := suite.newTestBooking(category.ID())

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.BookingRepository().Add(ctx, testBooking)
	suite.Require().NoError(err)

	testDeposit, err := deposit.NewDeposit(kernel.NewUUID(), testBooking.ID(), suite.money(20000))
	suite.Require().NoError(err)
	err = uow.DepositRepository().Add(ctx, testDeposit)
	suite.Require().NoError(err)

	_, err = uow.BookingRepository().Get(ctx, testBooking.ID())
	suite.Require().NoError(err, "Booking should be visible inside the transaction")

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.BookingRepository().Get(ctx, testBooking.ID())
	suite.Require().Error(err, "Booking should not exist after rollback")

	_, err = newUow.DepositRepository().GetByBooking(ctx, testBooking.ID())
	suite.Require().Error(err, "Deposit should not exist after rollback")
}

// TestUnitOfWork_WithoutTransaction verifies repositories work on the main
// connection before Begin, which read-only handlers rely on.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	category := suite.createTestCategory(ctx, uow)

	retrieved, err := uow.CategoryRepository().Get(ctx, category.ID())
	suite.Require().NoError(err)
	suite.Equal(category.ID(), retrieved.ID())

	newUow := suite.factory.Create()
	retrieved, err = newUow.CategoryRepository().Get(ctx, category.ID())
	suite.Require().NoError(err)
	suite.Equal(category.Name(), retrieved.Name())
}

// TestUnitOfWork_DeliveredHandoverWorkflow drives a run to Delivered and
// activates the booking in one transaction, mirroring the handover side
// effects.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_DeliveredHandoverWorkflow() {
	ctx := context.Background()
	uow := suite.factory.Create()

	category := suite.createTestCategory(ctx, uow)
	unit := suite.createTestUnit(ctx, uow, category.ID())

	err := unit.Reserve()
	suite.Require().NoError(err)
	err = uow.UnitRepository().Update(ctx, unit)
	suite.Require().NoError(err)

	testBooking := suite.newTestBooking(category.ID())
	err = uow.BookingRepository().Add(ctx, testBooking)
	suite.Require().NoError(err)

	unitID := unit.ID()
	err = testBooking.Confirm(unitID)
	suite.Require().NoError(err)
	err = uow.BookingRepository().Update(ctx, testBooking)
	suite.Require().NoError(err)

	driver, err := delivery.NewDriver(kernel.NewUUID(), "Dana Petrova", "+15550100")
	suite.Require().NoError(err)
	err = uow.DriverRepository().Add(ctx, driver)
	suite.Require().NoError(err)

	run, err := delivery.NewDelivery(
		kernel.NewUUID(),
		testBooking.ID(),
		delivery.DirectionHandover,
		testBooking.Period().Start(),
		testBooking.PickupAddress(),
	)
	suite.Require().NoError(err)
	err = run.AssignDriver(driver.ID())
	suite.Require().NoError(err)
	err = uow.DeliveryRepository().Add(ctx, run)
	suite.Require().NoError(err)

	// Walk the run through the full handover in one transaction.
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	for _, stage := range []delivery.Status{
		delivery.PickedUp, delivery.EnRoute, delivery.Arrived, delivery.Delivered,
	} {
		err = run.TransitionTo(stage, "Dana Petrova", "")
		suite.Require().NoError(err)
	}
	err = uow.DeliveryRepository().Update(ctx, run)
	suite.Require().NoError(err)

	err = testBooking.Activate()
	suite.Require().NoError(err)
	err = uow.BookingRepository().Update(ctx, testBooking)
	suite.Require().NoError(err)

	err = unit.Rent()
	suite.Require().NoError(err)
	err = uow.UnitRepository().Update(ctx, unit)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	retrievedRun, err := newUow.DeliveryRepository().Get(ctx, run.ID())
	suite.Require().NoError(err)
	suite.Equal(delivery.Delivered, retrievedRun.Status())
	suite.Len(retrievedRun.StatusLog(), 4, "All transitions should persist as log rows")

	retrievedBooking, err := newUow.BookingRepository().Get(ctx, testBooking.ID())
	suite.Require().NoError(err)
	suite.Equal(booking.Active, retrievedBooking.Status())

	retrievedUnit, err := newUow.UnitRepository().Get(ctx, unitID)
	suite.Require().NoError(err)
	suite.Equal(vehicle.UnitStatusRented, retrievedUnit.Status())

	openRuns, err := newUow.DeliveryRepository().GetAllOpen(ctx)
	suite.Require().NoError(err)
	suite.Empty(openRuns, "Delivered runs are no longer open")
}

// TestUnitOfWork_DepositLedgerAppend verifies ledger rows are appended across
// separate updates and replay into the same remaining amount.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_DepositLedgerAppend() {
	ctx := context.Background()
	uow := suite.factory.Create()

	category := suite.createTestCategory(ctx, uow)
	testBooking := suite.newTestBooking(category.ID())
	err := uow.BookingRepository().Add(ctx, testBooking)
	suite.Require().NoError(err)

	testDeposit, err := deposit.NewDeposit(kernel.NewUUID(), testBooking.ID(), suite.money(20000))
	suite.Require().NoError(err)
	err = uow.DepositRepository().Add(ctx, testDeposit)
	suite.Require().NoError(err)

	// First settlement step: withhold a damage charge.
	err = testDeposit.Withhold(suite.money(4500), "scratched bumper", "agent-1")
	suite.Require().NoError(err)
	err = uow.DepositRepository().Update(ctx, testDeposit)
	suite.Require().NoError(err)

	// Second step on a freshly loaded aggregate: release the remainder.
	newUow := suite.factory.Create()
	reloaded, err := newUow.DepositRepository().GetByBooking(ctx, testBooking.ID())
	suite.Require().NoError(err)
	suite.Equal(int64(15500), reloaded.Remaining().Amount())

	err = reloaded.Release(reloaded.Remaining(), "rental completed", "agent-1")
	suite.Require().NoError(err)
	err = reloaded.Settle()
	suite.Require().NoError(err)
	err = newUow.DepositRepository().Update(ctx, reloaded)
	suite.Require().NoError(err)

	final, err := suite.factory.Create().DepositRepository().Get(ctx, testDeposit.ID())
	suite.Require().NoError(err)
	suite.True(final.IsSettled())
	suite.True(final.Remaining().IsZero())
	suite.Len(final.Entries(), 2, "Both ledger rows should persist")
}

func (suite *UnitOfWorkIntegrationTestSuite) money(amount int64) kernel.Money {
	money, err := kernel.NewMoney(amount, "USD")
	suite.Require().NoError(err)
	return money
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestCategory(
	ctx context.Context,
	uow ports.UnitOfWork,
) *vehicle.Category {
	category, err := vehicle.NewCategory(
		kernel.NewUUID(),
		"Toyota Corolla or similar",
		"Compact",
		5,
		vehicle.TransmissionAutomatic,
		suite.money(5000),
		suite.money(20000),
		suite.money(1500),
	)
	suite.Require().NoError(err)

	err = uow.CategoryRepository().Add(ctx, category)
	suite.Require().NoError(err)
	return category
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestUnit(
	ctx context.Context,
	uow ports.UnitOfWork,
	categoryID kernel.UUID,
) *vehicle.Unit {
	unit, err := vehicle.NewUnit(
		kernel.NewUUID(),
		categoryID,
		"B 1234 XY",
		"JT2BF22K1W0123456",
		2022,
		42000,
	)
	suite.Require().NoError(err)

	err = uow.UnitRepository().Add(ctx, unit)
	suite.Require().NoError(err)
	return unit
}

func (suite *UnitOfWorkIntegrationTestSuite) newTestBooking(categoryID kernel.UUID) *booking.Booking {
	start := time.Now().UTC().Add(96 * time.Hour).Truncate(time.Second)
	period, err := kernel.NewRentalPeriod(start, start.Add(72*time.Hour))
	suite.Require().NoError(err)

	charges, err := booking.NewCharges(
		suite.money(15000),
		suite.money(0),
		suite.money(1500),
		suite.money(16500),
		suite.money(20000),
	)
	suite.Require().NoError(err)

	testBooking, err := booking.NewBooking(
		kernel.NewUUID(),
		kernel.NewUUID(),
		categoryID,
		period,
		"12 Ocean Drive",
		"12 Ocean Drive",
		charges,
	)
	suite.Require().NoError(err)
	return testBooking
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
