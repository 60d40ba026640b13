package queries_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/mapsensemedia/betterrental/internal/adapters/out/postgres/bookingrepo"
	"github.com/mapsensemedia/betterrental/internal/adapters/out/postgres/vehiclerepo"
	"github.com/mapsensemedia/betterrental/internal/core/application/usecases/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// memoryCache is a map-backed AvailabilityCache for handler tests.
type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]byte)}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	payload, ok := c.entries[key]
	return payload, ok, nil
}

func (c *memoryCache) Set(_ context.Context, key string, payload []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = payload
	return nil
}

func (c *memoryCache) Invalidate(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string][]byte)
	return nil
}

type SearchAvailabilityQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	cache     *memoryCache
	handler   queries.SearchAvailabilityQueryHandler
}

func (suite *SearchAvailabilityQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&vehiclerepo.CategoryDTO{},
		&vehiclerepo.UnitDTO{},
		&bookingrepo.BookingDTO{},
	)
	suite.Require().NoError(err)
}

func (suite *SearchAvailabilityQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE categories, units, bookings").Error
	suite.Require().NoError(err)

	suite.cache = newMemoryCache()
	suite.handler = queries.NewSearchAvailabilityQueryHandler(suite.db, suite.cache)
}

func (suite *SearchAvailabilityQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *SearchAvailabilityQueryHandlerTestSuite) seedCategory(name string, active bool) uuid.UUID {
	id := uuid.New()
	err := suite.db.Create(&vehiclerepo.CategoryDTO{
		ID:           id,
		Name:         name,
		Class:        "Compact",
		Seats:        5,
		Transmission: "Automatic",
		DailyRate:    vehiclerepo.MoneyDTO{Amount: 5000, Currency: "USD"},
		Deposit:      vehiclerepo.MoneyDTO{Amount: 20000, Currency: "USD"},
		DeliveryFee:  vehiclerepo.MoneyDTO{Amount: 1500, Currency: "USD"},
		Active:       active,
	}).Error
	suite.Require().NoError(err)
	return id
}

func (suite *SearchAvailabilityQueryHandlerTestSuite) seedUnit(categoryID uuid.UUID, plate string, status string) {
	err := suite.db.Create(&vehiclerepo.UnitDTO{
		ID:         uuid.New(),
		CategoryID: categoryID,
		Plate:      plate,
		VIN:        "JT2BF22K1W0" + plate,
		Year:       2023,
		OdometerKm: 10000,
		Status:     status,
	}).Error
	suite.Require().NoError(err)
}

func (suite *SearchAvailabilityQueryHandlerTestSuite) seedBooking(
	categoryID uuid.UUID,
	start time.Time,
	end time.Time,
	status string,
) {
	err := suite.db.Create(&bookingrepo.BookingDTO{
		ID:          uuid.New(),
		CustomerID:  uuid.New(),
		CategoryID:  categoryID,
		PeriodStart: start,
		PeriodEnd:   end,
		Status:      status,
		CreatedAt:   time.Now().UTC(),
	}).Error
	suite.Require().NoError(err)
}

func (suite *SearchAvailabilityQueryHandlerTestSuite) TestHandle_CountsFreeUnits() {
	ctx := context.Background()
	start := time.Now().UTC().Add(24 * time.Hour)
	end := start.Add(72 * time.Hour)

	categoryID := suite.seedCategory("Toyota Corolla or similar", true)
	suite.seedUnit(categoryID, "B100XY", "Available")
	suite.seedUnit(categoryID, "B101XY", "Available")
	suite.seedUnit(categoryID, "B102XY", "Maintenance")

	// One overlapping booking claims a unit, one cancelled booking does not.
	suite.seedBooking(categoryID, start, end, "Confirmed")
	suite.seedBooking(categoryID, start, end, "Cancelled")

	query, err := queries.NewSearchAvailabilityQuery(start, end)
	suite.Require().NoError(err)

	results, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(results, 1)
	suite.Equal(categoryID.String(), results[0].CategoryID)
	suite.Equal(1, results[0].FreeUnits)
	suite.Equal(int64(5000), results[0].DailyRate)
	suite.Equal("USD", results[0].Currency)
}

func (suite *SearchAvailabilityQueryHandlerTestSuite) TestHandle_FullyBookedCategoryHidden() {
	ctx := context.Background()
	start := time.Now().UTC().Add(24 * time.Hour)
	end := start.Add(48 * time.Hour)

	categoryID := suite.seedCategory("Ford Transit or similar", true)
	suite.seedUnit(categoryID, "B200XY", "Available")
	suite.seedBooking(categoryID, start, end, "Active")

	query, err := queries.NewSearchAvailabilityQuery(start, end)
	suite.Require().NoError(err)

	results, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Empty(results)
}

func (suite *SearchAvailabilityQueryHandlerTestSuite) TestHandle_InactiveCategoryHidden() {
	ctx := context.Background()
	start := time.Now().UTC().Add(24 * time.Hour)

	categoryID := suite.seedCategory("Retired fleet", false)
	suite.seedUnit(categoryID, "B300XY", "Available")

	query, err := queries.NewSearchAvailabilityQuery(start, start.Add(24*time.Hour))
	suite.Require().NoError(err)

	results, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Empty(results)
}

func (suite *SearchAvailabilityQueryHandlerTestSuite) TestHandle_NonOverlappingBookingIgnored() {
	ctx := context.Background()
	start := time.Now().UTC().Add(24 * time.Hour)
	end := start.Add(48 * time.Hour)

	categoryID := suite.seedCategory("BMW 3 Series or similar", true)
	suite.seedUnit(categoryID, "B400XY", "Available")
	suite.seedBooking(categoryID, end.Add(time.Hour), end.Add(49*time.Hour), "Confirmed")

	query, err := queries.NewSearchAvailabilityQuery(start, end)
	suite.Require().NoError(err)

	results, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(results, 1)
	suite.Equal(1, results[0].FreeUnits)
}

func (suite *SearchAvailabilityQueryHandlerTestSuite) TestHandle_ServesFromCache() {
	ctx := context.Background()
	start := time.Now().UTC().Add(24 * time.Hour)
	end := start.Add(48 * time.Hour)

	categoryID := suite.seedCategory("Audi A4 or similar", true)
	suite.seedUnit(categoryID, "B500XY", "Available")

	query, err := queries.NewSearchAvailabilityQuery(start, end)
	suite.Require().NoError(err)

	first, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(first, 1)

	// A new unit appears, but the cached payload is served until invalidation.
	suite.seedUnit(categoryID, "B501XY", "Available")

	cached, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(cached, 1)
	suite.Equal(1, cached[0].FreeUnits)

	err = suite.cache.Invalidate(ctx)
	suite.Require().NoError(err)

	fresh, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(fresh, 1)
	suite.Equal(2, fresh[0].FreeUnits)
}

func TestSearchAvailabilityQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SearchAvailabilityQueryHandlerTestSuite))
}
