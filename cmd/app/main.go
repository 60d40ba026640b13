package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mapsensemedia/betterrental/cmd"
	_ "github.com/mapsensemedia/betterrental/docs"
	httpadapter "github.com/mapsensemedia/betterrental/internal/adapters/in/http"
	"github.com/mapsensemedia/betterrental/internal/adapters/in/ws"
	"github.com/mapsensemedia/betterrental/internal/adapters/out/diskstore"
	"github.com/mapsensemedia/betterrental/internal/adapters/out/postgres/accountrepo"
	"github.com/mapsensemedia/betterrental/internal/adapters/out/postgres/auditrepo"
	"github.com/mapsensemedia/betterrental/internal/adapters/out/postgres/bookingrepo"
	"github.com/mapsensemedia/betterrental/internal/adapters/out/postgres/cartrepo"
	"github.com/mapsensemedia/betterrental/internal/adapters/out/postgres/deliveryrepo"
	"github.com/mapsensemedia/betterrental/internal/adapters/out/postgres/depositrepo"
	"github.com/mapsensemedia/betterrental/internal/adapters/out/postgres/ticketrepo"
	"github.com/mapsensemedia/betterrental/internal/adapters/out/postgres/vehiclerepo"
	"github.com/mapsensemedia/betterrental/internal/adapters/out/rediscache"
	"github.com/mapsensemedia/betterrental/internal/adapters/out/s3store"
	"github.com/mapsensemedia/betterrental/internal/core/ports"
	"github.com/mapsensemedia/betterrental/internal/jobs"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	"gopkg.in/natefinch/lumberjack.v2"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := newLogger(configs)

	gormDB, err := gorm.Open(gorm_postgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = migrate(gormDB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	documents, err := newDocumentStore(configs)
	if err != nil {
		log.Fatalf("Failed to create document store: %v", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     configs.RedisAddr,
		Password: configs.RedisPassword,
	})
	cache := rediscache.NewCache(redisClient)

	hub := ws.NewHub(logger)

	app := cmd.NewCompositionRoot(configs, gormDB, documents, cache, hub, logger)

	jobManager := jobs.NewJobManager(
		app.CreateSweepIdleCartsCommandHandler(),
		app.CreateSendPickupRemindersCommandHandler(),
		configs.AbandonAfter(),
		configs.ExpireAfter(),
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:         goDotEnvVariable("HTTP_PORT"),
		DBHost:           goDotEnvVariable("DB_HOST"),
		DBPort:           goDotEnvVariable("DB_PORT"),
		DBUser:           goDotEnvVariable("DB_USER"),
		DBPassword:       goDotEnvVariable("DB_PASSWORD"),
		DBName:           goDotEnvVariable("DB_NAME"),
		DBSslMode:        goDotEnvVariable("DB_SSLMODE"),
		RedisAddr:        goDotEnvVariable("REDIS_ADDR"),
		RedisPassword:    goDotEnvVariable("REDIS_PASSWORD"),
		StripeSecretKey:  goDotEnvVariable("STRIPE_SECRET_KEY"),
		TwilioAccountSID: goDotEnvVariable("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:  goDotEnvVariable("TWILIO_AUTH_TOKEN"),
		TwilioFromNumber: goDotEnvVariable("TWILIO_FROM_NUMBER"),
		AWSRegion:        goDotEnvVariable("AWS_REGION"),
		S3Bucket:         goDotEnvVariable("S3_BUCKET"),
		S3PublicURL:      goDotEnvVariable("S3_PUBLIC_URL"),
		DocumentsDir:     goDotEnvVariable("DOCUMENTS_DIR"),
		JWTSecret:        goDotEnvVariable("JWT_SECRET"),
		JWTTTL:           goDotEnvVariable("JWT_TTL"),
		BcryptCost:       goDotEnvVariable("BCRYPT_COST"),
		CompanyName:      goDotEnvVariable("COMPANY_NAME"),
		CartAbandonAfter: goDotEnvVariable("CART_ABANDON_AFTER"),
		CartExpireAfter:  goDotEnvVariable("CART_EXPIRE_AFTER"),
		LogFile:          goDotEnvVariable("LOG_FILE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

// newLogger builds the JSON application logger. With LOG_FILE set, output
// also goes to a size-rotated file.
func newLogger(configs cmd.Config) *slog.Logger {
	var out io.Writer = os.Stdout
	if configs.LogFile != "" {
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   configs.LogFile,
			MaxSize:    100, // megabytes
			MaxBackups: 5,
			MaxAge:     30, // days
			Compress:   true,
		})
	}

	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

func migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
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
}

// newDocumentStore picks S3 when a bucket is configured and falls back to
// local disk for development setups.
func newDocumentStore(configs cmd.Config) (ports.DocumentStore, error) {
	if configs.S3Bucket != "" {
		awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(configs.AWSRegion))
		if err != nil {
			return nil, fmt.Errorf("load aws config: %w", err)
		}
		return s3store.NewStore(s3.NewFromConfig(awsCfg), configs.S3Bucket, configs.S3PublicURL), nil
	}

	dir := configs.DocumentsDir
	if dir == "" {
		dir = "documents"
	}
	return diskstore.NewStore(dir, "")
}

func startWebServer(app *cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	validator, err := httpadapter.OpenAPIValidationMiddleware("api/openapi.yaml")
	if err != nil {
		log.Fatalf("Failed to load API contract: %v", err)
	}
	e.Use(validator)

	handlers := httpadapter.Handlers{
		Authenticate:           app.CreateAuthenticateCommandHandler(),
		CreateAccount:          app.CreateCreateAccountCommandHandler(),
		CreateCart:             app.CreateCreateCartCommandHandler(),
		UpdateCart:             app.CreateUpdateCartCommandHandler(),
		CheckoutCart:           app.CreateCheckoutCartCommandHandler(),
		CancelBooking:          app.CreateCancelBookingCommandHandler(),
		ConfirmBooking:         app.CreateConfirmBookingCommandHandler(),
		ScheduleReturnDelivery: app.CreateScheduleReturnDeliveryCommandHandler(),
		AssignDriver:           app.CreateAssignDriverCommandHandler(),
		AdvanceDelivery:        app.CreateAdvanceDeliveryCommandHandler(),
		SetDeliveryStatus:      app.CreateSetDeliveryStatusCommandHandler(),
		ReportDeliveryIssue:    app.CreateReportDeliveryIssueCommandHandler(),
		CompleteReturn:         app.CreateCompleteReturnCommandHandler(),
		CreateCategory:         app.CreateCreateCategoryCommandHandler(),
		UpdateCategory:         app.CreateUpdateCategoryCommandHandler(),
		AddUnit:                app.CreateAddUnitCommandHandler(),
		ChangeUnitStatus:       app.CreateChangeUnitStatusCommandHandler(),
		NotifyCartRecovery:     app.CreateNotifyCartRecoveryCommandHandler(),
		OpenTicket:             app.CreateOpenTicketCommandHandler(),
		ReplyTicket:            app.CreateReplyTicketCommandHandler(),
		SetTicketStatus:        app.CreateSetTicketStatusCommandHandler(),

		SearchAvailability:  app.CreateSearchAvailabilityQueryHandler(),
		GetQuote:            app.CreateGetQuoteQueryHandler(),
		GetCart:             app.CreateGetCartQueryHandler(),
		GetBooking:          app.CreateGetBookingQueryHandler(),
		ListBookings:        app.CreateListBookingsQueryHandler(),
		GetCalendar:         app.CreateGetCalendarQueryHandler(),
		ListAbandonedCarts:  app.CreateListAbandonedCartsQueryHandler(),
		ListDeliveries:      app.CreateListDeliveriesQueryHandler(),
		GetDelivery:         app.CreateGetDeliveryQueryHandler(),
		ListTickets:         app.CreateListTicketsQueryHandler(),
		GetTicket:           app.CreateGetTicketQueryHandler(),
		FleetOverview:       app.CreateFleetOverviewQueryHandler(),
		GetDepositStatement: app.CreateGetDepositStatementQueryHandler(),
		ListAuditEntries:    app.CreateListAuditEntriesQueryHandler(),
	}

	server := httpadapter.NewServer(handlers, app.TokenVerifier(), app.Hub(), app.DocumentStore())
	server.RegisterRoutes(e)

	go func() {
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); startErr != nil {
			e.Logger.Info("shutting down the server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = e.Shutdown(ctx); err != nil {
		e.Logger.Fatal(err)
	}
}
