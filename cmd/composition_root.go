package cmd

import (
	"log/slog"

	"github.com/mapsensemedia/betterrental/internal/adapters/in/ws"
	"github.com/mapsensemedia/betterrental/internal/adapters/out/auth"
	"github.com/mapsensemedia/betterrental/internal/adapters/out/pdfdocs"
	"github.com/mapsensemedia/betterrental/internal/adapters/out/postgres"
	"github.com/mapsensemedia/betterrental/internal/adapters/out/stripepay"
	"github.com/mapsensemedia/betterrental/internal/adapters/out/twiliosms"
	"github.com/mapsensemedia/betterrental/internal/core/application/usecases/commands"
	"github.com/mapsensemedia/betterrental/internal/core/application/usecases/queries"
	"github.com/mapsensemedia/betterrental/internal/core/domain/services"
	"github.com/mapsensemedia/betterrental/internal/core/ports"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. Everything the
// handlers need is created once here and shared.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	gateway   ports.PaymentGateway
	notifier  ports.Notifier
	renderer  ports.DocumentRenderer
	documents ports.DocumentStore
	cache     ports.AvailabilityCache
	hub       *ws.Hub

	hasher auth.BcryptHasher
	issuer auth.JWTIssuer

	logger *slog.Logger
}

// NewCompositionRoot builds the shared dependency graph. The document store
// and availability cache are injected because their construction depends on
// deployment choices made in main.
func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	documents ports.DocumentStore,
	cache ports.AvailabilityCache,
	hub *ws.Hub,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		gateway:    stripepay.NewGateway(config.StripeSecretKey),
		notifier:   twiliosms.NewNotifier(config.TwilioAccountSID, config.TwilioAuthToken, config.TwilioFromNumber),
		renderer:   pdfdocs.NewRenderer(config.CompanyName),
		documents:  documents,
		cache:      cache,
		hub:        hub,
		hasher:     auth.NewBcryptHasher(config.HashCost()),
		issuer:     auth.NewJWTIssuer(config.JWTSecret, config.TokenTTL()),
		logger:     logger,
	}
}

// TokenVerifier exposes the JWT issuer for the HTTP middleware.
func (c *CompositionRoot) TokenVerifier() auth.JWTIssuer {
	return c.issuer
}

// DocumentStore exposes the blob store for the HTTP agreement download.
func (c *CompositionRoot) DocumentStore() ports.DocumentStore {
	return c.documents
}

// Hub exposes the websocket hub for route registration.
func (c *CompositionRoot) Hub() *ws.Hub {
	return c.hub
}

func (c *CompositionRoot) CreateAuthenticateCommandHandler() commands.AuthenticateCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAuthenticateCommandHandler(f, c.hasher, c.issuer)
}

func (c *CompositionRoot) CreateCreateAccountCommandHandler() commands.CreateAccountCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateAccountCommandHandler(f, c.hasher)
}

func (c *CompositionRoot) CreateCreateCartCommandHandler() commands.CreateCartCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCartCommandHandler(f, services.NewPricer())
}

func (c *CompositionRoot) CreateUpdateCartCommandHandler() commands.UpdateCartCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateCartCommandHandler(f, services.NewPricer())
}

func (c *CompositionRoot) CreateSweepIdleCartsCommandHandler() commands.SweepIdleCartsCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSweepIdleCartsCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateNotifyCartRecoveryCommandHandler() commands.NotifyCartRecoveryCommandHandler {
	var f commands.CartUoWFactory = FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
	return commands.NewNotifyCartRecoveryCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateCheckoutCartCommandHandler() commands.CheckoutCartCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCheckoutCartCommandHandler(f, c.gateway, c.renderer, c.documents, c.notifier, c.cache, c.logger)
}

func (c *CompositionRoot) CreateConfirmBookingCommandHandler() commands.ConfirmBookingCommandHandler {
	var f commands.BookingUoWFactory = FuncBookingUoWFactory(func() commands.BookingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmBookingCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelBookingCommandHandler() commands.CancelBookingCommandHandler {
	var f commands.BookingUoWFactory = FuncBookingUoWFactory(func() commands.BookingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelBookingCommandHandler(f, services.NewCancellationPolicy(), c.gateway, c.cache, c.logger)
}

func (c *CompositionRoot) CreateCompleteReturnCommandHandler() commands.CompleteReturnCommandHandler {
	var f commands.ReturnUoWFactory = FuncReturnUoWFactory(func() commands.ReturnUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteReturnCommandHandler(f, c.gateway, c.renderer, c.documents, c.cache, c.logger)
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignDriverCommandHandler(f, services.NewDeliveryDispatcher())
}

func (c *CompositionRoot) CreateAdvanceDeliveryCommandHandler() commands.AdvanceDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceDeliveryCommandHandler(f, c.hub)
}

func (c *CompositionRoot) CreateSetDeliveryStatusCommandHandler() commands.SetDeliveryStatusCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetDeliveryStatusCommandHandler(f, c.hub)
}

func (c *CompositionRoot) CreateReportDeliveryIssueCommandHandler() commands.ReportDeliveryIssueCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReportDeliveryIssueCommandHandler(f, c.hub)
}

func (c *CompositionRoot) CreateScheduleReturnDeliveryCommandHandler() commands.ScheduleReturnDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewScheduleReturnDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateSendPickupRemindersCommandHandler() commands.SendPickupRemindersCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSendPickupRemindersCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateCreateCategoryCommandHandler() commands.CreateCategoryCommandHandler {
	return commands.NewCreateCategoryCommandHandler(c.fleetUoWFactory())
}

func (c *CompositionRoot) CreateUpdateCategoryCommandHandler() commands.UpdateCategoryCommandHandler {
	return commands.NewUpdateCategoryCommandHandler(c.fleetUoWFactory())
}

func (c *CompositionRoot) CreateAddUnitCommandHandler() commands.AddUnitCommandHandler {
	return commands.NewAddUnitCommandHandler(c.fleetUoWFactory())
}

func (c *CompositionRoot) CreateChangeUnitStatusCommandHandler() commands.ChangeUnitStatusCommandHandler {
	return commands.NewChangeUnitStatusCommandHandler(c.fleetUoWFactory())
}

func (c *CompositionRoot) CreateOpenTicketCommandHandler() commands.OpenTicketCommandHandler {
	return commands.NewOpenTicketCommandHandler(c.ticketUoWFactory())
}

func (c *CompositionRoot) CreateReplyTicketCommandHandler() commands.ReplyTicketCommandHandler {
	return commands.NewReplyTicketCommandHandler(c.ticketUoWFactory())
}

func (c *CompositionRoot) CreateSetTicketStatusCommandHandler() commands.SetTicketStatusCommandHandler {
	return commands.NewSetTicketStatusCommandHandler(c.ticketUoWFactory())
}

func (c *CompositionRoot) CreateSearchAvailabilityQueryHandler() queries.SearchAvailabilityQueryHandler {
	return queries.NewSearchAvailabilityQueryHandler(c.gormDB, c.cache)
}

func (c *CompositionRoot) CreateGetQuoteQueryHandler() queries.GetQuoteQueryHandler {
	return queries.NewGetQuoteQueryHandler(c.gormDB, services.NewPricer())
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBookingQueryHandler() queries.GetBookingQueryHandler {
	return queries.NewGetBookingQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListBookingsQueryHandler() queries.ListBookingsQueryHandler {
	return queries.NewListBookingsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCalendarQueryHandler() queries.GetCalendarQueryHandler {
	return queries.NewGetCalendarQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListAbandonedCartsQueryHandler() queries.ListAbandonedCartsQueryHandler {
	return queries.NewListAbandonedCartsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListDeliveriesQueryHandler() queries.ListDeliveriesQueryHandler {
	return queries.NewListDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryQueryHandler() queries.GetDeliveryQueryHandler {
	return queries.NewGetDeliveryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListTicketsQueryHandler() queries.ListTicketsQueryHandler {
	return queries.NewListTicketsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTicketQueryHandler() queries.GetTicketQueryHandler {
	return queries.NewGetTicketQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateFleetOverviewQueryHandler() queries.FleetOverviewQueryHandler {
	return queries.NewFleetOverviewQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDepositStatementQueryHandler() queries.GetDepositStatementQueryHandler {
	return queries.NewGetDepositStatementQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListAuditEntriesQueryHandler() queries.ListAuditEntriesQueryHandler {
	return queries.NewListAuditEntriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) fleetUoWFactory() commands.FleetUoWFactory {
	return FuncFleetUoWFactory(func() commands.FleetUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) ticketUoWFactory() commands.TicketUoWFactory {
	return FuncTicketUoWFactory(func() commands.TicketUoW {
		return c.uowFactory.Create()
	})
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncBookingUoWFactory func() commands.BookingUoW

func (f FuncBookingUoWFactory) Create() commands.BookingUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncReturnUoWFactory func() commands.ReturnUoW

func (f FuncReturnUoWFactory) Create() commands.ReturnUoW {
	return f()
}

type FuncFleetUoWFactory func() commands.FleetUoW

func (f FuncFleetUoWFactory) Create() commands.FleetUoW {
	return f()
}

type FuncTicketUoWFactory func() commands.TicketUoW

func (f FuncTicketUoWFactory) Create() commands.TicketUoW {
	return f()
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}
