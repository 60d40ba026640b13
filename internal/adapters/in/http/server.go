// Package http exposes the application over a REST API under /api/v1, plus
// the delivery websocket and the Swagger UI.
package http

import (
	"net/http"

	"github.com/mapsensemedia/betterrental/internal/adapters/in/ws"
	"github.com/mapsensemedia/betterrental/internal/core/application/usecases/commands"
	"github.com/mapsensemedia/betterrental/internal/core/application/usecases/queries"
	"github.com/mapsensemedia/betterrental/internal/core/ports"

	"github.com/labstack/echo/v4"
	echoswagger "github.com/swaggo/echo-swagger"
)

// Handlers bundles every use case the server exposes.
type Handlers struct {
	// Commands
	Authenticate           commands.AuthenticateCommandHandler
	CreateAccount          commands.CreateAccountCommandHandler
	CreateCart             commands.CreateCartCommandHandler
	UpdateCart             commands.UpdateCartCommandHandler
	CheckoutCart           commands.CheckoutCartCommandHandler
	CancelBooking          commands.CancelBookingCommandHandler
	ConfirmBooking         commands.ConfirmBookingCommandHandler
	ScheduleReturnDelivery commands.ScheduleReturnDeliveryCommandHandler
	AssignDriver           commands.AssignDriverCommandHandler
	AdvanceDelivery        commands.AdvanceDeliveryCommandHandler
	SetDeliveryStatus      commands.SetDeliveryStatusCommandHandler
	ReportDeliveryIssue    commands.ReportDeliveryIssueCommandHandler
	CompleteReturn         commands.CompleteReturnCommandHandler
	CreateCategory         commands.CreateCategoryCommandHandler
	UpdateCategory         commands.UpdateCategoryCommandHandler
	AddUnit                commands.AddUnitCommandHandler
	ChangeUnitStatus       commands.ChangeUnitStatusCommandHandler
	NotifyCartRecovery     commands.NotifyCartRecoveryCommandHandler
	OpenTicket             commands.OpenTicketCommandHandler
	ReplyTicket            commands.ReplyTicketCommandHandler
	SetTicketStatus        commands.SetTicketStatusCommandHandler

	// Queries
	SearchAvailability  queries.SearchAvailabilityQueryHandler
	GetQuote            queries.GetQuoteQueryHandler
	GetCart             queries.GetCartQueryHandler
	GetBooking          queries.GetBookingQueryHandler
	ListBookings        queries.ListBookingsQueryHandler
	GetCalendar         queries.GetCalendarQueryHandler
	ListAbandonedCarts  queries.ListAbandonedCartsQueryHandler
	ListDeliveries      queries.ListDeliveriesQueryHandler
	GetDelivery         queries.GetDeliveryQueryHandler
	ListTickets         queries.ListTicketsQueryHandler
	GetTicket           queries.GetTicketQueryHandler
	FleetOverview       queries.FleetOverviewQueryHandler
	GetDepositStatement queries.GetDepositStatementQueryHandler
	ListAuditEntries    queries.ListAuditEntriesQueryHandler
}

// Server wires the echo routes onto the use case handlers.
type Server struct {
	handlers  Handlers
	verifier  TokenVerifier
	hub       *ws.Hub
	documents ports.DocumentStore
}

// NewServer creates the HTTP server facade.
func NewServer(handlers Handlers, verifier TokenVerifier, hub *ws.Hub, documents ports.DocumentStore) *Server {
	return &Server{
		handlers:  handlers,
		verifier:  verifier,
		hub:       hub,
		documents: documents,
	}
}

// RegisterRoutes mounts all API routes on the echo instance. Admin routes sit
// behind the staff-role guard; customer routes require any authenticated
// account.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.health)
	e.GET("/swagger/*", echoswagger.WrapHandler)
	e.GET("/ws/deliveries", s.hub.Serve, s.authenticate, s.requireStaff)

	v1 := e.Group("/api/v1")

	// Public
	v1.POST("/auth/login", s.login)
	v1.POST("/auth/register", s.register)
	v1.GET("/search", s.searchAvailability)
	v1.GET("/quote", s.getQuote)
	v1.POST("/carts", s.createCart)
	v1.PUT("/carts/:id", s.updateCart)
	v1.GET("/carts/:id", s.getCart)
	v1.POST("/tickets", s.openTicket)

	// Customer (authenticated)
	customer := v1.Group("", s.authenticate)
	customer.POST("/carts/:id/checkout", s.checkoutCart)
	customer.GET("/bookings/:id", s.getBooking)
	customer.POST("/bookings/:id/cancel", s.cancelBooking)
	customer.GET("/bookings/:id/agreement", s.getAgreement)

	// Back office (staff role)
	admin := v1.Group("/admin", s.authenticate, s.requireStaff)

	admin.GET("/fleet", s.fleetOverview)
	admin.POST("/fleet/categories", s.createCategory)
	admin.PUT("/fleet/categories/:id", s.updateCategory)
	admin.POST("/fleet/units", s.addUnit)
	admin.PUT("/fleet/units/:id/status", s.changeUnitStatus)

	admin.GET("/bookings", s.listBookings)
	admin.GET("/bookings/:id", s.getBooking)
	admin.POST("/bookings/:id/confirm", s.confirmBooking)
	admin.POST("/bookings/:id/cancel", s.cancelBooking)
	admin.POST("/bookings/:id/return-delivery", s.scheduleReturnDelivery)
	admin.POST("/bookings/:id/complete-return", s.completeReturn)
	admin.GET("/bookings/:id/deposit", s.getDepositStatement)
	admin.GET("/calendar", s.getCalendar)

	admin.GET("/carts/abandoned", s.listAbandonedCarts)
	admin.POST("/carts/:id/recover-notify", s.recoverNotifyCart)

	admin.GET("/deliveries", s.listDeliveries)
	admin.GET("/deliveries/:id", s.getDelivery)
	admin.POST("/deliveries/:id/assign", s.assignDriver)
	admin.POST("/deliveries/:id/advance", s.advanceDelivery)
	admin.PUT("/deliveries/:id/status", s.setDeliveryStatus)
	admin.POST("/deliveries/:id/issue", s.reportDeliveryIssue)

	admin.GET("/tickets", s.listTickets)
	admin.GET("/tickets/:id", s.getTicket)
	admin.POST("/tickets/:id/reply", s.replyTicket)
	admin.PUT("/tickets/:id/status", s.setTicketStatus)

	admin.GET("/audit", s.listAuditEntries)
	admin.POST("/accounts", s.createAccount)
}

// health godoc
//
//	@Summary	Liveness probe
//	@Tags		system
//	@Success	200	{string}	string	"Healthy"
//	@Router		/health [get]
func (s *Server) health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}
