package http

import (
	"net/http"

	"github.com/mapsensemedia/betterrental/internal/core/application/usecases/commands"
	"github.com/mapsensemedia/betterrental/internal/core/application/usecases/queries"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/ticket"

	"github.com/labstack/echo/v4"
)

// openTicket godoc
//
//	@Summary	Open a support ticket
//	@Tags		tickets
//	@Accept		json
//	@Produce	json
//	@Param		ticket	body		openTicketRequest	true	"Ticket details"
//	@Success	201		{object}	createdResponse
//	@Failure	400		{object}	echo.HTTPError
//	@Router		/api/v1/tickets [post]
func (s *Server) openTicket(c echo.Context) error {
	var req openTicketRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	var bookingID *kernel.UUID
	if req.BookingID != nil {
		parsed, err := parseUUIDParam(*req.BookingID)
		if err != nil {
			return err
		}
		bookingID = &parsed
	}

	priority, err := ticket.PriorityFromString(req.Priority)
	if err != nil {
		return toHTTPError(err)
	}

	ticketID := kernel.NewUUID()

	cmd, err := commands.NewOpenTicketCommand(ticketID, bookingID, req.Contact, req.Subject, req.Body, priority)
	if err != nil {
		return toHTTPError(err)
	}

	if err = s.handlers.OpenTicket.Handle(c.Request().Context(), cmd); err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, createdResponse{ID: ticketID.String()})
}

// listTickets godoc
//
//	@Summary	List tickets ordered by priority
//	@Tags		admin
//	@Produce	json
//	@Security	BearerAuth
//	@Param		status	query		string	false	"Ticket status filter"
//	@Success	200		{array}		queries.ListTicketsQueryResponse
//	@Failure	400		{object}	echo.HTTPError
//	@Router		/api/v1/admin/tickets [get]
func (s *Server) listTickets(c echo.Context) error {
	query, err := queries.NewListTicketsQuery(c.QueryParam("status"))
	if err != nil {
		return toHTTPError(err)
	}

	tickets, err := s.handlers.ListTickets.Handle(c.Request().Context(), query)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, tickets)
}

// getTicket godoc
//
//	@Summary	Fetch a ticket with its comment thread
//	@Tags		admin
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Ticket id"
//	@Success	200	{object}	queries.GetTicketQueryResponse
//	@Failure	404	{object}	echo.HTTPError
//	@Router		/api/v1/admin/tickets/{id} [get]
func (s *Server) getTicket(c echo.Context) error {
	ticketID, err := parseUUIDParam(c.Param("id"))
	if err != nil {
		return err
	}

	query, err := queries.NewGetTicketQuery(ticketID)
	if err != nil {
		return toHTTPError(err)
	}

	result, err := s.handlers.GetTicket.Handle(c.Request().Context(), query)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, result)
}

// replyTicket godoc
//
//	@Summary	Append a reply to a ticket
//	@Tags		admin
//	@Accept		json
//	@Security	BearerAuth
//	@Param		id		path		string				true	"Ticket id"
//	@Param		reply	body		replyTicketRequest	true	"Reply"
//	@Success	204		{string}	string				"no content"
//	@Failure	404		{object}	echo.HTTPError
//	@Router		/api/v1/admin/tickets/{id}/reply [post]
func (s *Server) replyTicket(c echo.Context) error {
	ticketID, err := parseUUIDParam(c.Param("id"))
	if err != nil {
		return err
	}

	var req replyTicketRequest
	if err = c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewReplyTicketCommand(ticketID, req.Author, req.Body)
	if err != nil {
		return toHTTPError(err)
	}

	if err = s.handlers.ReplyTicket.Handle(c.Request().Context(), cmd); err != nil {
		return toHTTPError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// setTicketStatus godoc
//
//	@Summary	Move a ticket to a new status
//	@Tags		admin
//	@Accept		json
//	@Security	BearerAuth
//	@Param		id		path		string					true	"Ticket id"
//	@Param		change	body		setTicketStatusRequest	true	"Target status"
//	@Success	204		{string}	string					"no content"
//	@Failure	404		{object}	echo.HTTPError
//	@Router		/api/v1/admin/tickets/{id}/status [put]
func (s *Server) setTicketStatus(c echo.Context) error {
	ticketID, err := parseUUIDParam(c.Param("id"))
	if err != nil {
		return err
	}

	var req setTicketStatusRequest
	if err = c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	to, err := ticket.StatusFromString(req.Status)
	if err != nil {
		return toHTTPError(err)
	}

	cmd, err := commands.NewSetTicketStatusCommand(ticketID, to)
	if err != nil {
		return toHTTPError(err)
	}

	if err = s.handlers.SetTicketStatus.Handle(c.Request().Context(), cmd); err != nil {
		return toHTTPError(err)
	}

	return c.NoContent(http.StatusNoContent)
}
