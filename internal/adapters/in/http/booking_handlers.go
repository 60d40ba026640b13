package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/mapsensemedia/betterrental/internal/core/application/usecases/commands"
	"github.com/mapsensemedia/betterrental/internal/core/application/usecases/queries"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/booking"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// getBooking godoc
//
//	@Summary	Fetch a booking with its charges
//	@Tags		bookings
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Booking id"
//	@Success	200	{object}	queries.GetBookingQueryResponse
//	@Failure	404	{object}	echo.HTTPError
//	@Router		/api/v1/bookings/{id} [get]
func (s *Server) getBooking(c echo.Context) error {
	bookingID, err := parseUUIDParam(c.Param("id"))
	if err != nil {
		return err
	}

	query, err := queries.NewGetBookingQuery(bookingID)
	if err != nil {
		return toHTTPError(err)
	}

	result, err := s.handlers.GetBooking.Handle(c.Request().Context(), query)
	if err != nil {
		return toHTTPError(err)
	}

	tokenClaims, ok := claims(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
	}

	if !tokenClaims.Role.IsStaff() && result.CustomerID != tokenClaims.AccountID.String() {
		return echo.NewHTTPError(http.StatusForbidden, "booking belongs to another customer")
	}

	return c.JSON(http.StatusOK, result)
}

// checkBookingOwner lets a customer act only on their own bookings. Staff
// accounts pass for any booking.
func (s *Server) checkBookingOwner(c echo.Context, bookingID kernel.UUID) error {
	tokenClaims, ok := claims(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
	}

	if tokenClaims.Role.IsStaff() {
		return nil
	}

	query, err := queries.NewGetBookingQuery(bookingID)
	if err != nil {
		return toHTTPError(err)
	}

	result, err := s.handlers.GetBooking.Handle(c.Request().Context(), query)
	if err != nil {
		return toHTTPError(err)
	}

	if result.CustomerID != tokenClaims.AccountID.String() {
		return echo.NewHTTPError(http.StatusForbidden, "booking belongs to another customer")
	}

	return nil
}

// listBookings godoc
//
//	@Summary	List bookings with status and period filters
//	@Tags		admin
//	@Produce	json
//	@Security	BearerAuth
//	@Param		status		query		string	false	"Booking status filter"
//	@Param		from		query		string	false	"Period overlap start (YYYY-MM-DD)"
//	@Param		to			query		string	false	"Period overlap end (YYYY-MM-DD)"
//	@Param		page		query		int		false	"Page number"
//	@Param		pageSize	query		int		false	"Page size"
//	@Success	200			{object}	queries.ListBookingsQueryResponse
//	@Router		/api/v1/admin/bookings [get]
func (s *Server) listBookings(c echo.Context) error {
	var from, to time.Time
	var err error
	if raw := c.QueryParam("from"); raw != "" {
		if from, err = time.Parse(dateLayout, raw); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "from must be a YYYY-MM-DD date")
		}
	}
	if raw := c.QueryParam("to"); raw != "" {
		if to, err = time.Parse(dateLayout, raw); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "to must be a YYYY-MM-DD date")
		}
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("pageSize"))

	query, err := queries.NewListBookingsQuery(c.QueryParam("status"), from, to, page, pageSize)
	if err != nil {
		return toHTTPError(err)
	}

	result, err := s.handlers.ListBookings.Handle(c.Request().Context(), query)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, result)
}

// confirmBooking godoc
//
//	@Summary	Confirm a pending booking
//	@Tags		admin
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Booking id"
//	@Success	204	{string}	string	"no content"
//	@Failure	404	{object}	echo.HTTPError
//	@Router		/api/v1/admin/bookings/{id}/confirm [post]
func (s *Server) confirmBooking(c echo.Context) error {
	bookingID, err := parseUUIDParam(c.Param("id"))
	if err != nil {
		return err
	}

	tokenClaims, ok := claims(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
	}

	cmd, err := commands.NewConfirmBookingCommand(bookingID, tokenClaims.AccountID)
	if err != nil {
		return toHTTPError(err)
	}

	if err = s.handlers.ConfirmBooking.Handle(c.Request().Context(), cmd); err != nil {
		return toHTTPError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// cancelBooking godoc
//
//	@Summary	Cancel a booking
//	@Tags		bookings
//	@Accept		json
//	@Security	BearerAuth
//	@Param		id		path		string					true	"Booking id"
//	@Param		cancel	body		cancelBookingRequest	true	"Cancellation reason"
//	@Success	204		{string}	string					"no content"
//	@Failure	404		{object}	echo.HTTPError
//	@Router		/api/v1/bookings/{id}/cancel [post]
func (s *Server) cancelBooking(c echo.Context) error {
	bookingID, err := parseUUIDParam(c.Param("id"))
	if err != nil {
		return err
	}

	var req cancelBookingRequest
	if err = c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	tokenClaims, ok := claims(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
	}

	cmd, err := commands.NewCancelBookingCommand(bookingID, tokenClaims.AccountID, req.Reason)
	if err != nil {
		return toHTTPError(err)
	}

	if err = s.handlers.CancelBooking.Handle(c.Request().Context(), cmd); err != nil {
		return toHTTPError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// getAgreement godoc
//
//	@Summary	Download the rental agreement PDF
//	@Tags		bookings
//	@Produce	application/pdf
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Booking id"
//	@Success	200	{file}		file
//	@Failure	404	{object}	echo.HTTPError
//	@Router		/api/v1/bookings/{id}/agreement [get]
func (s *Server) getAgreement(c echo.Context) error {
	bookingID, err := parseUUIDParam(c.Param("id"))
	if err != nil {
		return err
	}

	if err = s.checkBookingOwner(c, bookingID); err != nil {
		return err
	}

	key := fmt.Sprintf("agreements/%s.pdf", bookingID)

	document, err := s.documents.Get(c.Request().Context(), key)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "agreement not found")
	}

	return c.Blob(http.StatusOK, "application/pdf", document)
}

// scheduleReturnDelivery godoc
//
//	@Summary	Schedule the return pickup run for an active booking
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id			path		string							true	"Booking id"
//	@Param		schedule	body		scheduleReturnDeliveryRequest	true	"Pickup time"
//	@Success	201			{object}	createdResponse
//	@Failure	404			{object}	echo.HTTPError
//	@Router		/api/v1/admin/bookings/{id}/return-delivery [post]
func (s *Server) scheduleReturnDelivery(c echo.Context) error {
	bookingID, err := parseUUIDParam(c.Param("id"))
	if err != nil {
		return err
	}

	var req scheduleReturnDeliveryRequest
	if err = c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "scheduledAt must be an RFC 3339 timestamp")
	}

	tokenClaims, ok := claims(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
	}

	deliveryID := kernel.NewUUID()

	cmd, err := commands.NewScheduleReturnDeliveryCommand(deliveryID, bookingID, scheduledAt, tokenClaims.AccountID)
	if err != nil {
		return toHTTPError(err)
	}

	if err = s.handlers.ScheduleReturnDelivery.Handle(c.Request().Context(), cmd); err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, createdResponse{ID: deliveryID.String()})
}

// completeReturn godoc
//
//	@Summary	Settle a returned booking: damages, odometer and deposit
//	@Tags		admin
//	@Accept		json
//	@Security	BearerAuth
//	@Param		id		path		string					true	"Booking id"
//	@Param		result	body		completeReturnRequest	true	"Inspection result"
//	@Success	204		{string}	string					"no content"
//	@Failure	404		{object}	echo.HTTPError
//	@Router		/api/v1/admin/bookings/{id}/complete-return [post]
func (s *Server) completeReturn(c echo.Context) error {
	bookingID, err := parseUUIDParam(c.Param("id"))
	if err != nil {
		return err
	}

	var req completeReturnRequest
	if err = c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	damages := make([]commands.DamageItem, 0, len(req.Damages))
	for _, item := range req.Damages {
		severity, severityErr := booking.SeverityFromString(item.Severity)
		if severityErr != nil {
			return toHTTPError(severityErr)
		}

		currency := item.Currency
		if currency == "" {
			currency = kernel.DefaultCurrency
		}

		charge, moneyErr := kernel.NewMoney(item.Charge, currency)
		if moneyErr != nil {
			return toHTTPError(moneyErr)
		}

		damages = append(damages, commands.DamageItem{
			Description: item.Description,
			Severity:    severity,
			Charge:      charge,
			PhotoKeys:   item.PhotoKeys,
		})
	}

	tokenClaims, ok := claims(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
	}

	cmd, err := commands.NewCompleteReturnCommand(bookingID, tokenClaims.AccountID, req.CustomerName, req.OdometerKm, damages)
	if err != nil {
		return toHTTPError(err)
	}

	if err = s.handlers.CompleteReturn.Handle(c.Request().Context(), cmd); err != nil {
		return toHTTPError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// getDepositStatement godoc
//
//	@Summary	Fetch the deposit ledger of a booking
//	@Tags		admin
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Booking id"
//	@Success	200	{object}	queries.GetDepositStatementQueryResponse
//	@Failure	404	{object}	echo.HTTPError
//	@Router		/api/v1/admin/bookings/{id}/deposit [get]
func (s *Server) getDepositStatement(c echo.Context) error {
	bookingID, err := parseUUIDParam(c.Param("id"))
	if err != nil {
		return err
	}

	query, err := queries.NewGetDepositStatementQuery(bookingID)
	if err != nil {
		return toHTTPError(err)
	}

	statement, err := s.handlers.GetDepositStatement.Handle(c.Request().Context(), query)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, statement)
}

// getCalendar godoc
//
//	@Summary	Bookings per day over a date range
//	@Tags		admin
//	@Produce	json
//	@Security	BearerAuth
//	@Param		from	query		string	true	"Range start (YYYY-MM-DD)"
//	@Param		to		query		string	true	"Range end (YYYY-MM-DD)"
//	@Success	200		{array}		queries.GetCalendarQueryResponse
//	@Failure	400		{object}	echo.HTTPError
//	@Router		/api/v1/admin/calendar [get]
func (s *Server) getCalendar(c echo.Context) error {
	from, err := parseDateParam(c, "from")
	if err != nil {
		return err
	}
	to, err := parseDateParam(c, "to")
	if err != nil {
		return err
	}

	query, err := queries.NewGetCalendarQuery(from, to)
	if err != nil {
		return toHTTPError(err)
	}

	days, err := s.handlers.GetCalendar.Handle(c.Request().Context(), query)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, days)
}
