package http

import (
	"net/http"

	"github.com/mapsensemedia/betterrental/internal/core/application/usecases/commands"
	"github.com/mapsensemedia/betterrental/internal/core/application/usecases/queries"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/delivery"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// listDeliveries godoc
//
//	@Summary	List delivery runs, open ones by default
//	@Tags		admin
//	@Produce	json
//	@Security	BearerAuth
//	@Param		status	query		string	false	"Run status filter"
//	@Success	200		{array}		queries.ListDeliveriesQueryResponse
//	@Failure	400		{object}	echo.HTTPError
//	@Router		/api/v1/admin/deliveries [get]
func (s *Server) listDeliveries(c echo.Context) error {
	query, err := queries.NewListDeliveriesQuery(c.QueryParam("status"))
	if err != nil {
		return toHTTPError(err)
	}

	runs, err := s.handlers.ListDeliveries.Handle(c.Request().Context(), query)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, runs)
}

// getDelivery godoc
//
//	@Summary	Fetch a delivery run with its status log
//	@Tags		admin
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Delivery id"
//	@Success	200	{object}	queries.GetDeliveryQueryResponse
//	@Failure	404	{object}	echo.HTTPError
//	@Router		/api/v1/admin/deliveries/{id} [get]
func (s *Server) getDelivery(c echo.Context) error {
	deliveryID, err := parseUUIDParam(c.Param("id"))
	if err != nil {
		return err
	}

	query, err := queries.NewGetDeliveryQuery(deliveryID)
	if err != nil {
		return toHTTPError(err)
	}

	run, err := s.handlers.GetDelivery.Handle(c.Request().Context(), query)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, run)
}

// assignDriver godoc
//
//	@Summary	Assign or unassign the driver of a run
//	@Tags		admin
//	@Accept		json
//	@Security	BearerAuth
//	@Param		id			path		string				true	"Delivery id"
//	@Param		assignment	body		assignDriverRequest	true	"Driver assignment"
//	@Success	204			{string}	string				"no content"
//	@Failure	404			{object}	echo.HTTPError
//	@Router		/api/v1/admin/deliveries/{id}/assign [post]
func (s *Server) assignDriver(c echo.Context) error {
	deliveryID, err := parseUUIDParam(c.Param("id"))
	if err != nil {
		return err
	}

	var req assignDriverRequest
	if err = c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	var driverID *kernel.UUID
	if req.DriverID != nil {
		parsed, parseErr := parseUUIDParam(*req.DriverID)
		if parseErr != nil {
			return parseErr
		}
		driverID = &parsed
	}

	tokenClaims, ok := claims(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
	}

	cmd, err := commands.NewAssignDriverCommand(deliveryID, driverID, tokenClaims.AccountID)
	if err != nil {
		return toHTTPError(err)
	}

	if err = s.handlers.AssignDriver.Handle(c.Request().Context(), cmd); err != nil {
		return toHTTPError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// advanceDelivery godoc
//
//	@Summary	Advance a run to the next stage of its route
//	@Tags		admin
//	@Accept		json
//	@Security	BearerAuth
//	@Param		id		path		string					true	"Delivery id"
//	@Param		step	body		advanceDeliveryRequest	true	"Actor and note"
//	@Success	204		{string}	string					"no content"
//	@Failure	404		{object}	echo.HTTPError
//	@Router		/api/v1/admin/deliveries/{id}/advance [post]
func (s *Server) advanceDelivery(c echo.Context) error {
	deliveryID, err := parseUUIDParam(c.Param("id"))
	if err != nil {
		return err
	}

	var req advanceDeliveryRequest
	if err = c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	tokenClaims, ok := claims(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
	}

	cmd, err := commands.NewAdvanceDeliveryCommand(deliveryID, tokenClaims.AccountID, req.ActorName, req.Note)
	if err != nil {
		return toHTTPError(err)
	}

	if err = s.handlers.AdvanceDelivery.Handle(c.Request().Context(), cmd); err != nil {
		return toHTTPError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// setDeliveryStatus godoc
//
//	@Summary	Move a run to an explicit status
//	@Tags		admin
//	@Accept		json
//	@Security	BearerAuth
//	@Param		id		path		string						true	"Delivery id"
//	@Param		change	body		setDeliveryStatusRequest	true	"Target status"
//	@Success	204		{string}	string						"no content"
//	@Failure	404		{object}	echo.HTTPError
//	@Router		/api/v1/admin/deliveries/{id}/status [put]
func (s *Server) setDeliveryStatus(c echo.Context) error {
	deliveryID, err := parseUUIDParam(c.Param("id"))
	if err != nil {
		return err
	}

	var req setDeliveryStatusRequest
	if err = c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	to, err := delivery.StatusFromString(req.Status)
	if err != nil {
		return toHTTPError(err)
	}

	tokenClaims, ok := claims(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
	}

	cmd, err := commands.NewSetDeliveryStatusCommand(deliveryID, to, tokenClaims.AccountID, req.ActorName, req.Note)
	if err != nil {
		return toHTTPError(err)
	}

	if err = s.handlers.SetDeliveryStatus.Handle(c.Request().Context(), cmd); err != nil {
		return toHTTPError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// reportDeliveryIssue godoc
//
//	@Summary	Flag a problem on a run
//	@Tags		admin
//	@Accept		json
//	@Security	BearerAuth
//	@Param		id		path		string					true	"Delivery id"
//	@Param		issue	body		deliveryIssueRequest	true	"Issue description"
//	@Success	204		{string}	string					"no content"
//	@Failure	404		{object}	echo.HTTPError
//	@Router		/api/v1/admin/deliveries/{id}/issue [post]
func (s *Server) reportDeliveryIssue(c echo.Context) error {
	deliveryID, err := parseUUIDParam(c.Param("id"))
	if err != nil {
		return err
	}

	var req deliveryIssueRequest
	if err = c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	tokenClaims, ok := claims(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
	}

	cmd, err := commands.NewReportDeliveryIssueCommand(deliveryID, tokenClaims.AccountID, req.ActorName, req.Note)
	if err != nil {
		return toHTTPError(err)
	}

	if err = s.handlers.ReportDeliveryIssue.Handle(c.Request().Context(), cmd); err != nil {
		return toHTTPError(err)
	}

	return c.NoContent(http.StatusNoContent)
}
