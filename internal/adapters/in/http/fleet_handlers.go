package http

import (
	"net/http"
	"strconv"

	"github.com/mapsensemedia/betterrental/internal/core/application/usecases/commands"
	"github.com/mapsensemedia/betterrental/internal/core/application/usecases/queries"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/vehicle"

	"github.com/labstack/echo/v4"
)

// fleetOverview godoc
//
//	@Summary	Unit counts per category broken down by status
//	@Tags		admin
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	queries.FleetOverviewQueryResponse
//	@Router		/api/v1/admin/fleet [get]
func (s *Server) fleetOverview(c echo.Context) error {
	query := queries.NewFleetOverviewQuery()

	overview, err := s.handlers.FleetOverview.Handle(c.Request().Context(), query)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, overview)
}

// createCategory godoc
//
//	@Summary	Add a vehicle category
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		category	body		createCategoryRequest	true	"Category details"
//	@Success	201			{object}	createdResponse
//	@Failure	400			{object}	echo.HTTPError
//	@Router		/api/v1/admin/fleet/categories [post]
func (s *Server) createCategory(c echo.Context) error {
	var req createCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	dailyRate, deposit, deliveryFee, err := categoryRates(req.DailyRate, req.Deposit, req.DeliveryFee, req.Currency)
	if err != nil {
		return toHTTPError(err)
	}

	tokenClaims, ok := claims(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
	}

	categoryID := kernel.NewUUID()

	cmd, err := commands.NewCreateCategoryCommand(
		categoryID,
		req.Name,
		req.Class,
		req.Seats,
		vehicle.Transmission(req.Transmission),
		dailyRate,
		deposit,
		deliveryFee,
		tokenClaims.AccountID,
	)
	if err != nil {
		return toHTTPError(err)
	}

	if err = s.handlers.CreateCategory.Handle(c.Request().Context(), cmd); err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, createdResponse{ID: categoryID.String()})
}

// updateCategory godoc
//
//	@Summary	Change rates, class or active flag of a category
//	@Tags		admin
//	@Accept		json
//	@Security	BearerAuth
//	@Param		id			path		string					true	"Category id"
//	@Param		category	body		updateCategoryRequest	true	"Updated details"
//	@Success	204			{string}	string					"no content"
//	@Failure	404			{object}	echo.HTTPError
//	@Router		/api/v1/admin/fleet/categories/{id} [put]
func (s *Server) updateCategory(c echo.Context) error {
	categoryID, err := parseUUIDParam(c.Param("id"))
	if err != nil {
		return err
	}

	var req updateCategoryRequest
	if err = c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	dailyRate, deposit, deliveryFee, err := categoryRates(req.DailyRate, req.Deposit, req.DeliveryFee, req.Currency)
	if err != nil {
		return toHTTPError(err)
	}

	tokenClaims, ok := claims(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
	}

	cmd, err := commands.NewUpdateCategoryCommand(
		categoryID,
		req.Name,
		req.Class,
		dailyRate,
		deposit,
		deliveryFee,
		req.Active,
		tokenClaims.AccountID,
	)
	if err != nil {
		return toHTTPError(err)
	}

	if err = s.handlers.UpdateCategory.Handle(c.Request().Context(), cmd); err != nil {
		return toHTTPError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// addUnit godoc
//
//	@Summary	Register a vehicle unit in a category
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		unit	body		addUnitRequest	true	"Unit details"
//	@Success	201		{object}	createdResponse
//	@Failure	400		{object}	echo.HTTPError
//	@Router		/api/v1/admin/fleet/units [post]
func (s *Server) addUnit(c echo.Context) error {
	var req addUnitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	categoryID, err := parseUUIDParam(req.CategoryID)
	if err != nil {
		return err
	}

	tokenClaims, ok := claims(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
	}

	unitID := kernel.NewUUID()

	cmd, err := commands.NewAddUnitCommand(
		unitID,
		categoryID,
		req.Plate,
		req.VIN,
		req.Year,
		req.OdometerKm,
		tokenClaims.AccountID,
	)
	if err != nil {
		return toHTTPError(err)
	}

	if err = s.handlers.AddUnit.Handle(c.Request().Context(), cmd); err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, createdResponse{ID: unitID.String()})
}

// changeUnitStatus godoc
//
//	@Summary	Move a unit between operational statuses
//	@Tags		admin
//	@Accept		json
//	@Security	BearerAuth
//	@Param		id		path		string					true	"Unit id"
//	@Param		change	body		changeUnitStatusRequest	true	"Target status"
//	@Success	204		{string}	string					"no content"
//	@Failure	404		{object}	echo.HTTPError
//	@Router		/api/v1/admin/fleet/units/{id}/status [put]
func (s *Server) changeUnitStatus(c echo.Context) error {
	unitID, err := parseUUIDParam(c.Param("id"))
	if err != nil {
		return err
	}

	var req changeUnitStatusRequest
	if err = c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	to, err := vehicle.UnitStatusFromString(req.Status)
	if err != nil {
		return toHTTPError(err)
	}

	tokenClaims, ok := claims(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
	}

	cmd, err := commands.NewChangeUnitStatusCommand(unitID, to, tokenClaims.AccountID)
	if err != nil {
		return toHTTPError(err)
	}

	if err = s.handlers.ChangeUnitStatus.Handle(c.Request().Context(), cmd); err != nil {
		return toHTTPError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// listAuditEntries godoc
//
//	@Summary	List audit trail entries, newest first
//	@Tags		admin
//	@Produce	json
//	@Security	BearerAuth
//	@Param		resource	query		string	false	"Resource type filter"
//	@Param		resourceId	query		string	false	"Resource id filter"
//	@Param		limit		query		int		false	"Maximum entries"
//	@Success	200			{array}		queries.ListAuditEntriesQueryResponse
//	@Router		/api/v1/admin/audit [get]
func (s *Server) listAuditEntries(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	query := queries.NewListAuditEntriesQuery(c.QueryParam("resource"), c.QueryParam("resourceId"), limit)

	entries, err := s.handlers.ListAuditEntries.Handle(c.Request().Context(), query)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, entries)
}

// categoryRates builds the three money values shared by the category commands.
func categoryRates(dailyRate, deposit, deliveryFee int64, currency string) (kernel.Money, kernel.Money, kernel.Money, error) {
	if currency == "" {
		currency = kernel.DefaultCurrency
	}

	rate, err := kernel.NewMoney(dailyRate, currency)
	if err != nil {
		return kernel.Money{}, kernel.Money{}, kernel.Money{}, err
	}

	dep, err := kernel.NewMoney(deposit, currency)
	if err != nil {
		return kernel.Money{}, kernel.Money{}, kernel.Money{}, err
	}

	fee, err := kernel.NewMoney(deliveryFee, currency)
	if err != nil {
		return kernel.Money{}, kernel.Money{}, kernel.Money{}, err
	}

	return rate, dep, fee, nil
}
