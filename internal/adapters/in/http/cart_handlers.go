package http

import (
	"net/http"

	"github.com/mapsensemedia/betterrental/internal/core/application/usecases/commands"
	"github.com/mapsensemedia/betterrental/internal/core/application/usecases/queries"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// createCart godoc
//
//	@Summary	Start a rental cart
//	@Tags		carts
//	@Accept		json
//	@Produce	json
//	@Param		cart	body		createCartRequest	true	"Cart details"
//	@Success	201		{object}	createdResponse
//	@Failure	400		{object}	echo.HTTPError
//	@Router		/api/v1/carts [post]
func (s *Server) createCart(c echo.Context) error {
	var req createCartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	var customerID *kernel.UUID
	if req.CustomerID != nil {
		parsed, err := parseUUIDParam(*req.CustomerID)
		if err != nil {
			return err
		}
		customerID = &parsed
	}

	categoryID, err := parseUUIDParam(req.CategoryID)
	if err != nil {
		return err
	}

	cartID := kernel.NewUUID()

	cmd, err := commands.NewCreateCartCommand(
		cartID,
		customerID,
		req.Email,
		req.Phone,
		categoryID,
		req.Start.Time,
		req.End.Time,
		req.PickupAddress,
		req.ReturnAddress,
	)
	if err != nil {
		return toHTTPError(err)
	}

	if err = s.handlers.CreateCart.Handle(c.Request().Context(), cmd); err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, createdResponse{ID: cartID.String()})
}

// updateCart godoc
//
//	@Summary	Change the period or addresses of an open cart
//	@Tags		carts
//	@Accept		json
//	@Param		id		path		string				true	"Cart id"
//	@Param		cart	body		updateCartRequest	true	"Updated details"
//	@Success	204		{string}	string				"no content"
//	@Failure	404		{object}	echo.HTTPError
//	@Router		/api/v1/carts/{id} [put]
func (s *Server) updateCart(c echo.Context) error {
	cartID, err := parseUUIDParam(c.Param("id"))
	if err != nil {
		return err
	}

	var req updateCartRequest
	if err = c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewUpdateCartCommand(cartID, req.Start.Time, req.End.Time, req.PickupAddress, req.ReturnAddress)
	if err != nil {
		return toHTTPError(err)
	}

	if err = s.handlers.UpdateCart.Handle(c.Request().Context(), cmd); err != nil {
		return toHTTPError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// getCart godoc
//
//	@Summary	Fetch a cart with its current quote
//	@Tags		carts
//	@Produce	json
//	@Param		id	path		string	true	"Cart id"
//	@Success	200	{object}	queries.GetCartQueryResponse
//	@Failure	404	{object}	echo.HTTPError
//	@Router		/api/v1/carts/{id} [get]
func (s *Server) getCart(c echo.Context) error {
	cartID, err := parseUUIDParam(c.Param("id"))
	if err != nil {
		return err
	}

	query, err := queries.NewGetCartQuery(cartID)
	if err != nil {
		return toHTTPError(err)
	}

	cart, err := s.handlers.GetCart.Handle(c.Request().Context(), query)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, cart)
}

// checkoutCart godoc
//
//	@Summary	Pay for a cart and create the booking
//	@Tags		carts
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id			path		string				true	"Cart id"
//	@Param		checkout	body		checkoutCartRequest	true	"Payment details"
//	@Success	201			{object}	checkoutCartResponse
//	@Failure	409			{object}	echo.HTTPError
//	@Router		/api/v1/carts/{id}/checkout [post]
func (s *Server) checkoutCart(c echo.Context) error {
	cartID, err := parseUUIDParam(c.Param("id"))
	if err != nil {
		return err
	}

	var req checkoutCartRequest
	if err = c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	tokenClaims, ok := claims(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
	}

	bookingID := kernel.NewUUID()

	cmd, err := commands.NewCheckoutCartCommand(bookingID, cartID, tokenClaims.AccountID, req.CustomerName, req.PaymentMethod)
	if err != nil {
		return toHTTPError(err)
	}

	if err = s.handlers.CheckoutCart.Handle(c.Request().Context(), cmd); err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, checkoutCartResponse{BookingID: bookingID.String()})
}

// listAbandonedCarts godoc
//
//	@Summary	List carts abandoned by idle customers
//	@Tags		admin
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	queries.ListAbandonedCartsQueryResponse
//	@Router		/api/v1/admin/carts/abandoned [get]
func (s *Server) listAbandonedCarts(c echo.Context) error {
	query := queries.NewListAbandonedCartsQuery()

	carts, err := s.handlers.ListAbandonedCarts.Handle(c.Request().Context(), query)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, carts)
}

// recoverNotifyCart godoc
//
//	@Summary	Send the recovery nudge for one abandoned cart
//	@Tags		admin
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Cart id"
//	@Success	204	{string}	string	"no content"
//	@Failure	404	{object}	echo.HTTPError
//	@Router		/api/v1/admin/carts/{id}/recover-notify [post]
func (s *Server) recoverNotifyCart(c echo.Context) error {
	cartID, err := parseUUIDParam(c.Param("id"))
	if err != nil {
		return err
	}

	cmd, err := commands.NewNotifyCartRecoveryCommand(cartID)
	if err != nil {
		return toHTTPError(err)
	}

	if err = s.handlers.NotifyCartRecovery.Handle(c.Request().Context(), cmd); err != nil {
		return toHTTPError(err)
	}

	return c.NoContent(http.StatusNoContent)
}
