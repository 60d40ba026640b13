package http

import (
	"net/http"

	"github.com/mapsensemedia/betterrental/internal/core/application/usecases/commands"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/account"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// login godoc
//
//	@Summary	Exchange credentials for a bearer token
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		credentials	body		loginRequest	true	"Account credentials"
//	@Success	200			{object}	tokenResponse
//	@Failure	401			{object}	echo.HTTPError
//	@Router		/api/v1/auth/login [post]
func (s *Server) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewAuthenticateCommand(req.Email, req.Password)
	if err != nil {
		return toHTTPError(err)
	}

	token, err := s.handlers.Authenticate.Handle(c.Request().Context(), cmd)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, tokenResponse{Token: token})
}

// register godoc
//
//	@Summary	Register a customer account
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		account	body		registerRequest	true	"New account"
//	@Success	201		{object}	createdResponse
//	@Failure	409		{object}	echo.HTTPError
//	@Router		/api/v1/auth/register [post]
func (s *Server) register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	accountID := kernel.NewUUID()

	cmd, err := commands.NewCreateAccountCommand(accountID, req.Email, req.Password, req.Name, account.RoleCustomer)
	if err != nil {
		return toHTTPError(err)
	}

	if err = s.handlers.CreateAccount.Handle(c.Request().Context(), cmd); err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, createdResponse{ID: accountID.String()})
}

// createAccount godoc
//
//	@Summary	Create a staff or customer account
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		account	body		createAccountRequest	true	"New account"
//	@Success	201		{object}	createdResponse
//	@Failure	409		{object}	echo.HTTPError
//	@Router		/api/v1/admin/accounts [post]
func (s *Server) createAccount(c echo.Context) error {
	var req createAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	role, err := account.RoleFromString(req.Role)
	if err != nil {
		return toHTTPError(err)
	}

	accountID := kernel.NewUUID()

	cmd, err := commands.NewCreateAccountCommand(accountID, req.Email, req.Password, req.Name, role)
	if err != nil {
		return toHTTPError(err)
	}

	if err = s.handlers.CreateAccount.Handle(c.Request().Context(), cmd); err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, createdResponse{ID: accountID.String()})
}
