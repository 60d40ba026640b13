package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/mapsensemedia/betterrental/internal/adapters/out/auth"
	"github.com/mapsensemedia/betterrental/internal/core/application/usecases/commands"
	"github.com/mapsensemedia/betterrental/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// TokenVerifier checks bearer tokens on protected routes.
type TokenVerifier interface {
	Verify(token string) (auth.TokenClaims, error)
}

const claimsContextKey = "betterrental.claims"

// authenticate extracts and verifies the bearer token and stores the claims
// on the request context.
func (s *Server) authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
		}

		claims, err := s.verifier.Verify(token)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid bearer token")
		}

		c.Set(claimsContextKey, claims)
		return next(c)
	}
}

// requireStaff rejects accounts without back-office access.
func (s *Server) requireStaff(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get(claimsContextKey).(auth.TokenClaims)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
		}
		if !claims.Role.IsStaff() {
			return echo.NewHTTPError(http.StatusForbidden, "staff role required")
		}

		return next(c)
	}
}

// claims returns the verified token claims of the current request.
func claims(c echo.Context) (auth.TokenClaims, bool) {
	tokenClaims, ok := c.Get(claimsContextKey).(auth.TokenClaims)
	return tokenClaims, ok
}

// toHTTPError maps application and domain errors onto HTTP status codes.
func toHTTPError(err error) error {
	switch {
	case errors.Is(err, commands.ErrInvalidCredentials):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, commands.ErrBookingAccessDenied):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrObjectNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.Is(err, commands.ErrNoVehicleAvailable):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
