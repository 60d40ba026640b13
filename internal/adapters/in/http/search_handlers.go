package http

import (
	"net/http"
	"time"

	"github.com/mapsensemedia/betterrental/internal/core/application/usecases/queries"
	"github.com/mapsensemedia/betterrental/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// searchAvailability godoc
//
//	@Summary	List vehicle categories with free units for a period
//	@Tags		search
//	@Produce	json
//	@Param		start	query		string	true	"Rental start date (YYYY-MM-DD)"
//	@Param		end		query		string	true	"Rental end date (YYYY-MM-DD)"
//	@Success	200		{array}		queries.SearchAvailabilityQueryResponse
//	@Failure	400		{object}	echo.HTTPError
//	@Router		/api/v1/search [get]
func (s *Server) searchAvailability(c echo.Context) error {
	start, err := parseDateParam(c, "start")
	if err != nil {
		return err
	}
	end, err := parseDateParam(c, "end")
	if err != nil {
		return err
	}

	query, err := queries.NewSearchAvailabilityQuery(start, end)
	if err != nil {
		return toHTTPError(err)
	}

	categories, err := s.handlers.SearchAvailability.Handle(c.Request().Context(), query)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, categories)
}

// getQuote godoc
//
//	@Summary	Price a category for a rental period
//	@Tags		search
//	@Produce	json
//	@Param		categoryId	query		string	true	"Category id"
//	@Param		start		query		string	true	"Rental start date (YYYY-MM-DD)"
//	@Param		end			query		string	true	"Rental end date (YYYY-MM-DD)"
//	@Success	200			{object}	queries.GetQuoteQueryResponse
//	@Failure	404			{object}	echo.HTTPError
//	@Router		/api/v1/quote [get]
func (s *Server) getQuote(c echo.Context) error {
	categoryID, err := parseUUIDParam(c.QueryParam("categoryId"))
	if err != nil {
		return err
	}
	start, err := parseDateParam(c, "start")
	if err != nil {
		return err
	}
	end, err := parseDateParam(c, "end")
	if err != nil {
		return err
	}

	query, err := queries.NewGetQuoteQuery(categoryID, start, end)
	if err != nil {
		return toHTTPError(err)
	}

	quote, err := s.handlers.GetQuote.Handle(c.Request().Context(), query)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, quote)
}

// parseDateParam reads a required YYYY-MM-DD query parameter as midnight UTC.
func parseDateParam(c echo.Context, name string) (time.Time, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return time.Time{}, echo.NewHTTPError(http.StatusBadRequest, name+" query parameter is required")
	}

	parsed, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, echo.NewHTTPError(http.StatusBadRequest, name+" must be a YYYY-MM-DD date")
	}

	return parsed, nil
}

// parseUUIDParam validates a raw id taken from a path or query parameter.
func parseUUIDParam(raw string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusBadRequest, "invalid id: "+raw)
	}

	return id, nil
}
