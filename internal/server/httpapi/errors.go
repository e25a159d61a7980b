package httpapi

import (
	"errors"
	"net/http"

	"github.com/avelichko/bookmarks/internal/common"
	"github.com/labstack/echo/v4"
)

// translateError maps service-level sentinel errors to HTTP responses.
// Anything unrecognized is logged and reported as a generic 500 without
// leaking internal detail.
func (s *Server) translateError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrorCredentialsTaken):
		return echo.NewHTTPError(http.StatusForbidden, "Credentials taken")
	case errors.Is(err, common.ErrorCredentialsIncorrect):
		return echo.NewHTTPError(http.StatusForbidden, "Credentials incorrect")
	case errors.Is(err, common.ErrorAccessDenied):
		return echo.NewHTTPError(http.StatusForbidden, "Access to resources denied")
	case errors.Is(err, common.ErrorNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Not found")
	default:
		s.logger.Error(c.Request().Context(), "request failed", "path", c.Path(), "error", err.Error())
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
}
