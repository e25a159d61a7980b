package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s *Server) handleSignUp(c echo.Context) error {
	var req authRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, err := s.users.SignUp(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return s.translateError(c, err)
	}

	return c.JSON(http.StatusCreated, tokenResponse{AccessToken: token})
}

func (s *Server) handleSignIn(c echo.Context) error {
	var req authRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, err := s.users.SignIn(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return s.translateError(c, err)
	}

	return c.JSON(http.StatusOK, tokenResponse{AccessToken: token})
}
