package httpapi

import (
	"net/http"

	"github.com/avelichko/bookmarks/internal/server/models"
	"github.com/labstack/echo/v4"
)

func (s *Server) handleGetMe(c echo.Context) error {
	user, err := s.users.GetByID(c.Request().Context(), requestUserID(c))
	if err != nil {
		return s.translateError(c, err)
	}

	return c.JSON(http.StatusOK, user)
}

func (s *Server) handleEditUser(c echo.Context) error {
	var req editUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	upd := models.UserUpdate{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}

	user, err := s.users.Edit(c.Request().Context(), requestUserID(c), upd)
	if err != nil {
		return s.translateError(c, err)
	}

	return c.JSON(http.StatusOK, user)
}
