package httpapi

import (
	"net/http"
	"strconv"

	"github.com/avelichko/bookmarks/internal/server/models"
	"github.com/labstack/echo/v4"
)

func bookmarkIDParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid bookmark id")
	}
	return id, nil
}

func (s *Server) handleListBookmarks(c echo.Context) error {
	result, err := s.bookmarks.List(c.Request().Context(), requestUserID(c))
	if err != nil {
		return s.translateError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

func (s *Server) handleGetBookmark(c echo.Context) error {
	id, err := bookmarkIDParam(c)
	if err != nil {
		return err
	}

	b, err := s.bookmarks.GetByID(c.Request().Context(), requestUserID(c), id)
	if err != nil {
		return s.translateError(c, err)
	}

	return c.JSON(http.StatusOK, b)
}

func (s *Server) handleCreateBookmark(c echo.Context) error {
	var req createBookmarkRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	b, err := s.bookmarks.Create(c.Request().Context(), requestUserID(c), req.Title, req.Link, req.Description)
	if err != nil {
		return s.translateError(c, err)
	}

	return c.JSON(http.StatusCreated, b)
}

func (s *Server) handleEditBookmark(c echo.Context) error {
	id, err := bookmarkIDParam(c)
	if err != nil {
		return err
	}

	var req editBookmarkRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	upd := models.BookmarkUpdate{
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
	}

	b, err := s.bookmarks.EditByID(c.Request().Context(), requestUserID(c), id, upd)
	if err != nil {
		return s.translateError(c, err)
	}

	return c.JSON(http.StatusOK, b)
}

func (s *Server) handleDeleteBookmark(c echo.Context) error {
	id, err := bookmarkIDParam(c)
	if err != nil {
		return err
	}

	if err := s.bookmarks.DeleteByID(c.Request().Context(), requestUserID(c), id); err != nil {
		return s.translateError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
