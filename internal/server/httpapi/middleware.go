package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/avelichko/bookmarks/internal/server/auth"
	"github.com/labstack/echo/v4"
)

const userIDContextKey = "userID"

// bearerAuth extracts and verifies the bearer token from the Authorization
// header and stores the subject's user id in the request context. A missing,
// malformed or expired token yields 401.
func (s *Server) bearerAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
		}

		userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
		}

		c.Set(userIDContextKey, userID)
		return next(c)
	}
}

// requestUserID returns the authenticated user id placed in the context by
// bearerAuth.
func requestUserID(c echo.Context) int64 {
	id, _ := c.Get(userIDContextKey).(int64)
	return id
}

// requestLogger logs one line per request with method, path, status and
// duration through the service logger.
func (s *Server) requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			c.Error(err)
		}

		s.logger.Info(c.Request().Context(), "request",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"status", c.Response().Status,
			"duration", time.Since(start).String(),
		)

		return err
	}
}
