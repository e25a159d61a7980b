// Package httpapi exposes the service over REST using echo. It owns routing,
// request decoding/validation, bearer-token authentication and the mapping
// of service errors to HTTP statuses.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/avelichko/bookmarks/internal/logging"
	"github.com/avelichko/bookmarks/internal/server/services"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	address   string
	echo      *echo.Echo
	logger    logging.Logger
	users     *services.UserService
	bookmarks *services.BookmarkService
	jwtSecret []byte
}

func NewServer(address string, l logging.Logger, us *services.UserService, bs *services.BookmarkService, secretKey string) *Server {
	s := &Server{
		address:   address,
		logger:    l.With("module", "http_server"),
		users:     us,
		bookmarks: bs,
		jwtSecret: []byte(secretKey),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = newRequestValidator()

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(s.requestLogger)

	e.POST("/auth/signup", s.handleSignUp)
	e.POST("/auth/signin", s.handleSignIn)

	user := e.Group("/user", s.bearerAuth)
	user.GET("/me", s.handleGetMe)
	user.PATCH("/edit", s.handleEditUser)

	bookmark := e.Group("/bookmark", s.bearerAuth)
	bookmark.GET("", s.handleListBookmarks)
	bookmark.GET("/:id", s.handleGetBookmark)
	bookmark.POST("", s.handleCreateBookmark)
	bookmark.PATCH("/:id", s.handleEditBookmark)
	bookmark.DELETE("/:id", s.handleDeleteBookmark)

	s.echo = e
	return s
}

// Handler exposes the underlying router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Run starts the HTTP server and blocks until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.echo.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := s.echo.Start(s.address); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}
