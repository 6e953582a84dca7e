// Package httpapi exposes the HTTP/JSON surface: registration, login and
// the token-gated task routes.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/aivanovs/taskkeeper/internal/logging"
	"github.com/aivanovs/taskkeeper/internal/server/tasks"
	"github.com/aivanovs/taskkeeper/internal/server/users"
	"github.com/labstack/echo/v4"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	address   string
	logger    logging.Logger
	users     *users.Service
	tasks     *tasks.Service
	jwtSecret []byte
}

func NewServer(address string, l logging.Logger, us *users.Service, ts *tasks.Service, secretKey string) (*Server, error) {
	return &Server{
		address:   address,
		logger:    l.With("module", "httpapi"),
		users:     us,
		tasks:     ts,
		jwtSecret: []byte(secretKey),
	}, nil
}

func (s *Server) newEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.GET("/", s.handleLiveness)
	e.POST("/register", s.handleRegister)
	e.POST("/login", s.handleLogin)

	g := e.Group("/tasks", s.requireAuth)
	g.GET("", s.handleListTasks)
	g.POST("", s.handleCreateTask)
	g.DELETE("/:id", s.handleDeleteTask)

	return e
}

func (s *Server) Run(ctx context.Context) error {

	e := s.newEcho()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := e.Start(s.address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
