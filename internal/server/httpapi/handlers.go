package httpapi

import (
	"errors"
	"net/http"

	"github.com/aivanovs/taskkeeper/internal/common"
	"github.com/labstack/echo/v4"
)

// writeError maps service errors to HTTP responses. Nothing internal leaks
// past this point: unknown failures are logged and answered with a stable
// 500 body.
func (s *Server) writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrValidation):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing required fields"})
	case errors.Is(err, common.ErrAlreadyExists):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username already exists"})
	case errors.Is(err, common.ErrUnauthorized):
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid username or password"})
	case errors.Is(err, common.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	default:
		s.logger.Error(c.Request().Context(), "request failed", "error", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
}

func (s *Server) handleLiveness(c echo.Context) error {
	return c.String(http.StatusOK, "taskkeeper is running")
}

func (s *Server) handleRegister(c echo.Context) error {
	ctx := c.Request().Context()

	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.UserName == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username and password are required"})
	}

	user, err := s.users.Register(ctx, req.UserName, req.Password)
	if err != nil {
		return s.writeError(c, err)
	}

	s.logger.Info(ctx, "user registered", "username", user.UserName)
	return c.JSON(http.StatusCreated, echo.Map{"message": "user registered"})
}

func (s *Server) handleLogin(c echo.Context) error {
	ctx := c.Request().Context()

	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.UserName == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username and password are required"})
	}

	token, err := s.users.Login(ctx, req.UserName, req.Password)
	if err != nil {
		return s.writeError(c, err)
	}

	s.logger.Info(ctx, "user logged in", "username", req.UserName)
	return c.JSON(http.StatusOK, echo.Map{"token": token})
}

func (s *Server) handleListTasks(c echo.Context) error {
	list, err := s.tasks.List(c.Request().Context(), ownerID(c))
	if err != nil {
		return s.writeError(c, err)
	}

	return c.JSON(http.StatusOK, list)
}

func (s *Server) handleCreateTask(c echo.Context) error {
	ctx := c.Request().Context()

	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.Text == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "text is required"})
	}

	task, err := s.tasks.Create(ctx, ownerID(c), req.Text)
	if err != nil {
		return s.writeError(c, err)
	}

	s.logger.Info(ctx, "task created", "task_id", task.ID)
	return c.JSON(http.StatusCreated, task)
}

func (s *Server) handleDeleteTask(c echo.Context) error {
	ctx := c.Request().Context()

	if err := s.tasks.Delete(ctx, ownerID(c), c.Param("id")); err != nil {
		return s.writeError(c, err)
	}

	s.logger.Info(ctx, "task deleted", "task_id", c.Param("id"))
	return c.JSON(http.StatusOK, echo.Map{"message": "task deleted"})
}
