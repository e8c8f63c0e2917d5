package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"task-tracker.com/task-tracker/internal/services"
)

type Handler struct {
	taskService    *services.TaskService
	projectService *services.ProjectService
	authService    *services.AuthService
	serviceName    string
}

func NewHandler(
	taskService *services.TaskService,
	projectService *services.ProjectService,
	authService *services.AuthService,
	serviceName string,
) *Handler {
	return &Handler{
		taskService:    taskService,
		projectService: projectService,
		authService:    authService,
		serviceName:    serviceName,
	}
}

func (h *Handler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"ok":      true,
		"service": h.serviceName,
	})
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
