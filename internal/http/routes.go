package http

import (
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	config "task-tracker.com/task-tracker/internal/configs"
	middleware "task-tracker.com/task-tracker/internal/http/middlewares"
	"task-tracker.com/task-tracker/internal/services"
)

// Register wires middleware and routes. Only logout requires a bearer
// token; the rest of the surface is open.
func Register(e *echo.Echo, h *Handler, auth *services.AuthService, cfg config.Config) {
	e.HTTPErrorHandler = NewErrorHandler()

	e.Use(echomw.RequestID())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE},
	}))
	e.Use(middleware.RateLimiter(cfg.RateLimit, time.Minute))

	e.GET("/", h.Root)
	e.GET("/health", h.Health)

	e.GET("/tasks", h.ListTasks)
	e.GET("/tasks/:id", h.GetTask)
	e.POST("/tasks", h.CreateTask)
	e.PUT("/tasks/:id", h.UpdateTask)
	e.DELETE("/tasks/:id", h.DeleteTask)

	e.GET("/projects", h.ListProjects)
	e.GET("/projects/:id", h.GetProject)
	e.POST("/projects", h.CreateProject)
	e.DELETE("/projects/:id", h.DeleteProject)

	e.POST("/auth/register", h.Register)
	e.POST("/auth/login", h.Login)
	e.POST("/auth/refresh", h.Refresh)
	e.POST("/auth/logout", h.Logout, middleware.RequireAuth(auth))
}
