package cmd

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	config "task-tracker.com/task-tracker/internal/configs"
	httpapi "task-tracker.com/task-tracker/internal/http"
	repository "task-tracker.com/task-tracker/internal/repositories"
	"task-tracker.com/task-tracker/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the task tracker REST API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()
		database := config.New(cfg.DatabaseDSN)
		if cfg.SeedData {
			config.Seed(database)
		}

		taskRepo := repository.NewTaskRepository(database)
		projectRepo := repository.NewProjectRepository(database)
		userRepo := repository.NewUserRepository(database)
		refreshTokenRepo := repository.NewRefreshTokenRepository(database)

		taskService := services.NewTaskService(taskRepo, projectRepo, cfg.DefaultPageSize, cfg.MaxPageSize)
		projectService := services.NewProjectService(projectRepo)
		authService := services.NewAuthService(
			userRepo,
			refreshTokenRepo,
			cfg.JWTSecret,
			cfg.JWTIssuer,
			cfg.JWTAudience,
			time.Duration(cfg.AccessTokenTTLHours)*time.Hour,
			time.Duration(cfg.RefreshTokenTTLDays)*24*time.Hour,
		)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		e := echo.New()
		e.HideBanner = true
		handler := httpapi.NewHandler(taskService, projectService, authService, cfg.ServiceName)
		httpapi.Register(e, handler, authService, cfg)

		go func() {
			log.Printf("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil {
				log.Printf("server stopped: %v", err)
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()
		_ = e.Shutdown(shutdownCtx)

		log.Println("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
