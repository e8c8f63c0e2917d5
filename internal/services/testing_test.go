package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	model "task-tracker.com/task-tracker/internal/models"
	repository "task-tracker.com/task-tracker/internal/repositories"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to connect database")

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)

	err = db.AutoMigrate(
		&model.Project{},
		&model.TaskItem{},
		&model.User{},
		&model.RefreshToken{},
	)
	require.NoError(t, err, "failed to migrate database")

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	return db
}

func newTaskService(t *testing.T, defaultPageSize, maxPageSize int) (*TaskService, *gorm.DB) {
	t.Helper()

	db := setupTestDB(t)
	taskRepo := repository.NewTaskRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	return NewTaskService(taskRepo, projectRepo, defaultPageSize, maxPageSize), db
}

func newAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()

	db := setupTestDB(t)
	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	svc := NewAuthService(
		userRepo,
		refreshTokenRepo,
		"test-secret",
		"test-issuer",
		"test-audience",
		4*time.Hour,
		7*24*time.Hour,
	)
	return svc, db
}

func mustCreateProject(t *testing.T, db *gorm.DB, name string) *model.Project {
	t.Helper()

	project := &model.Project{Name: name}
	require.NoError(t, db.Create(project).Error)
	return project
}

// mustCreateTask inserts a task directly, bypassing the service, so tests
// can control CreatedUtc.
func mustCreateTask(t *testing.T, db *gorm.DB, projectID uint, title string, isDone bool, createdUtc time.Time) *model.TaskItem {
	t.Helper()

	task := &model.TaskItem{
		Title:      title,
		IsDone:     isDone,
		CreatedUtc: createdUtc,
		ProjectID:  projectID,
	}
	require.NoError(t, db.Create(task).Error)
	return task
}
