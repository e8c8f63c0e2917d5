package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	model "task-tracker.com/task-tracker/internal/models"
	repository "task-tracker.com/task-tracker/internal/repositories"
)

func newProjectService(t *testing.T) (*ProjectService, *TaskService, *repositoryBundle) {
	t.Helper()

	db := setupTestDB(t)
	bundle := &repositoryBundle{
		db:       db,
		tasks:    repository.NewTaskRepository(db),
		projects: repository.NewProjectRepository(db),
	}
	return NewProjectService(bundle.projects),
		NewTaskService(bundle.tasks, bundle.projects, 10, 100),
		bundle
}

type repositoryBundle struct {
	db       *gorm.DB
	tasks    *repository.TaskRepository
	projects *repository.ProjectRepository
}

func TestProjectCreateAndGetWithTasks(t *testing.T) {
	projects, _, bundle := newProjectService(t)
	ctx := context.Background()

	created, err := projects.Create(ctx, &dto.ProjectCreateDto{Name: "Website"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	mustCreateTask(t, bundle.db, created.ID, "T1", false, time.Now().UTC())
	mustCreateTask(t, bundle.db, created.ID, "T2", true, time.Now().UTC())

	got, err := projects.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Website", got.Name)
	assert.Len(t, got.Tasks, 2)
}

func TestProjectGet_UnknownNotFound(t *testing.T) {
	projects, _, _ := newProjectService(t)

	_, err := projects.Get(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrProjectNotFound)
}

func TestProjectList_ReturnsAllWithTasks(t *testing.T) {
	projects, _, bundle := newProjectService(t)
	ctx := context.Background()

	a, err := projects.Create(ctx, &dto.ProjectCreateDto{Name: "A"})
	require.NoError(t, err)
	_, err = projects.Create(ctx, &dto.ProjectCreateDto{Name: "B"})
	require.NoError(t, err)
	mustCreateTask(t, bundle.db, a.ID, "T", false, time.Now().UTC())

	all, err := projects.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestProjectDelete_CascadesToTasks(t *testing.T) {
	projects, tasks, bundle := newProjectService(t)
	ctx := context.Background()

	created, err := projects.Create(ctx, &dto.ProjectCreateDto{Name: "Doomed"})
	require.NoError(t, err)
	task := mustCreateTask(t, bundle.db, created.ID, "Goes with it", false, time.Now().UTC())

	require.NoError(t, projects.Delete(ctx, created.ID))

	_, err = projects.Get(ctx, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrProjectNotFound)

	_, err = tasks.Get(ctx, task.ID)
	assert.ErrorIs(t, err, apperrors.ErrTaskNotFound)

	var count int64
	require.NoError(t, bundle.db.Model(&model.TaskItem{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestProjectDelete_UnknownNotFound(t *testing.T) {
	projects, _, _ := newProjectService(t)

	err := projects.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrProjectNotFound)
}
