package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	model "task-tracker.com/task-tracker/internal/models"
)

func boolPtr(v bool) *bool    { return &v }
func strPtr(v string) *string { return &v }

func seedTasks(t *testing.T, db *gorm.DB, projectID uint, n int) []model.TaskItem {
	t.Helper()

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	out := make([]model.TaskItem, 0, n)
	for i := 0; i < n; i++ {
		task := mustCreateTask(t, db, projectID, "Task", i%2 == 0, base.Add(time.Duration(i)*time.Minute))
		out = append(out, *task)
	}
	return out
}

func TestSearch_PageBelowOneBehavesAsPageOne(t *testing.T) {
	svc, db := newTaskService(t, 10, 100)
	project := mustCreateProject(t, db, "P")
	seedTasks(t, db, project.ID, 5)

	ctx := context.Background()
	for _, page := range []int{0, -1, -100} {
		got, err := svc.Search(ctx, page, 3, nil, "")
		require.NoError(t, err)

		want, err := svc.Search(ctx, 1, 3, nil, "")
		require.NoError(t, err)

		assert.Equal(t, want.Items, got.Items, "page=%d should behave as page=1", page)
		assert.Equal(t, 1, got.Page)
	}
}

func TestSearch_PageSizeNormalization(t *testing.T) {
	svc, db := newTaskService(t, 4, 6)
	project := mustCreateProject(t, db, "P")
	seedTasks(t, db, project.ID, 10)

	ctx := context.Background()

	// Absent or non-positive pageSize falls back to the configured default.
	for _, size := range []int{0, -7} {
		got, err := svc.Search(ctx, 1, size, nil, "")
		require.NoError(t, err)
		assert.Len(t, got.Items, 4)
		assert.Equal(t, 4, got.PageSize)
	}

	// Oversized pageSize is capped at the configured maximum.
	got, err := svc.Search(ctx, 1, 9999, nil, "")
	require.NoError(t, err)
	assert.Len(t, got.Items, 6)
	assert.Equal(t, 6, got.PageSize)
}

func TestSearch_IsDoneFilterIsStrictSubset(t *testing.T) {
	svc, db := newTaskService(t, 10, 100)
	project := mustCreateProject(t, db, "P")
	seedTasks(t, db, project.ID, 8)

	ctx := context.Background()
	all, err := svc.Search(ctx, 1, 100, nil, "")
	require.NoError(t, err)

	done, err := svc.Search(ctx, 1, 100, boolPtr(true), "")
	require.NoError(t, err)

	assert.Less(t, len(done.Items), len(all.Items))
	ids := map[uint]bool{}
	for _, item := range all.Items {
		ids[item.ID] = true
	}
	for _, item := range done.Items {
		assert.True(t, item.IsDone)
		assert.True(t, ids[item.ID], "filtered result must be a subset of the full result")
	}
}

func TestSearch_TermMatchesTitleOrDescriptionCaseInsensitively(t *testing.T) {
	svc, db := newTaskService(t, 10, 100)
	project := mustCreateProject(t, db, "P")

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	inTitle := mustCreateTask(t, db, project.ID, "Deploy STAGING environment", false, base)
	withDesc := mustCreateTask(t, db, project.ID, "Unrelated", false, base.Add(time.Minute))
	require.NoError(t, db.Model(withDesc).Update("description", "cleanup staging leftovers").Error)
	mustCreateTask(t, db, project.ID, "Production release", false, base.Add(2*time.Minute))

	ctx := context.Background()
	got, err := svc.Search(ctx, 1, 100, nil, "  StAgInG  ")
	require.NoError(t, err)

	require.Len(t, got.Items, 2)
	assert.Equal(t, withDesc.ID, got.Items[0].ID)
	assert.Equal(t, inTitle.ID, got.Items[1].ID)
	assert.EqualValues(t, 2, got.TotalCount)
}

func TestSearch_OrdersNewestFirst(t *testing.T) {
	svc, db := newTaskService(t, 10, 100)
	project := mustCreateProject(t, db, "P")
	seedTasks(t, db, project.ID, 6)

	got, err := svc.Search(context.Background(), 1, 100, nil, "")
	require.NoError(t, err)

	for i := 1; i < len(got.Items); i++ {
		prev, cur := got.Items[i-1].CreatedUtc, got.Items[i].CreatedUtc
		assert.False(t, prev.Before(cur), "items must be ordered newest first")
	}
}

func TestSearch_PageBeyondEndReturnsEmpty(t *testing.T) {
	svc, db := newTaskService(t, 10, 100)
	project := mustCreateProject(t, db, "P")
	seedTasks(t, db, project.ID, 3)

	got, err := svc.Search(context.Background(), 50, 10, nil, "")
	require.NoError(t, err)
	assert.Empty(t, got.Items)
	assert.EqualValues(t, 3, got.TotalCount)
}

func TestSearch_CountAppliesIdenticalFilters(t *testing.T) {
	svc, db := newTaskService(t, 10, 100)
	project := mustCreateProject(t, db, "P")
	seedTasks(t, db, project.ID, 9)

	ctx := context.Background()
	firstPage, err := svc.Search(ctx, 1, 2, boolPtr(true), "")
	require.NoError(t, err)

	fullFiltered, err := svc.Search(ctx, 1, 100, boolPtr(true), "")
	require.NoError(t, err)

	assert.EqualValues(t, len(fullFiltered.Items), firstPage.TotalCount,
		"total count must cover all filtered rows, not just the page")
}

func TestSearch_IsIdempotent(t *testing.T) {
	svc, db := newTaskService(t, 10, 100)
	project := mustCreateProject(t, db, "P")
	seedTasks(t, db, project.ID, 7)

	ctx := context.Background()
	first, err := svc.Search(ctx, 2, 3, nil, "")
	require.NoError(t, err)

	second, err := svc.Search(ctx, 2, 3, nil, "")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCreate_ServerAssignsFields(t *testing.T) {
	svc, db := newTaskService(t, 10, 100)
	project := mustCreateProject(t, db, "P")

	before := time.Now().UTC()
	created, err := svc.Create(context.Background(), &dto.TaskCreateDto{
		Title:     "A",
		ProjectID: project.ID,
	})
	require.NoError(t, err)

	assert.NotZero(t, created.ID)
	assert.False(t, created.IsDone)
	assert.False(t, created.CreatedUtc.Before(before))
	assert.False(t, created.CreatedUtc.After(time.Now().UTC()))
}

func TestCreate_UnknownProjectFailsValidation(t *testing.T) {
	svc, _ := newTaskService(t, 10, 100)

	_, err := svc.Create(context.Background(), &dto.TaskCreateDto{
		Title:     "A",
		ProjectID: 999,
	})

	var valErr *apperrors.ValidationException
	require.ErrorAs(t, err, &valErr)
	assert.Contains(t, valErr.Fields, "projectId")
}

func TestGet_RoundTripEqualsCreate(t *testing.T) {
	svc, db := newTaskService(t, 10, 100)
	project := mustCreateProject(t, db, "P")

	due := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	created, err := svc.Create(context.Background(), &dto.TaskCreateDto{
		Title:       "Round trip",
		Description: strPtr("desc"),
		DueUtc:      &due,
		ProjectID:   project.ID,
	})
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)

	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Title, got.Title)
	assert.Equal(t, created.Description, got.Description)
	assert.Equal(t, created.IsDone, got.IsDone)
	assert.Equal(t, created.ProjectID, got.ProjectID)
	assert.True(t, created.CreatedUtc.Equal(got.CreatedUtc))
	require.NotNil(t, got.DueUtc)
	assert.True(t, due.Equal(*got.DueUtc))
}

func TestUpdate_PreservesCreatedUtc(t *testing.T) {
	svc, db := newTaskService(t, 10, 100)
	project := mustCreateProject(t, db, "P")

	createdUtc := time.Date(2023, 1, 2, 3, 4, 5, 0, time.UTC)
	task := mustCreateTask(t, db, project.ID, "Old title", false, createdUtc)

	err := svc.Update(context.Background(), task.ID, &dto.TaskUpdateDto{
		ID:     task.ID,
		Title:  "New title",
		IsDone: true,
	})
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, "New title", got.Title)
	assert.True(t, got.IsDone)
	assert.True(t, got.CreatedUtc.Equal(createdUtc), "update must never touch createdUtc")
}

func TestUpdate_IDMismatchRejected(t *testing.T) {
	svc, db := newTaskService(t, 10, 100)
	project := mustCreateProject(t, db, "P")
	task := mustCreateTask(t, db, project.ID, "T", false, time.Now().UTC())

	err := svc.Update(context.Background(), task.ID, &dto.TaskUpdateDto{
		ID:    task.ID + 1,
		Title: "Mismatch",
	})
	assert.ErrorIs(t, err, apperrors.ErrTaskIDMismatch)
}

func TestUpdate_UnknownTaskNotFound(t *testing.T) {
	svc, _ := newTaskService(t, 10, 100)

	err := svc.Update(context.Background(), 42, &dto.TaskUpdateDto{ID: 42, Title: "T"})
	assert.ErrorIs(t, err, apperrors.ErrTaskNotFound)
}

func TestDelete_UnknownTaskNotFound(t *testing.T) {
	svc, _ := newTaskService(t, 10, 100)

	err := svc.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrTaskNotFound)
}

func TestDelete_RemovesTask(t *testing.T) {
	svc, db := newTaskService(t, 10, 100)
	project := mustCreateProject(t, db, "P")
	task := mustCreateTask(t, db, project.ID, "T", false, time.Now().UTC())

	require.NoError(t, svc.Delete(context.Background(), task.ID))

	_, err := svc.Get(context.Background(), task.ID)
	assert.True(t, errors.Is(err, apperrors.ErrTaskNotFound))
}
