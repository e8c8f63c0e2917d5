package services

import (
	"context"

	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	repository "task-tracker.com/task-tracker/internal/repositories"
)

// TaskService owns the task query engine and task CRUD. Paging bounds are
// process-wide configuration, fixed at construction.
type TaskService struct {
	repo            *repository.TaskRepository
	projects        *repository.ProjectRepository
	defaultPageSize int
	maxPageSize     int
}

func NewTaskService(
	repo *repository.TaskRepository,
	projects *repository.ProjectRepository,
	defaultPageSize, maxPageSize int,
) *TaskService {
	return &TaskService{
		repo:            repo,
		projects:        projects,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

// normalizePaging clamps caller input instead of rejecting it: page floors
// to 1, an absent/non-positive pageSize gets the configured default, and
// pageSize is capped at the configured maximum.
func (s *TaskService) normalizePaging(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = s.defaultPageSize
	}
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > s.maxPageSize {
		pageSize = s.maxPageSize
	}
	return page, pageSize
}

// Search returns one page of tasks, newest first, plus the total number of
// rows matching the same filters. A page past the end of the result set
// yields an empty page, not an error.
func (s *TaskService) Search(ctx context.Context, page, pageSize int, isDone *bool, search string) (*dto.TaskListDto, error) {
	page, pageSize = s.normalizePaging(page, pageSize)

	items, err := s.repo.Search(ctx, page, pageSize, isDone, search)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Count(ctx, isDone, search)
	if err != nil {
		return nil, err
	}

	return &dto.TaskListDto{
		Items:      dto.ToTaskReadDtos(items),
		TotalCount: total,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

func (s *TaskService) Get(ctx context.Context, id uint) (*dto.TaskReadDto, error) {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	read := dto.ToTaskReadDto(task)
	return &read, nil
}

// Create persists a new task. CreatedUtc and IsDone are server-assigned;
// the referenced project must exist.
func (s *TaskService) Create(ctx context.Context, in *dto.TaskCreateDto) (*dto.TaskReadDto, error) {
	ok, err := s.projects.Exists(ctx, in.ProjectID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.NewValidation(map[string]string{
			"projectId": "project does not exist",
		})
	}

	task := dto.ToTaskItem(in)
	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}

	read := dto.ToTaskReadDto(task)
	return &read, nil
}

// Update applies the mutable fields of an existing task. CreatedUtc and
// the owning project never change.
func (s *TaskService) Update(ctx context.Context, id uint, in *dto.TaskUpdateDto) error {
	if id != in.ID {
		return apperrors.ErrTaskIDMismatch
	}

	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	dto.ApplyTaskUpdate(task, in)
	return s.repo.Update(ctx, task)
}

func (s *TaskService) Delete(ctx context.Context, id uint) error {
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, task)
}
