package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "task-tracker.com/task-tracker/internal/errors"
	model "task-tracker.com/task-tracker/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// filtered applies the isDone and search predicates. Search and Count must
// go through this so both see identical filters.
func (r *TaskRepository) filtered(ctx context.Context, isDone *bool, search string) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.TaskItem{})

	if isDone != nil {
		q = q.Where("is_done = ?", *isDone)
	}

	if term := strings.TrimSpace(search); term != "" {
		pattern := "%" + strings.ToLower(term) + "%"
		q = q.Where("lower(title) LIKE ? OR lower(description) LIKE ?", pattern, pattern)
	}

	return q
}

// Search returns one page of matching tasks, newest first. Ties on
// created_utc fall back to storage order.
func (r *TaskRepository) Search(ctx context.Context, page, pageSize int, isDone *bool, search string) ([]model.TaskItem, error) {
	var tasks []model.TaskItem
	err := r.filtered(ctx, isDone, search).
		Order("created_utc desc").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&tasks).Error
	return tasks, err
}

// Count returns the total number of rows matching the same predicates as
// Search, without paging.
func (r *TaskRepository) Count(ctx context.Context, isDone *bool, search string) (int64, error) {
	var n int64
	err := r.filtered(ctx, isDone, search).Count(&n).Error
	return n, err
}

func (r *TaskRepository) FindByID(ctx context.Context, id uint) (*model.TaskItem, error) {
	var task model.TaskItem
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) Create(ctx context.Context, task *model.TaskItem) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *TaskRepository) Update(ctx context.Context, task *model.TaskItem) error {
	return r.db.WithContext(ctx).Save(task).Error
}

func (r *TaskRepository) Delete(ctx context.Context, task *model.TaskItem) error {
	return r.db.WithContext(ctx).Delete(task).Error
}
