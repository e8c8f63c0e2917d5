package dto

import (
	"time"

	model "task-tracker.com/task-tracker/internal/models"
)

func ToTaskReadDto(e *model.TaskItem) TaskReadDto {
	return TaskReadDto{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		IsDone:      e.IsDone,
		CreatedUtc:  e.CreatedUtc,
		DueUtc:      e.DueUtc,
		ProjectID:   e.ProjectID,
	}
}

func ToTaskReadDtos(items []model.TaskItem) []TaskReadDto {
	out := make([]TaskReadDto, 0, len(items))
	for i := range items {
		out = append(out, ToTaskReadDto(&items[i]))
	}
	return out
}

// ToTaskItem builds a new entity from a create request. IsDone and
// CreatedUtc are server-assigned here, whatever the caller sent.
func ToTaskItem(d *TaskCreateDto) *model.TaskItem {
	return &model.TaskItem{
		Title:       d.Title,
		Description: d.Description,
		IsDone:      false,
		CreatedUtc:  time.Now().UTC(),
		DueUtc:      d.DueUtc,
		ProjectID:   d.ProjectID,
	}
}

// ApplyTaskUpdate copies the mutable fields onto an existing entity.
// CreatedUtc and ProjectID are left untouched.
func ApplyTaskUpdate(e *model.TaskItem, d *TaskUpdateDto) {
	e.Title = d.Title
	e.Description = d.Description
	e.IsDone = d.IsDone
	e.DueUtc = d.DueUtc
}

func ToProjectReadDto(p *model.Project) ProjectReadDto {
	return ProjectReadDto{
		ID:    p.ID,
		Name:  p.Name,
		Tasks: ToTaskReadDtos(p.Tasks),
	}
}
