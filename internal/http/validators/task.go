package validators

import (
	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 2000
)

func ValidateTaskCreate(r *dto.TaskCreateDto) error {
	fields := map[string]string{}

	if r.Title == "" {
		fields["title"] = "Task title is required"
	} else if len(r.Title) > maxTitleLen {
		fields["title"] = "Task title cannot be longer than 200 characters"
	}
	if r.Description != nil && len(*r.Description) > maxDescriptionLen {
		fields["description"] = "Description cannot be longer than 2000 characters"
	}
	if r.ProjectID == 0 {
		fields["projectId"] = "Project id is required"
	}

	if len(fields) > 0 {
		return apperrors.NewValidation(fields)
	}
	return nil
}

func ValidateTaskUpdate(r *dto.TaskUpdateDto) error {
	fields := map[string]string{}

	if r.ID == 0 {
		fields["id"] = "Task id is required"
	}
	if r.Title == "" {
		fields["title"] = "Task title is required"
	} else if len(r.Title) > maxTitleLen {
		fields["title"] = "Task title cannot be longer than 200 characters"
	}
	if r.Description != nil && len(*r.Description) > maxDescriptionLen {
		fields["description"] = "Description cannot be longer than 2000 characters"
	}

	if len(fields) > 0 {
		return apperrors.NewValidation(fields)
	}
	return nil
}
