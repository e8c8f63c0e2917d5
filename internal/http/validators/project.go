package validators

import (
	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
)

func ValidateProjectCreate(r *dto.ProjectCreateDto) error {
	fields := map[string]string{}

	if r.Name == "" {
		fields["name"] = "Project name is required"
	} else if len(r.Name) > maxTitleLen {
		fields["name"] = "Project name cannot be longer than 200 characters"
	}

	if len(fields) > 0 {
		return apperrors.NewValidation(fields)
	}
	return nil
}
