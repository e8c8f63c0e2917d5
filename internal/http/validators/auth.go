package validators

import (
	dto "task-tracker.com/task-tracker/internal/data_models"
	apperrors "task-tracker.com/task-tracker/internal/errors"
)

const (
	minUserNameLen = 3
	maxUserNameLen = 64
	minPasswordLen = 8
)

func ValidateRegister(r *dto.RegisterRequest) error {
	fields := map[string]string{}

	switch {
	case r.UserName == "":
		fields["userName"] = "Username is required"
	case len(r.UserName) < minUserNameLen:
		fields["userName"] = "Username must be at least 3 characters"
	case len(r.UserName) > maxUserNameLen:
		fields["userName"] = "Username cannot be longer than 64 characters"
	}

	switch {
	case r.Password == "":
		fields["password"] = "Password is required"
	case len(r.Password) < minPasswordLen:
		fields["password"] = "Password must be at least 8 characters"
	}

	if len(fields) > 0 {
		return apperrors.NewValidation(fields)
	}
	return nil
}

func ValidateLogin(r *dto.LoginRequest) error {
	fields := map[string]string{}

	if r.UserName == "" {
		fields["userName"] = "Username is required"
	}
	if r.Password == "" {
		fields["password"] = "Password is required"
	}

	if len(fields) > 0 {
		return apperrors.NewValidation(fields)
	}
	return nil
}
