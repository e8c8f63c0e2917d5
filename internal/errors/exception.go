package errors

import (
	"errors"
	"net/http"
)

// Exception is an error the HTTP surface maps directly to a status code.
// Anything that is not an Exception is treated as an unexpected failure
// and surfaced as a 500.
type Exception struct {
	Message    string
	StatusCode int
}

func (e *Exception) Error() string {
	return e.Message
}

func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	var valErr *ValidationException
	if errors.As(err, &valErr) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
