package errors

import "net/http"

var ErrTaskIDMismatch = &Exception{
	Message:    "task id in path and body must match",
	StatusCode: http.StatusBadRequest,
}
