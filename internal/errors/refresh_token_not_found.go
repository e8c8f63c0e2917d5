package errors

import "net/http"

var ErrRefreshTokenNotFound = &Exception{
	Message:    "refresh token not found",
	StatusCode: http.StatusNotFound,
}
