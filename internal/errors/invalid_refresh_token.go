package errors

import "net/http"

// ErrInvalidRefreshToken covers unknown, revoked and expired tokens alike.
var ErrInvalidRefreshToken = &Exception{
	Message:    "invalid refresh token",
	StatusCode: http.StatusUnauthorized,
}
