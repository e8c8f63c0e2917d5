package errors

import "net/http"

// ErrInvalidCredentials is returned both when the user does not exist and
// when the password does not match, so callers cannot enumerate accounts.
var ErrInvalidCredentials = &Exception{
	Message:    "invalid credentials",
	StatusCode: http.StatusUnauthorized,
}
