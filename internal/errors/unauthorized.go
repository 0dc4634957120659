package errors

import "net/http"

var ErrUnauthorized = &Exception{
	Kind:       KindPermissionDenied,
	Message:    "Invalid or expired token",
	StatusCode: http.StatusUnauthorized,
}
