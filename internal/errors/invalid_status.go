package errors

import "net/http"

var ErrInvalidStatus = &Exception{
	Kind:       KindValidation,
	Message:    "status must be one of pending, approved, done, rejected",
	StatusCode: http.StatusBadRequest,
}
