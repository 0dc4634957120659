package errors

import "net/http"

var ErrTitleRequired = &Exception{
	Kind:       KindValidation,
	Message:    "title is required",
	StatusCode: http.StatusBadRequest,
}
