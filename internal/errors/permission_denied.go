package errors

import "net/http"

var ErrPermissionDenied = &Exception{
	Kind:       KindPermissionDenied,
	Message:    "you are not allowed to modify this task",
	StatusCode: http.StatusForbidden,
}

var ErrStatusChangeDenied = &Exception{
	Kind:       KindPermissionDenied,
	Message:    "Only approvers can change task status",
	StatusCode: http.StatusForbidden,
}

var ErrCreateDenied = &Exception{
	Kind:       KindPermissionDenied,
	Message:    "only submitters can create tasks",
	StatusCode: http.StatusForbidden,
}
