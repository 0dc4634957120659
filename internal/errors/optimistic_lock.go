package errors

import "net/http"

var ErrOptimisticLock = &Exception{
	Kind:       KindUnknown,
	Message:    "task was modified concurrently, reload and try again",
	StatusCode: http.StatusConflict,
}
