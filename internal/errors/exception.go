package errors

import (
	"errors"
	"net/http"
)

type Kind string

const (
	KindValidation       Kind = "ValidationError"
	KindRateLimited      Kind = "RateLimited"
	KindPermissionDenied Kind = "PermissionDenied"
	KindNotFound         Kind = "NotFound"
	KindUnknown          Kind = "Unknown"
)

type Exception struct {
	Kind       Kind
	Message    string
	StatusCode int
}

func (e *Exception) Error() string {
	return e.Message
}

// Is matches any Exception of the same kind, so callers can test with
// errors.Is(err, ErrPermissionDenied) regardless of the message.
func (e *Exception) Is(target error) bool {
	t, ok := target.(*Exception)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.StatusCode == 0 || e.StatusCode == 0 || t.StatusCode == e.StatusCode)
}

func New(kind Kind, message string) *Exception {
	return &Exception{Kind: kind, Message: message, StatusCode: statusForKind(kind)}
}

func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) && appErr.StatusCode != 0 {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

func KindOf(err error) Kind {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

// FromStatus builds the client-side error for a failed HTTP response.
// message is the server's "message" field and may be empty.
func FromStatus(code int, message, fallback string) *Exception {
	if message == "" {
		message = fallback
	}
	return &Exception{Kind: kindForStatus(code), Message: message, StatusCode: code}
}

func kindForStatus(code int) Kind {
	switch code {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return KindValidation
	case http.StatusTooManyRequests:
		return KindRateLimited
	case http.StatusUnauthorized, http.StatusForbidden:
		return KindPermissionDenied
	case http.StatusNotFound:
		return KindNotFound
	}
	return KindUnknown
}

func statusForKind(kind Kind) int {
	switch kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindRateLimited:
		return http.StatusTooManyRequests
	case KindPermissionDenied:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
