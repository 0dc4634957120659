package errors

import "net/http"

// RateLimitMessage is shown verbatim to users and matched by clients.
const RateLimitMessage = "Too many task creation attempts. Please try again later."

var ErrTooManyCreations = &Exception{
	Kind:       KindRateLimited,
	Message:    RateLimitMessage,
	StatusCode: http.StatusTooManyRequests,
}
