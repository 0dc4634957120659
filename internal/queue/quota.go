package queue

import (
	"context"
	"errors"
)

// Quota counts events per key within a fixed window. It limits task
// creations per user and requests per client IP.
type Quota interface {
	// Acquire records one event for key and fails with ErrQuotaExceeded
	// once the window's limit has been used up.
	Acquire(ctx context.Context, key string) error
}

var ErrQuotaExceeded = errors.New("quota exceeded")
