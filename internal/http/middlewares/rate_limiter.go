package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"task-tracker.com/task-tracker/internal/queue"
)

// RateLimiter spends one unit of quota per request, keyed by client IP.
// window is only advertised through Retry-After. A quota backend failure
// lets the request through.
func RateLimiter(quota queue.Quota, window time.Duration) echo.MiddlewareFunc {
	retryAfter := strconv.Itoa(int(window.Seconds()))

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := quota.Acquire(c.Request().Context(), c.RealIP())
			switch {
			case errors.Is(err, queue.ErrQuotaExceeded):
				c.Response().Header().Set("Retry-After", retryAfter)
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			case err != nil:
				log.WithError(err).Warn("request rate limiter unavailable")
			}

			return next(c)
		}
	}
}
