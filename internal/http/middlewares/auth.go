package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"task-tracker.com/task-tracker/internal/auth"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	model "task-tracker.com/task-tracker/pkg/models"
)

const actorKey = "actor"

// Auth rejects requests without a valid bearer token and stores the actor
// on the context.
func Auth(verifier *auth.Verifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, err := verifier.ActorFromHeader(c.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				log.WithError(err).WithField("path", c.Path()).Debug("rejected request token")
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrUnauthorized.Message)
			}

			c.Set(actorKey, actor)
			return next(c)
		}
	}
}

func ActorFrom(c echo.Context) (model.Actor, bool) {
	actor, ok := c.Get(actorKey).(model.Actor)
	return actor, ok
}
