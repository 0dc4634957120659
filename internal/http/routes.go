package http

import (
	"time"

	"github.com/labstack/echo/v4"

	"task-tracker.com/task-tracker/internal/auth"
	middleware "task-tracker.com/task-tracker/internal/http/middlewares"
	"task-tracker.com/task-tracker/internal/queue"
)

func Register(e *echo.Echo, h *Handler, verifier *auth.Verifier, rateLimitPerMinute int) {
	e.JSONSerializer = JSONSerializer{}
	e.Use(middleware.RateLimiter(queue.NewMemoryQuota(rateLimitPerMinute, time.Minute), time.Minute))

	e.GET("/health", h.Health)

	authed := middleware.Auth(verifier)

	e.GET("/tasks", h.ListTasks, authed)
	e.GET("/tasks/:id", h.GetTask, authed)
	e.POST("/tasks/create", h.CreateTask, authed)
	e.PUT("/tasks/:id", h.UpdateTask, authed)
	e.DELETE("/tasks/:id", h.DeleteTask, authed)

	e.GET("/logs", h.ListLogs, authed)
	e.GET("/notifications", h.ListNotifications, authed)
	e.DELETE("/notifications/clear-all", h.ClearNotifications, authed)
}
