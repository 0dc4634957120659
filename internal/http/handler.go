package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	apperrors "task-tracker.com/task-tracker/internal/errors"
	middleware "task-tracker.com/task-tracker/internal/http/middlewares"
	"task-tracker.com/task-tracker/internal/http/validators"
	"task-tracker.com/task-tracker/internal/services"
	model "task-tracker.com/task-tracker/pkg/models"
)

type Handler struct {
	taskService *services.TaskService
}

func NewHandler(taskService *services.TaskService) *Handler {
	return &Handler{
		taskService: taskService,
	}
}

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

func (h *Handler) ListTasks(c echo.Context) error {
	status, err := validators.ParseStatusFilter(c.QueryParam("status"))
	if err != nil {
		return httpError(err, "failed to list tasks")
	}

	tasks, err := h.taskService.ListTasks(c.Request().Context(), status)
	if err != nil {
		return httpError(err, "failed to list tasks")
	}
	if tasks == nil {
		tasks = []model.Task{}
	}

	return c.JSON(http.StatusOK, tasks)
}

func (h *Handler) GetTask(c echo.Context) error {
	task, err := h.taskService.GetTask(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err, "failed to fetch task")
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) CreateTask(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}

	var req model.CreateTaskData
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrInvalidJSON.Message)
	}
	if err := validators.ValidateCreateTaskRequest(&req); err != nil {
		return httpError(err, "failed to create task")
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), actor, req)
	if err != nil {
		return httpError(err, "failed to create task")
	}

	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) UpdateTask(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}

	var req model.UpdateTaskData
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrInvalidJSON.Message)
	}
	if err := validators.ValidateUpdateTaskRequest(&req); err != nil {
		return httpError(err, "failed to update task")
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), actor, c.Param("id"), req)
	if err != nil {
		return httpError(err, "failed to update task")
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}

	if err := h.taskService.DeleteTask(c.Request().Context(), actor, c.Param("id")); err != nil {
		return httpError(err, "failed to delete task")
	}

	return c.JSON(http.StatusOK, model.DeleteResult{Message: "Task deleted successfully"})
}

func (h *Handler) ListLogs(c echo.Context) error {
	filter, err := validators.ParseLogFilter(c)
	if err != nil {
		return httpError(err, "failed to fetch logs")
	}

	res, err := h.taskService.ListLogs(c.Request().Context(), filter)
	if err != nil {
		return httpError(err, "failed to fetch logs")
	}

	return c.JSON(http.StatusOK, res)
}

func (h *Handler) ListNotifications(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}

	page, limit, err := validators.ParsePage(c.QueryParam("page"), c.QueryParam("limit"))
	if err != nil {
		return httpError(err, "failed to fetch notifications")
	}

	res, err := h.taskService.ListNotifications(c.Request().Context(), actor, page, limit)
	if err != nil {
		return httpError(err, "failed to fetch notifications")
	}

	return c.JSON(http.StatusOK, res)
}

func (h *Handler) ClearNotifications(c echo.Context) error {
	actor, err := actorOf(c)
	if err != nil {
		return err
	}

	n, err := h.taskService.ClearNotifications(c.Request().Context(), actor)
	if err != nil {
		return httpError(err, "failed to clear notifications")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Notifications cleared",
		"deleted": n,
	})
}

func actorOf(c echo.Context) (model.Actor, error) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return model.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrUnauthorized.Message)
	}
	return actor, nil
}

// httpError maps service errors onto HTTP errors. Anything that is not an
// Exception is logged and hidden behind fallback.
func httpError(err error, fallback string) error {
	var appErr *apperrors.Exception
	if errors.As(err, &appErr) {
		return echo.NewHTTPError(apperrors.StatusCode(appErr), appErr.Message)
	}

	log.WithError(err).Error(fallback)
	return echo.NewHTTPError(http.StatusInternalServerError, fallback)
}
