package services

import (
	"context"
	"errors"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"task-tracker.com/task-tracker/internal/constants"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	"task-tracker.com/task-tracker/internal/permissions"
	"task-tracker.com/task-tracker/internal/queue"
	repository "task-tracker.com/task-tracker/internal/repositories"
	model "task-tracker.com/task-tracker/pkg/models"
)

type TaskService struct {
	repo     *repository.TaskRepository
	activity *repository.ActivityRepository
	pool     *PoolService
	quota    queue.Quota
}

func NewTaskService(
	quota queue.Quota,
	repo *repository.TaskRepository,
	activity *repository.ActivityRepository,
	pool *PoolService,
) *TaskService {
	return &TaskService{
		repo:     repo,
		activity: activity,
		pool:     pool,
		quota:    quota,
	}
}

func (s *TaskService) ListTasks(ctx context.Context, status *constants.TaskStatus) ([]model.Task, error) {
	records, err := s.repo.List(ctx, status)
	if err != nil {
		return nil, err
	}

	tasks := make([]model.Task, len(records))
	for i, r := range records {
		tasks[i] = r.ToTask()
	}
	return tasks, nil
}

func (s *TaskService) GetTask(ctx context.Context, id string) (*model.Task, error) {
	if id == "" {
		return nil, apperrors.ErrTaskIDRequired
	}

	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	task := record.ToTask()
	return &task, nil
}

// CreateTask files a new pending task for a submitter. Creations are
// counted per user against the quota window.
func (s *TaskService) CreateTask(ctx context.Context, actor model.Actor, data model.CreateTaskData) (*model.Task, error) {
	if !permissions.CanCreate(actor) {
		return nil, apperrors.ErrCreateDenied
	}

	title := strings.TrimSpace(data.Title)
	if title == "" {
		return nil, apperrors.ErrTitleRequired
	}

	if err := s.acquireQuota(ctx, actor); err != nil {
		return nil, err
	}

	record, err := s.repo.CreateTask(ctx, title, data.Description, actor)
	if err != nil {
		return nil, err
	}

	s.record(Activity{Action: constants.ActionCreate, Task: *record, Actor: actor})

	task := record.ToTask()
	return &task, nil
}

func (s *TaskService) acquireQuota(ctx context.Context, actor model.Actor) error {
	if s.quota == nil {
		return nil
	}

	if err := s.quota.Acquire(ctx, actor.ID); err != nil {
		if errors.Is(err, queue.ErrQuotaExceeded) {
			log.WithField("user_id", actor.ID).Info("task creation rate limited")
			return apperrors.ErrTooManyCreations
		}
		return err
	}

	return nil
}

// UpdateTask applies a partial update. Title and description edits follow
// permissions.CanEdit; a status change needs permissions.CanChangeStatus.
func (s *TaskService) UpdateTask(ctx context.Context, actor model.Actor, id string, data model.UpdateTaskData) (*model.Task, error) {
	if id == "" {
		return nil, apperrors.ErrTaskIDRequired
	}
	if data.Empty() {
		return nil, apperrors.New(apperrors.KindValidation, "nothing to update")
	}

	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	current := record.ToTask()

	if data.Title != nil || data.Description != nil {
		if !permissions.CanEdit(actor, current) {
			return nil, apperrors.ErrPermissionDenied
		}
		if data.Title != nil {
			title := strings.TrimSpace(*data.Title)
			if title == "" {
				return nil, apperrors.ErrTitleRequired
			}
			record.Title = title
		}
		if data.Description != nil {
			record.Description = data.Description
		}
	}

	var from *constants.TaskStatus
	if data.Status != nil {
		if !data.Status.Valid() {
			return nil, apperrors.ErrInvalidStatus
		}
		if *data.Status != record.Status {
			if !permissions.CanChangeStatus(actor) {
				return nil, apperrors.ErrStatusChangeDenied
			}
			prev := record.Status
			from = &prev
			record.Status = *data.Status
		}
	}

	now := time.Now().UTC()
	record.UpdatedByID = &actor.ID
	record.UpdatedByName = &actor.Name
	record.UpdatedAt = &now

	if err := s.repo.Update(ctx, record); err != nil {
		return nil, err
	}

	action := constants.ActionUpdate
	if from != nil {
		action = constants.ActionStatusChange
	}
	s.record(Activity{Action: action, Task: *record, Actor: actor, FromStatus: from, At: now})

	task := record.ToTask()
	return &task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, actor model.Actor, id string) error {
	if id == "" {
		return apperrors.ErrTaskIDRequired
	}

	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if !permissions.CanDelete(actor, record.ToTask()) {
		return apperrors.ErrPermissionDenied
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.record(Activity{Action: constants.ActionDelete, Task: *record, Actor: actor})
	return nil
}

func (s *TaskService) ListLogs(ctx context.Context, f repository.LogFilter) (model.LogsResponse, error) {
	logs, total, err := s.activity.ListLogs(ctx, f)
	if err != nil {
		return model.LogsResponse{}, err
	}
	if logs == nil {
		logs = []model.ActivityLog{}
	}
	return model.LogsResponse{Logs: logs, Pagination: model.NewPagination(total, f.Page, f.Limit)}, nil
}

func (s *TaskService) ListNotifications(ctx context.Context, actor model.Actor, page, limit int) (model.NotificationResponse, error) {
	items, total, err := s.activity.ListNotifications(ctx, actor.ID, page, limit)
	if err != nil {
		return model.NotificationResponse{}, err
	}
	if items == nil {
		items = []model.Notification{}
	}
	return model.NotificationResponse{Notifications: items, Pagination: model.NewPagination(total, page, limit)}, nil
}

func (s *TaskService) ClearNotifications(ctx context.Context, actor model.Actor) (int64, error) {
	return s.activity.ClearNotifications(ctx, actor.ID)
}

func (s *TaskService) record(a Activity) {
	if s.pool == nil {
		return
	}
	s.pool.Enqueue(a)
}
