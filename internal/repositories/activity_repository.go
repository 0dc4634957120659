package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"task-tracker.com/task-tracker/internal/constants"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	model "task-tracker.com/task-tracker/pkg/models"
)

type LogFilter struct {
	TaskID     string
	UserID     string
	Action     constants.ActivityAction
	FromStatus constants.TaskStatus
	ToStatus   constants.TaskStatus
	StartDate  *time.Time
	EndDate    *time.Time
	Page       int
	Limit      int
}

type ActivityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) CreateLog(ctx context.Context, entry *model.ActivityLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// ListLogs returns one page of logs, newest first, and the total match count.
func (r *ActivityRepository) ListLogs(ctx context.Context, f LogFilter) ([]model.ActivityLog, int64, error) {
	if f.Page <= 0 || f.Limit <= 0 {
		return nil, 0, apperrors.ErrInvalidLimit
	}

	query := r.db.WithContext(ctx).Model(&model.ActivityLog{})
	if f.TaskID != "" {
		query = query.Where("task_id = ?", f.TaskID)
	}
	if f.UserID != "" {
		query = query.Where("user_id = ?", f.UserID)
	}
	if f.Action != "" {
		query = query.Where("action = ?", f.Action)
	}
	if f.FromStatus != "" {
		query = query.Where("from_status = ?", f.FromStatus)
	}
	if f.ToStatus != "" {
		query = query.Where("to_status = ?", f.ToStatus)
	}
	if f.StartDate != nil {
		query = query.Where("timestamp >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		query = query.Where("timestamp <= ?", *f.EndDate)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []model.ActivityLog
	err := query.Order("timestamp desc").
		Offset((f.Page - 1) * f.Limit).
		Limit(f.Limit).
		Find(&logs).Error
	if err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}

func (r *ActivityRepository) CreateNotification(ctx context.Context, n *model.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *ActivityRepository) ListNotifications(ctx context.Context, userID string, page, limit int) ([]model.Notification, int64, error) {
	if page <= 0 || limit <= 0 {
		return nil, 0, apperrors.ErrInvalidLimit
	}

	query := r.db.WithContext(ctx).Model(&model.Notification{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []model.Notification
	err := query.Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, 0, err
	}

	return out, total, nil
}

func (r *ActivityRepository) ClearNotifications(ctx context.Context, userID string) (int64, error) {
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.Notification{})
	return res.RowsAffected, res.Error
}
