package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"task-tracker.com/task-tracker/internal/constants"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	model "task-tracker.com/task-tracker/pkg/models"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) CreateTask(ctx context.Context, title string, description *string, creator model.Actor) (*model.TaskRecord, error) {
	task := &model.TaskRecord{
		ID:            uuid.NewString(),
		Title:         title,
		Description:   description,
		Status:        constants.StatusPending,
		CreatedByID:   creator.ID,
		CreatedByName: creator.Name,
		Version:       1,
		CreatedAt:     time.Now().UTC(),
	}

	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return nil, err
	}

	return task, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*model.TaskRecord, error) {
	var task model.TaskRecord
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

// List returns tasks newest first, optionally restricted to one status.
func (r *TaskRepository) List(ctx context.Context, status *constants.TaskStatus) ([]model.TaskRecord, error) {
	var tasks []model.TaskRecord
	query := r.db.WithContext(ctx).Order("created_at desc")
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	err := query.Find(&tasks).Error
	return tasks, err
}

// Update writes task if nobody else changed it since it was read.
func (r *TaskRepository) Update(ctx context.Context, task *model.TaskRecord) error {
	res := r.db.WithContext(ctx).Model(&model.TaskRecord{}).
		Where("id = ? AND version = ?", task.ID, task.Version).
		Updates(map[string]interface{}{
			"title":           task.Title,
			"description":     task.Description,
			"status":          task.Status,
			"updated_by_id":   task.UpdatedByID,
			"updated_by_name": task.UpdatedByName,
			"updated_at":      task.UpdatedAt,
			"version":         gorm.Expr("version + 1"),
		})

	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return apperrors.ErrOptimisticLock
	}

	task.Version++
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&model.TaskRecord{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrTaskNotFound
	}
	return nil
}
