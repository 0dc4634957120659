package model

import (
	"time"

	"task-tracker.com/task-tracker/internal/constants"
)

// TaskRecord is the persisted row behind a Task.
type TaskRecord struct {
	ID            string `gorm:"primaryKey;size:36"`
	Title         string `gorm:"not null"`
	Description   *string
	Status        constants.TaskStatus `gorm:"type:varchar(20);not null;index"`
	CreatedByID   string               `gorm:"size:64;not null;index"`
	CreatedByName string               `gorm:"not null"`
	UpdatedByID   *string              `gorm:"size:64"`
	UpdatedByName *string
	Version       uint       `gorm:"not null;default:1"`
	CreatedAt     time.Time  `gorm:"index"`
	UpdatedAt     *time.Time `gorm:"autoUpdateTime:false"`
}

func (TaskRecord) TableName() string {
	return "tasks"
}

func (r TaskRecord) ToTask() Task {
	t := Task{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		CreatedBy:   RefExpanded(r.CreatedByID, r.CreatedByName),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if r.UpdatedByID != nil {
		name := ""
		if r.UpdatedByName != nil {
			name = *r.UpdatedByName
		}
		ref := RefExpanded(*r.UpdatedByID, name)
		t.UpdatedBy = &ref
	}
	return t
}
