package model

import (
	"time"

	"task-tracker.com/task-tracker/internal/constants"
)

type ActivityLog struct {
	ID         string                   `gorm:"primaryKey;size:36" json:"_id"`
	TaskID     string                   `gorm:"size:36;index" json:"taskId"`
	TaskTitle  string                   `json:"taskTitle"`
	UserID     string                   `gorm:"size:64;index" json:"userId"`
	UserName   string                   `json:"userName"`
	FromStatus *constants.TaskStatus    `gorm:"type:varchar(20)" json:"fromStatus,omitempty"`
	ToStatus   constants.TaskStatus     `gorm:"type:varchar(20)" json:"toStatus"`
	Action     constants.ActivityAction `gorm:"type:varchar(20);index" json:"action"`
	Timestamp  time.Time                `gorm:"index" json:"timestamp"`
}

type Notification struct {
	ID         string                     `gorm:"primaryKey;size:36" json:"_id"`
	UserID     string                     `gorm:"size:64;index" json:"userId"`
	TaskID     string                     `gorm:"size:36" json:"taskId"`
	TaskTitle  string                     `json:"taskTitle"`
	Message    string                     `json:"message"`
	ActionType constants.NotificationType `gorm:"type:varchar(20)" json:"actionType"`
	ActorName  string                     `json:"actorName"`
	CreatedAt  time.Time                  `gorm:"index" json:"createdAt"`
}

type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}

type LogsResponse struct {
	Logs       []ActivityLog `json:"logs"`
	Pagination Pagination    `json:"pagination"`
}

type NotificationResponse struct {
	Notifications []Notification `json:"notifications"`
	Pagination    Pagination     `json:"pagination"`
}

// NewPagination computes page count for total rows at limit per page.
func NewPagination(total int64, page, limit int) Pagination {
	pages := 0
	if limit > 0 {
		pages = int((total + int64(limit) - 1) / int64(limit))
	}
	return Pagination{Total: total, Page: page, Limit: limit, Pages: pages}
}
