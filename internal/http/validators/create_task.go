package validators

import (
	"strings"

	apperrors "task-tracker.com/task-tracker/internal/errors"
	model "task-tracker.com/task-tracker/pkg/models"
)

const maxTitleLength = 200

func ValidateCreateTaskRequest(r *model.CreateTaskData) error {
	if strings.TrimSpace(r.Title) == "" {
		return apperrors.ErrTitleRequired
	}
	if len(r.Title) > maxTitleLength {
		return apperrors.New(apperrors.KindValidation, "title cannot exceed 200 characters")
	}
	return nil
}
