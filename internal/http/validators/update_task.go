package validators

import (
	"strings"

	apperrors "task-tracker.com/task-tracker/internal/errors"
	model "task-tracker.com/task-tracker/pkg/models"
)

func ValidateUpdateTaskRequest(r *model.UpdateTaskData) error {
	if r.Empty() {
		return apperrors.New(apperrors.KindValidation, "nothing to update")
	}
	if r.Title != nil {
		if strings.TrimSpace(*r.Title) == "" {
			return apperrors.ErrTitleRequired
		}
		if len(*r.Title) > maxTitleLength {
			return apperrors.New(apperrors.KindValidation, "title cannot exceed 200 characters")
		}
	}
	if r.Status != nil && !r.Status.Valid() {
		return apperrors.ErrInvalidStatus
	}
	return nil
}
