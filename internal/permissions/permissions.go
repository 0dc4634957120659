// Package permissions decides which board mutations an actor may perform.
// Every function is pure and is shared by the board core and the API.
package permissions

import (
	"task-tracker.com/task-tracker/internal/constants"
	model "task-tracker.com/task-tracker/pkg/models"
)

// CanEdit reports whether actor may change the title or description of task.
// Only the submitter who created the task may edit it, and only while pending.
func CanEdit(actor model.Actor, task model.Task) bool {
	return actor.Role == constants.RoleSubmitter &&
		task.CreatedBy.SameAs(actor.ID) &&
		task.Status == constants.StatusPending
}

// CanDelete currently follows the same rule as CanEdit.
func CanDelete(actor model.Actor, task model.Task) bool {
	return CanEdit(actor, task)
}

func CanChangeStatus(actor model.Actor) bool {
	return actor.Role == constants.RoleApprover
}

// CanDropIntoColumn allows same-column reorders for anyone and cross-column
// moves for approvers only.
func CanDropIntoColumn(actor model.Actor, source, target constants.TaskStatus) bool {
	if source == target {
		return true
	}
	return CanChangeStatus(actor)
}

func CanCreate(actor model.Actor) bool {
	return actor.Role == constants.RoleSubmitter
}
