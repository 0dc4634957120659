package permissions

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"task-tracker.com/task-tracker/internal/constants"
	model "task-tracker.com/task-tracker/pkg/models"
)

func submitter(id string) model.Actor {
	return model.Actor{ID: id, Name: "Sam", Role: constants.RoleSubmitter}
}

func approver(id string) model.Actor {
	return model.Actor{ID: id, Name: "Ava", Role: constants.RoleApprover}
}

func TestCanEdit(t *testing.T) {
	owned := model.Task{ID: "t1", Status: constants.StatusPending, CreatedBy: model.RefExpanded("u1", "Sam")}

	tests := []struct {
		name  string
		actor model.Actor
		task  model.Task
		want  bool
	}{
		{"owner pending", submitter("u1"), owned, true},
		{"other submitter", submitter("u2"), owned, false},
		{"approver never edits", approver("u1"), owned, false},
		{"bare id creator", submitter("u1"), model.Task{Status: constants.StatusPending, CreatedBy: model.RefID(" u1 ")}, true},
		{"missing creator", submitter("u1"), model.Task{Status: constants.StatusPending}, false},
		{"empty actor id", submitter(""), model.Task{Status: constants.StatusPending}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanEdit(tt.actor, tt.task))
			assert.Equal(t, tt.want, CanDelete(tt.actor, tt.task))
		})
	}
}

func TestCanEdit_RevokedAfterApproval(t *testing.T) {
	actor := submitter("u1")
	task := model.Task{ID: "t1", Status: constants.StatusPending, CreatedBy: model.RefID("u1")}
	assert.True(t, CanEdit(actor, task))

	task.Status = constants.StatusApproved
	assert.False(t, CanEdit(actor, task))
}

func TestCanChangeStatus(t *testing.T) {
	assert.False(t, CanChangeStatus(submitter("u1")))
	assert.True(t, CanChangeStatus(approver("u2")))
	assert.False(t, CanChangeStatus(model.Actor{ID: "x"}))
}

func TestCanDropIntoColumn(t *testing.T) {
	for _, source := range constants.Statuses {
		for _, target := range constants.Statuses {
			same := source == target
			assert.Equal(t, same, CanDropIntoColumn(submitter("u1"), source, target), "%s -> %s", source, target)
			assert.True(t, CanDropIntoColumn(approver("u2"), source, target))
		}
	}
}

func TestCanCreate(t *testing.T) {
	assert.True(t, CanCreate(submitter("u1")))
	assert.False(t, CanCreate(approver("u2")))
}
