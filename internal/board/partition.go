package board

import (
	log "github.com/sirupsen/logrus"

	"task-tracker.com/task-tracker/internal/constants"
	model "task-tracker.com/task-tracker/pkg/models"
)

// Column is one status lane of the board in display order.
type Column struct {
	Status constants.TaskStatus
	Tasks  []model.Task
}

func (c Column) IndexOf(taskID string) int {
	for i, t := range c.Tasks {
		if t.ID == taskID {
			return i
		}
	}
	return -1
}

func (c Column) Len() int {
	return len(c.Tasks)
}

// Columns holds the four lanes of the board.
type Columns struct {
	Pending  []model.Task
	Approved []model.Task
	Done     []model.Task
	Rejected []model.Task
}

// Partition buckets tasks by status in a single stable pass. Tasks carrying
// an unknown status are skipped.
func Partition(tasks []model.Task) Columns {
	var cols Columns
	for _, t := range tasks {
		bucket := cols.bucket(t.Status)
		if bucket == nil {
			log.WithField("task_id", t.ID).Warnf("board: skipping task with unknown status %q", t.Status)
			continue
		}
		*bucket = append(*bucket, t)
	}
	return cols
}

func (c *Columns) bucket(status constants.TaskStatus) *[]model.Task {
	switch status {
	case constants.StatusPending:
		return &c.Pending
	case constants.StatusApproved:
		return &c.Approved
	case constants.StatusDone:
		return &c.Done
	case constants.StatusRejected:
		return &c.Rejected
	}
	return nil
}

// Get returns the lane for status, or nil for an unknown status.
func (c Columns) Get(status constants.TaskStatus) []model.Task {
	if b := c.bucket(status); b != nil {
		return *b
	}
	return nil
}

func (c Columns) Column(status constants.TaskStatus) Column {
	return Column{Status: status, Tasks: c.Get(status)}
}

// All returns the lanes in board order.
func (c Columns) All() []Column {
	out := make([]Column, 0, len(constants.Statuses))
	for _, s := range constants.Statuses {
		out = append(out, c.Column(s))
	}
	return out
}

func (c Columns) Len() int {
	return len(c.Pending) + len(c.Approved) + len(c.Done) + len(c.Rejected)
}

func (c Columns) clone() Columns {
	return Columns{
		Pending:  cloneTasks(c.Pending),
		Approved: cloneTasks(c.Approved),
		Done:     cloneTasks(c.Done),
		Rejected: cloneTasks(c.Rejected),
	}
}

func cloneTasks(tasks []model.Task) []model.Task {
	if tasks == nil {
		return nil
	}
	out := make([]model.Task, len(tasks))
	for i, t := range tasks {
		out[i] = t.Clone()
	}
	return out
}
