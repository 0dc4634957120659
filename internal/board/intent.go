package board

import (
	"fmt"

	"task-tracker.com/task-tracker/internal/constants"
)

type IntentKind int

const (
	IntentNone IntentKind = iota
	IntentReorder
	IntentStatusChange
)

func (k IntentKind) String() string {
	switch k {
	case IntentReorder:
		return "reorder"
	case IntentStatusChange:
		return "status_change"
	}
	return "none"
}

// Intent is the outcome of a completed drag gesture. Index is only
// meaningful for reorders.
type Intent struct {
	Kind   IntentKind
	TaskID string
	Status constants.TaskStatus
	Index  int
}

func (i Intent) String() string {
	switch i.Kind {
	case IntentReorder:
		return fmt.Sprintf("reorder(%s, %s, %d)", i.TaskID, i.Status, i.Index)
	case IntentStatusChange:
		return fmt.Sprintf("changeStatus(%s, %s)", i.TaskID, i.Status)
	}
	return "none"
}
