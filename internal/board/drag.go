package board

import (
	log "github.com/sirupsen/logrus"

	"task-tracker.com/task-tracker/internal/constants"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	"task-tracker.com/task-tracker/internal/permissions"
	model "task-tracker.com/task-tracker/pkg/models"
)

type DragState int

const (
	DragIdle DragState = iota
	DragDragging
)

func (s DragState) String() string {
	if s == DragDragging {
		return "dragging"
	}
	return "idle"
}

type Point struct {
	X, Y float64
}

// Rect is a bounding box with an inclusive top-left and exclusive
// bottom-right edge.
type Rect struct {
	Left, Top, Right, Bottom float64
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

// DragSession tracks a single drag gesture on the board. It is driven by the
// four pointer callbacks (Start, Over, Leave, Drop) plus End for gestures the
// platform cancels without a drop. A session is not safe for concurrent use;
// it belongs to the event loop that feeds it.
type DragSession struct {
	actor model.Actor

	state  DragState
	taskID string
	source constants.TaskStatus

	// hoverID is the task under the pointer, empty over blank column space.
	hoverID string
	// target is the column currently highlighted as a drop target.
	target constants.TaskStatus
}

func NewDragSession(actor model.Actor) *DragSession {
	return &DragSession{actor: actor}
}

func (d *DragSession) State() DragState {
	return d.state
}

func (d *DragSession) Active() bool {
	return d.state == DragDragging
}

func (d *DragSession) TaskID() string {
	return d.taskID
}

func (d *DragSession) SourceStatus() constants.TaskStatus {
	return d.source
}

func (d *DragSession) HoverTaskID() string {
	return d.hoverID
}

// DropTarget returns the highlighted column, if any.
func (d *DragSession) DropTarget() (constants.TaskStatus, bool) {
	return d.target, d.target != ""
}

// Start records the dragged task. Permission is not checked here because the
// destination column is unknown until the drop.
func (d *DragSession) Start(task model.Task) error {
	if task.ID == "" {
		return apperrors.ErrTaskIDRequired
	}
	if !task.Status.Valid() {
		return apperrors.ErrInvalidStatus
	}

	d.reset()
	d.state = DragDragging
	d.taskID = task.ID
	d.source = task.Status
	return nil
}

// Over updates the hover target as the pointer moves across a column.
// hoverTaskID is empty when the pointer is over blank column space.
func (d *DragSession) Over(column constants.TaskStatus, hoverTaskID string) {
	if !d.Active() {
		return
	}
	d.target = column
	d.hoverID = hoverTaskID
}

// Leave clears hover state when pointer has left bounds. Leave events also
// fire when the pointer moves onto a child element; those are ignored by
// testing the pointer against the column's bounding box. The gesture itself
// stays active so it can still land in another column.
func (d *DragSession) Leave(pointer Point, bounds Rect) bool {
	if !d.Active() || bounds.Contains(pointer) {
		return false
	}
	d.hoverID = ""
	d.target = ""
	return true
}

// Drop ends the gesture over target and returns the resulting intent. A
// cross-column drop by an actor without status permission returns
// ErrStatusChangeDenied and no intent. The session is idle afterwards in
// every case.
func (d *DragSession) Drop(target Column) (Intent, error) {
	if !d.Active() {
		return Intent{}, nil
	}
	defer d.reset()

	taskID, source, hover := d.taskID, d.source, d.hoverID

	if !target.Status.Valid() {
		return Intent{}, apperrors.ErrInvalidStatus
	}
	if hover == taskID {
		return Intent{}, nil
	}

	if source == target.Status {
		index := target.Len()
		if hover != "" {
			if i := target.IndexOf(hover); i >= 0 {
				index = i
			}
		}
		return Intent{Kind: IntentReorder, TaskID: taskID, Status: target.Status, Index: index}, nil
	}

	if !permissions.CanDropIntoColumn(d.actor, source, target.Status) {
		log.WithFields(log.Fields{
			"task_id": taskID,
			"actor":   d.actor.ID,
			"from":    source,
			"to":      target.Status,
		}).Info("board: rejected status change drop")
		return Intent{}, apperrors.ErrStatusChangeDenied
	}

	return Intent{Kind: IntentStatusChange, TaskID: taskID, Status: target.Status, Index: -1}, nil
}

// End abandons the gesture. It is safe to call after Drop.
func (d *DragSession) End() {
	d.reset()
}

func (d *DragSession) reset() {
	d.state = DragIdle
	d.taskID = ""
	d.source = ""
	d.hoverID = ""
	d.target = ""
}
