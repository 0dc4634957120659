package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-tracker.com/task-tracker/internal/constants"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	model "task-tracker.com/task-tracker/pkg/models"
)

var (
	approverActor  = model.Actor{ID: "a1", Name: "Ava", Role: constants.RoleApprover}
	submitterActor = model.Actor{ID: "u1", Name: "Sam", Role: constants.RoleSubmitter}
)

func pendingColumn() Column {
	return Column{Status: constants.StatusPending, Tasks: []model.Task{
		task("a", constants.StatusPending),
		task("b", constants.StatusPending),
		task("c", constants.StatusPending),
	}}
}

func TestDragSession_Lifecycle(t *testing.T) {
	d := NewDragSession(approverActor)
	assert.Equal(t, DragIdle, d.State())

	require.NoError(t, d.Start(task("a", constants.StatusPending)))
	assert.True(t, d.Active())
	assert.Equal(t, "a", d.TaskID())
	assert.Equal(t, constants.StatusPending, d.SourceStatus())

	d.Over(constants.StatusApproved, "x")
	assert.Equal(t, "x", d.HoverTaskID())
	target, ok := d.DropTarget()
	assert.True(t, ok)
	assert.Equal(t, constants.StatusApproved, target)

	d.Over(constants.StatusApproved, "")
	assert.Empty(t, d.HoverTaskID())

	d.End()
	assert.Equal(t, DragIdle, d.State())
	assert.Empty(t, d.TaskID())
}

func TestDragSession_StartRejectsInvalidTask(t *testing.T) {
	d := NewDragSession(approverActor)

	assert.ErrorIs(t, d.Start(model.Task{Status: constants.StatusPending}), apperrors.ErrTaskIDRequired)
	assert.ErrorIs(t, d.Start(model.Task{ID: "a", Status: "archived"}), apperrors.ErrInvalidStatus)
	assert.False(t, d.Active())
}

func TestDragSession_ReorderOntoTask(t *testing.T) {
	d := NewDragSession(approverActor)
	require.NoError(t, d.Start(task("a", constants.StatusPending)))
	d.Over(constants.StatusPending, "c")

	intent, err := d.Drop(pendingColumn())

	require.NoError(t, err)
	assert.Equal(t, Intent{Kind: IntentReorder, TaskID: "a", Status: constants.StatusPending, Index: 2}, intent)
	assert.False(t, d.Active())
}

func TestDragSession_ReorderOntoEmptySpaceAppends(t *testing.T) {
	d := NewDragSession(submitterActor)
	require.NoError(t, d.Start(task("a", constants.StatusPending)))
	d.Over(constants.StatusPending, "")

	intent, err := d.Drop(pendingColumn())

	require.NoError(t, err)
	assert.Equal(t, IntentReorder, intent.Kind)
	assert.Equal(t, 3, intent.Index)
}

func TestDragSession_ReorderHoverNotInColumnAppends(t *testing.T) {
	d := NewDragSession(submitterActor)
	require.NoError(t, d.Start(task("a", constants.StatusPending)))
	d.Over(constants.StatusPending, "ghost")

	intent, err := d.Drop(pendingColumn())

	require.NoError(t, err)
	assert.Equal(t, 3, intent.Index)
}

func TestDragSession_SelfDropIsNoop(t *testing.T) {
	for _, actor := range []model.Actor{approverActor, submitterActor} {
		d := NewDragSession(actor)
		require.NoError(t, d.Start(task("a", constants.StatusPending)))
		d.Over(constants.StatusPending, "a")

		intent, err := d.Drop(pendingColumn())

		require.NoError(t, err)
		assert.Equal(t, IntentNone, intent.Kind)
		assert.False(t, d.Active())
	}
}

func TestDragSession_ApproverCrossColumnDrop(t *testing.T) {
	d := NewDragSession(approverActor)
	require.NoError(t, d.Start(task("a", constants.StatusPending)))
	d.Over(constants.StatusApproved, "")

	intent, err := d.Drop(Column{Status: constants.StatusApproved})

	require.NoError(t, err)
	assert.Equal(t, IntentStatusChange, intent.Kind)
	assert.Equal(t, "a", intent.TaskID)
	assert.Equal(t, constants.StatusApproved, intent.Status)
}

func TestDragSession_SubmitterCrossColumnDropDenied(t *testing.T) {
	d := NewDragSession(submitterActor)
	require.NoError(t, d.Start(task("a", constants.StatusPending)))
	d.Over(constants.StatusDone, "")

	intent, err := d.Drop(Column{Status: constants.StatusDone})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	assert.Equal(t, apperrors.KindPermissionDenied, apperrors.KindOf(err))
	assert.Equal(t, IntentNone, intent.Kind)
	assert.False(t, d.Active())
}

func TestDragSession_DropInvalidTarget(t *testing.T) {
	d := NewDragSession(approverActor)
	require.NoError(t, d.Start(task("a", constants.StatusPending)))

	_, err := d.Drop(Column{Status: "archived"})

	assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)
	assert.False(t, d.Active())
}

func TestDragSession_LeaveBoundary(t *testing.T) {
	bounds := Rect{Left: 0, Top: 0, Right: 100, Bottom: 400}
	d := NewDragSession(approverActor)
	require.NoError(t, d.Start(task("a", constants.StatusPending)))
	d.Over(constants.StatusPending, "b")

	// Moving onto a child card still lies inside the column.
	assert.False(t, d.Leave(Point{X: 50, Y: 200}, bounds))
	assert.Equal(t, "b", d.HoverTaskID())

	assert.True(t, d.Leave(Point{X: 100, Y: 200}, bounds))
	assert.Empty(t, d.HoverTaskID())
	_, ok := d.DropTarget()
	assert.False(t, ok)
	assert.True(t, d.Active())

	intent, err := d.Drop(Column{Status: constants.StatusApproved})
	require.NoError(t, err)
	assert.Equal(t, IntentStatusChange, intent.Kind)
}

func TestDragSession_IdleCallbacksAreIgnored(t *testing.T) {
	d := NewDragSession(approverActor)

	d.Over(constants.StatusPending, "a")
	assert.Empty(t, d.HoverTaskID())
	assert.False(t, d.Leave(Point{X: -1, Y: -1}, Rect{Right: 1, Bottom: 1}))

	intent, err := d.Drop(pendingColumn())
	require.NoError(t, err)
	assert.Equal(t, IntentNone, intent.Kind)
}

func TestDragSession_CancelledGestureReturnsToIdle(t *testing.T) {
	d := NewDragSession(approverActor)
	require.NoError(t, d.Start(task("a", constants.StatusPending)))
	d.Over(constants.StatusDone, "z")

	d.End()

	assert.Equal(t, DragIdle, d.State())
	assert.Empty(t, d.HoverTaskID())
	intent, err := d.Drop(Column{Status: constants.StatusDone})
	require.NoError(t, err)
	assert.Equal(t, IntentNone, intent.Kind)
}

func TestRect_Contains(t *testing.T) {
	r := Rect{Left: 10, Top: 10, Right: 20, Bottom: 20}

	assert.True(t, r.Contains(Point{X: 10, Y: 10}))
	assert.False(t, r.Contains(Point{X: 20, Y: 15}))
	assert.False(t, r.Contains(Point{X: 15, Y: 20}))
	assert.False(t, r.Contains(Point{X: 9.9, Y: 15}))
}
