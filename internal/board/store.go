package board

import (
	"context"
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"

	"task-tracker.com/task-tracker/internal/constants"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	model "task-tracker.com/task-tracker/pkg/models"
)

// Repository is the remote task collection the store reconciles against.
// *client.Client satisfies it.
type Repository interface {
	List(ctx context.Context, status *constants.TaskStatus) ([]model.Task, error)
	Create(ctx context.Context, data model.CreateTaskData) (*model.Task, error)
	Update(ctx context.Context, id string, data model.UpdateTaskData) (*model.Task, error)
	Delete(ctx context.Context, id string) (model.DeleteResult, error)
}

// Store owns the authoritative task collection and its column partition.
// Reads return copies. Repository calls run without holding the lock, so a
// new drag or refresh may start while an earlier mutation is in flight.
type Store struct {
	repo Repository

	mu      sync.Mutex
	tasks   []model.Task
	columns Columns
	filter  *constants.TaskStatus

	// issued is the sequence number of the most recently started fetch.
	// A fetch result is applied only if no newer fetch was started since.
	issued  uint64
	applied uint64
}

func NewStore(repo Repository) *Store {
	return &Store{repo: repo}
}

// SetTasks replaces the collection wholesale and re-partitions it.
func (s *Store) SetTasks(tasks []model.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setTasksLocked(tasks)
}

func (s *Store) setTasksLocked(tasks []model.Task) {
	s.tasks = cloneTasks(tasks)
	s.columns = Partition(s.tasks)
}

func (s *Store) Tasks() []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneTasks(s.tasks)
}

func (s *Store) Task(id string) (model.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tasks {
		if t.ID == id {
			return t.Clone(), true
		}
	}
	return model.Task{}, false
}

func (s *Store) Columns() Columns {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.columns.clone()
}

func (s *Store) Column(status constants.TaskStatus) Column {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Column{Status: status, Tasks: cloneTasks(s.columns.Get(status))}
}

// Filter returns the status filter of the most recently issued fetch.
func (s *Store) Filter() *constants.TaskStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyStatus(s.filter)
}

// Generation returns the sequence number of the data currently shown.
func (s *Store) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applied
}

// Reorder moves taskID within its column to index, clamped to the column
// bounds. It is local only. It returns false when the task is not in the
// named column.
func (s *Store) Reorder(taskID string, status constants.TaskStatus, index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	bucket := s.columns.bucket(status)
	if bucket == nil {
		return false
	}

	col := *bucket
	from := -1
	for i, t := range col {
		if t.ID == taskID {
			from = i
			break
		}
	}
	if from < 0 {
		return false
	}

	moved := col[from]
	rest := make([]model.Task, 0, len(col))
	rest = append(rest, col[:from]...)
	rest = append(rest, col[from+1:]...)

	index = max(0, min(index, len(rest)))

	out := make([]model.Task, 0, len(col))
	out = append(out, rest[:index]...)
	out = append(out, moved)
	out = append(out, rest[index:]...)
	*bucket = out

	log.WithFields(log.Fields{"task_id": taskID, "status": status, "from": from, "to": index}).Debug("board: reordered task")
	return true
}

// Refresh fetches the collection for filter and applies it unless a newer
// fetch has been issued in the meantime. A nil filter lists every status.
func (s *Store) Refresh(ctx context.Context, filter *constants.TaskStatus) error {
	seq, current := s.issue(filter, true)
	return s.fetch(ctx, seq, current)
}

// Invalidate refetches with the filter of the most recently issued fetch.
func (s *Store) Invalidate(ctx context.Context) error {
	seq, current := s.issue(nil, false)
	return s.fetch(ctx, seq, current)
}

// issue takes the next sequence number and reads the filter in the same
// critical section, so a concurrent Refresh cannot be undone by a stale
// filter.
func (s *Store) issue(filter *constants.TaskStatus, replace bool) (uint64, *constants.TaskStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if replace {
		s.filter = copyStatus(filter)
	}
	s.issued++
	return s.issued, copyStatus(s.filter)
}

func (s *Store) fetch(ctx context.Context, seq uint64, filter *constants.TaskStatus) error {
	tasks, err := s.repo.List(ctx, filter)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq < s.issued {
		log.WithFields(log.Fields{"seq": seq, "latest": s.issued}).Debug("board: discarding superseded fetch")
		return nil
	}
	if err != nil {
		return err
	}

	s.setTasksLocked(tasks)
	s.applied = seq
	return nil
}

// ChangeStatus asks the repository to move taskID to status. Local state is
// untouched until the repository confirms; a repository error is returned
// as is. On success the confirmed task is patched in and the collection is
// refetched.
func (s *Store) ChangeStatus(ctx context.Context, taskID string, status constants.TaskStatus) (*model.Task, error) {
	if taskID == "" {
		return nil, apperrors.ErrTaskIDRequired
	}
	if !status.Valid() {
		return nil, apperrors.ErrInvalidStatus
	}

	updated, err := s.repo.Update(ctx, taskID, model.UpdateTaskData{Status: &status})
	if err != nil {
		return nil, err
	}

	s.patch(updated)
	return updated, s.invalidateAfter(ctx, "status change")
}

func (s *Store) CreateTask(ctx context.Context, data model.CreateTaskData) (*model.Task, error) {
	created, err := s.repo.Create(ctx, data)
	if err != nil {
		return nil, err
	}
	return created, s.invalidateAfter(ctx, "create")
}

func (s *Store) UpdateTask(ctx context.Context, taskID string, data model.UpdateTaskData) (*model.Task, error) {
	updated, err := s.repo.Update(ctx, taskID, data)
	if err != nil {
		return nil, err
	}
	return updated, s.invalidateAfter(ctx, "update")
}

func (s *Store) DeleteTask(ctx context.Context, taskID string) (model.DeleteResult, error) {
	res, err := s.repo.Delete(ctx, taskID)
	if err != nil {
		return model.DeleteResult{}, err
	}
	return res, s.invalidateAfter(ctx, "delete")
}

// Apply executes a drag intent.
func (s *Store) Apply(ctx context.Context, intent Intent) error {
	switch intent.Kind {
	case IntentReorder:
		s.Reorder(intent.TaskID, intent.Status, intent.Index)
		return nil
	case IntentStatusChange:
		_, err := s.ChangeStatus(ctx, intent.TaskID, intent.Status)
		return err
	}
	return nil
}

// patch swaps in a confirmed task so the board reflects it before the
// refetch lands.
func (s *Store) patch(task *model.Task) {
	if task == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == task.ID {
			next := cloneTasks(s.tasks)
			next[i] = task.Clone()
			s.setTasksLocked(next)
			return
		}
	}
}

// invalidateAfter refetches after a confirmed mutation. A failed refetch is
// reported so the caller knows the board may be stale.
func (s *Store) invalidateAfter(ctx context.Context, op string) error {
	if err := s.Invalidate(ctx); err != nil {
		return fmt.Errorf("%s succeeded but refreshing the board failed: %w", op, err)
	}
	return nil
}

func copyStatus(s *constants.TaskStatus) *constants.TaskStatus {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}
