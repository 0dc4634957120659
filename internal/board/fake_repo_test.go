package board

import (
	"context"
	"sync"

	"task-tracker.com/task-tracker/internal/constants"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	model "task-tracker.com/task-tracker/pkg/models"
)

// fakeRepo is an in-memory Repository. Tests can hold List calls open by
// pushing a gate channel onto listGates.
type fakeRepo struct {
	mu        sync.Mutex
	tasks     []model.Task
	listCalls int
	filters   []*constants.TaskStatus
	updates   int
	listErr   error
	updateErr error
	createErr error
	deleteErr error
	listGates []chan struct{}
}

func newFakeRepo(tasks ...model.Task) *fakeRepo {
	return &fakeRepo{tasks: tasks}
}

func (f *fakeRepo) List(ctx context.Context, status *constants.TaskStatus) ([]model.Task, error) {
	f.mu.Lock()
	f.listCalls++
	f.filters = append(f.filters, copyStatus(status))
	var gate chan struct{}
	if len(f.listGates) > 0 {
		gate = f.listGates[0]
		f.listGates = f.listGates[1:]
	}
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []model.Task
	for _, t := range f.tasks {
		if status == nil || t.Status == *status {
			out = append(out, t.Clone())
		}
	}
	return out, nil
}

func (f *fakeRepo) Create(ctx context.Context, data model.CreateTaskData) (*model.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	t := model.Task{ID: "new", Title: data.Title, Description: data.Description, Status: constants.StatusPending, CreatedBy: model.RefID("u1")}
	f.tasks = append(f.tasks, t)
	return &t, nil
}

func (f *fakeRepo) Update(ctx context.Context, id string, data model.UpdateTaskData) (*model.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates++
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	for i := range f.tasks {
		if f.tasks[i].ID != id {
			continue
		}
		if data.Title != nil {
			f.tasks[i].Title = *data.Title
		}
		if data.Description != nil {
			f.tasks[i].Description = data.Description
		}
		if data.Status != nil {
			f.tasks[i].Status = *data.Status
		}
		t := f.tasks[i].Clone()
		return &t, nil
	}
	return nil, apperrors.ErrTaskNotFound
}

func (f *fakeRepo) Delete(ctx context.Context, id string) (model.DeleteResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return model.DeleteResult{}, f.deleteErr
	}
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return model.DeleteResult{Message: "Task deleted successfully"}, nil
		}
	}
	return model.DeleteResult{}, apperrors.ErrTaskNotFound
}

func (f *fakeRepo) seenFilters() []*constants.TaskStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*constants.TaskStatus(nil), f.filters...)
}

func (f *fakeRepo) setTasks(tasks ...model.Task) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = tasks
}

func (f *fakeRepo) gate() chan struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	g := make(chan struct{})
	f.listGates = append(f.listGates, g)
	return g
}

func task(id string, status constants.TaskStatus) model.Task {
	return model.Task{ID: id, Title: "Task " + id, Status: status, CreatedBy: model.RefExpanded("u1", "Sam")}
}

func ids(tasks []model.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}
