package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"task-tracker.com/task-tracker/internal/constants"
	model "task-tracker.com/task-tracker/pkg/models"
)

// Activity describes one completed task mutation.
type Activity struct {
	Action     constants.ActivityAction
	Task       model.TaskRecord
	Actor      model.Actor
	FromStatus *constants.TaskStatus
	At         time.Time
}

type activityStore interface {
	CreateLog(ctx context.Context, entry *model.ActivityLog) error
	CreateNotification(ctx context.Context, n *model.Notification) error
}

// PoolService records activity logs and creator notifications off the
// request path with a fixed set of workers.
type PoolService struct {
	queue chan Activity
	wg    sync.WaitGroup
	repo  activityStore

	mu     sync.RWMutex
	closed bool
}

func NewPoolService(repo activityStore, workers int, queueSize int) *PoolService {
	p := &PoolService{
		queue: make(chan Activity, queueSize),
		repo:  repo,
	}

	for i := 1; i <= workers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}

	return p
}

// Enqueue hands a to the workers without blocking. It returns false when the
// queue is full or the pool is shutting down.
func (p *PoolService) Enqueue(a Activity) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return false
	}

	if a.At.IsZero() {
		a.At = time.Now().UTC()
	}

	select {
	case p.queue <- a:
		return true
	default:
		log.WithFields(log.Fields{"task_id": a.Task.ID, "action": a.Action}).Warn("activity queue full, dropping entry")
		return false
	}
}

func (p *PoolService) worker(workerID int) {
	defer p.wg.Done()

	log.Debugf("activity worker %d started", workerID)

	for a := range p.queue {
		p.handleActivity(workerID, a)
	}

	log.Debugf("activity worker %d stopped", workerID)
}

func (p *PoolService) handleActivity(workerID int, a Activity) {
	ctx := context.Background()

	if err := p.repo.CreateLog(ctx, activityLog(a)); err != nil {
		log.Printf("worker %d: failed to record %s for task %s: %v", workerID, a.Action, a.Task.ID, err)
	}

	n, ok := notification(a)
	if !ok {
		return
	}
	if err := p.repo.CreateNotification(ctx, n); err != nil {
		log.Printf("worker %d: failed to notify %s about task %s: %v", workerID, n.UserID, a.Task.ID, err)
	}
}

func activityLog(a Activity) *model.ActivityLog {
	return &model.ActivityLog{
		ID:         uuid.NewString(),
		TaskID:     a.Task.ID,
		TaskTitle:  a.Task.Title,
		UserID:     a.Actor.ID,
		UserName:   a.Actor.Name,
		FromStatus: a.FromStatus,
		ToStatus:   a.Task.Status,
		Action:     a.Action,
		Timestamp:  a.At,
	}
}

// notification builds the message sent to a task's creator when an approver
// moves it to approved, rejected or done.
func notification(a Activity) (*model.Notification, bool) {
	if a.Action != constants.ActionStatusChange {
		return nil, false
	}
	kind, ok := constants.NotificationFor(a.Task.Status)
	if !ok || a.Task.CreatedByID == "" || a.Task.CreatedByID == a.Actor.ID {
		return nil, false
	}

	return &model.Notification{
		ID:         uuid.NewString(),
		UserID:     a.Task.CreatedByID,
		TaskID:     a.Task.ID,
		TaskTitle:  a.Task.Title,
		Message:    fmt.Sprintf("Your task %q was marked %s by %s", a.Task.Title, a.Task.Status, a.Actor.Name),
		ActionType: kind,
		ActorName:  a.Actor.Name,
		CreatedAt:  a.At,
	}, true
}

// Shutdown stops accepting work and waits for queued entries to drain.
func (p *PoolService) Shutdown(ctx context.Context) {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.queue)
	}
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Println("activity pool shut down cleanly")
	case <-ctx.Done():
		log.Println("activity pool shutdown timed out")
	}
}
