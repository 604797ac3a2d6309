package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/ecourts-cli/internal/core/domain"
	"github.com/custodia-labs/ecourts-cli/internal/core/ports/driving"
	"github.com/custodia-labs/ecourts-cli/internal/logger"
)

// Ensure TaskExecutor implements the interface.
var _ driving.TaskExecutor = (*TaskExecutor)(nil)

// Progress milestones reported while a task runs.
const (
	progressStarted    = 20
	progressDispatched = 60
	progressDone       = 100
)

type taskEntry struct {
	task domain.Task
	// done is closed once task reaches a terminal status.
	done chan struct{}
}

// TaskExecutor runs each submitted operation on its own goroutine and keeps
// a registry of task state. Only the executor mutates tasks; readers get
// copies.
type TaskExecutor struct {
	cases      driving.CaseService
	causeLists driving.CauseListService
	now        func() time.Time

	mu    sync.RWMutex
	tasks map[string]*taskEntry
	order []string
	wg    sync.WaitGroup
}

// NewTaskExecutor creates an executor dispatching to the given services.
func NewTaskExecutor(cases driving.CaseService, causeLists driving.CauseListService) *TaskExecutor {
	return &TaskExecutor{
		cases:      cases,
		causeLists: causeLists,
		now:        time.Now,
		tasks:      make(map[string]*taskEntry),
	}
}

// Submit registers a pending task and starts it on its own goroutine.
func (e *TaskExecutor) Submit(op domain.OperationKind, params domain.TaskParams) (domain.TaskHandle, error) {
	if !op.IsValid() {
		return domain.TaskHandle{}, fmt.Errorf("%w: %q", domain.ErrUnknownOperation, op)
	}

	entry := &taskEntry{
		task: domain.Task{
			ID:        uuid.NewString(),
			Operation: op,
			Params:    params,
			Status:    domain.TaskPending,
			CreatedAt: e.now(),
		},
		done: make(chan struct{}),
	}

	e.mu.Lock()
	e.tasks[entry.task.ID] = entry
	e.order = append(e.order, entry.task.ID)
	e.wg.Add(1)
	e.mu.Unlock()

	logger.Debug("task %s submitted: %s", entry.task.ID, op)

	// Tasks have no cancellation; callers only stop waiting.
	go e.run(context.Background(), entry)

	return domain.TaskHandle{ID: entry.task.ID}, nil
}

func (e *TaskExecutor) run(ctx context.Context, entry *taskEntry) {
	defer e.wg.Done()

	e.mu.Lock()
	entry.task.Status = domain.TaskRunning
	entry.task.Progress = progressStarted
	entry.task.StartedAt = e.now()
	op, params := entry.task.Operation, entry.task.Params
	e.mu.Unlock()

	result, err := e.execute(ctx, entry, op, params)

	e.mu.Lock()
	entry.task.FinishedAt = e.now()
	if err != nil {
		entry.task.Status = domain.TaskFailed
		entry.task.Error = err.Error()
	} else {
		entry.task.Status = domain.TaskCompleted
		entry.task.Progress = progressDone
		entry.task.Result = result
	}
	status := entry.task.Status
	e.mu.Unlock()

	close(entry.done)

	if err != nil {
		logger.Warn("task %s failed: %v", entry.task.ID, err)
	} else {
		logger.Debug("task %s %s", entry.task.ID, status)
	}
}

// execute dispatches op. Panics are recovered into an error.
func (e *TaskExecutor) execute(
	ctx context.Context,
	entry *taskEntry,
	op domain.OperationKind,
	params domain.TaskParams,
) (result *domain.TaskResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("%w: panic in %s: %v", domain.ErrTaskFailed, op, r)
		}
	}()

	e.mu.Lock()
	entry.task.Progress = progressDispatched
	e.mu.Unlock()

	switch op {
	case domain.OpSearchCNR:
		res, err := e.cases.SearchByIdentifier(ctx, domain.CaseIdentifier(params.CNR), params.CheckToday, params.CheckTomorrow)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrTaskFailed, err)
		}
		return &domain.TaskResult{Case: res}, nil
	case domain.OpSearchCase:
		res, err := e.cases.SearchByDetails(ctx, params.Details)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrTaskFailed, err)
		}
		return &domain.TaskResult{Case: res}, nil
	case domain.OpFetchCauseList:
		res, err := e.causeLists.CauseList(ctx, params.Selector, params.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrTaskFailed, err)
		}
		return &domain.TaskResult{CauseList: res}, nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownOperation, op)
	}
}

// Await blocks until the task finishes, timeout elapses or ctx ends.
// timeout <= 0 waits without bound.
func (e *TaskExecutor) Await(ctx context.Context, h domain.TaskHandle, timeout time.Duration) (domain.Task, error) {
	e.mu.RLock()
	entry, ok := e.tasks[h.ID]
	e.mu.RUnlock()
	if !ok {
		return domain.Task{}, fmt.Errorf("task %s: %w", h.ID, domain.ErrNotFound)
	}

	var expired <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		expired = timer.C
	}

	select {
	case <-entry.done:
	case <-expired:
		logger.Debug("task %s still %s after %s", h.ID, e.snapshot(entry).Status, timeout)
	case <-ctx.Done():
	}
	return e.snapshot(entry), nil
}

func (e *TaskExecutor) snapshot(entry *taskEntry) domain.Task {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return entry.task
}

// Get returns a snapshot of the task with id.
func (e *TaskExecutor) Get(id string) (domain.Task, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	entry, ok := e.tasks[id]
	if !ok {
		return domain.Task{}, fmt.Errorf("task %s: %w", id, domain.ErrNotFound)
	}
	return entry.task, nil
}

// List returns snapshots of all tasks ordered by creation time.
func (e *TaskExecutor) List() []domain.Task {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]domain.Task, 0, len(e.order))
	for _, id := range e.order {
		out = append(out, e.tasks[id].task)
	}
	return out
}

// Counts returns the number of tasks per status.
func (e *TaskExecutor) Counts() map[domain.TaskStatus]int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	counts := map[domain.TaskStatus]int{
		domain.TaskPending:   0,
		domain.TaskRunning:   0,
		domain.TaskCompleted: 0,
		domain.TaskFailed:    0,
	}
	for _, entry := range e.tasks {
		counts[entry.task.Status]++
	}
	return counts
}

// Prune removes the oldest finished tasks so that at most keep remain.
// Pending and running tasks are never removed. It returns the number removed.
func (e *TaskExecutor) Prune(keep int) int {
	if keep < 0 {
		keep = 0
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	finished := 0
	for _, id := range e.order {
		if e.tasks[id].task.Status.IsTerminal() {
			finished++
		}
	}
	excess := finished - keep
	if excess <= 0 {
		return 0
	}

	kept := e.order[:0]
	removed := 0
	for _, id := range e.order {
		if removed < excess && e.tasks[id].task.Status.IsTerminal() {
			delete(e.tasks, id)
			removed++
			continue
		}
		kept = append(kept, id)
	}
	e.order = kept
	return removed
}

// Shutdown waits for running tasks to finish or ctx to end.
func (e *TaskExecutor) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		e.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
