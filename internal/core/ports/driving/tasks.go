package driving

import (
	"context"
	"time"

	"github.com/custodia-labs/ecourts-cli/internal/core/domain"
)

// TaskExecutor runs retrieval operations as background tasks.
// All returned tasks are snapshots; mutating them has no effect.
type TaskExecutor interface {
	// Submit registers a pending task and starts it. It returns immediately.
	Submit(op domain.OperationKind, params domain.TaskParams) (domain.TaskHandle, error)

	// Await blocks until the task finishes, timeout elapses or ctx ends, then
	// returns its current snapshot. timeout <= 0 waits without bound.
	// The task keeps running after Await returns.
	Await(ctx context.Context, h domain.TaskHandle, timeout time.Duration) (domain.Task, error)

	// Get returns a snapshot of the task with id.
	Get(id string) (domain.Task, error)

	// List returns snapshots of all tasks ordered by creation time.
	List() []domain.Task

	// Counts returns the number of tasks per status.
	Counts() map[domain.TaskStatus]int

	// Prune drops the oldest finished tasks, keeping at most keep of them.
	Prune(keep int) int

	// Shutdown waits for running tasks or until ctx ends.
	Shutdown(ctx context.Context) error
}
