package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ecourts-cli/internal/adapters/driving/tui/progress"
	"github.com/custodia-labs/ecourts-cli/internal/core/domain"
)

// runTask submits op, shows progress until it finishes and returns the
// completed task. There is no timeout.
func runTask(cmd *cobra.Command, op domain.OperationKind, params domain.TaskParams, label string) (domain.Task, error) {
	if taskExecutor == nil {
		return domain.Task{}, fmt.Errorf("task executor: %w", ErrNotConfigured)
	}
	ctx := commandContext(cmd)

	h, err := taskExecutor.Submit(op, params)
	if err != nil {
		return domain.Task{}, err
	}

	if isTerminal(cmd.OutOrStdout()) {
		_, err = progress.Run(ctx, taskExecutor, h.ID, label, cmd.OutOrStdout())
	} else {
		_, err = progress.Plain(ctx, taskExecutor, h.ID, label, cmd.ErrOrStderr(), progress.DefaultInterval)
	}
	if errors.Is(err, progress.ErrInterrupted) {
		return domain.Task{}, fmt.Errorf("stopped waiting for task %s", h.ID)
	}
	if err != nil {
		return domain.Task{}, err
	}

	task, err := taskExecutor.Await(ctx, h, 0)
	if err != nil {
		return domain.Task{}, err
	}
	if task.Status == domain.TaskFailed {
		return task, errors.New(task.Error)
	}
	if task.Status != domain.TaskCompleted || task.Result == nil {
		return task, fmt.Errorf("task %s ended %s without a result", task.ID, task.Status)
	}
	return task, nil
}
