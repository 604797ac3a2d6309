package domain

import "time"

// OperationKind selects the retrieval a task performs.
type OperationKind string

// Supported operations.
const (
	// OpSearchCNR searches a case by its CNR.
	OpSearchCNR OperationKind = "search_cnr"

	// OpSearchCase searches a case by type, number and year.
	OpSearchCase OperationKind = "search_case"

	// OpFetchCauseList fetches the cause list of a court complex.
	OpFetchCauseList OperationKind = "fetch_cause_list"
)

// IsValid returns true if the operation is recognised.
func (o OperationKind) IsValid() bool {
	switch o {
	case OpSearchCNR, OpSearchCase, OpFetchCauseList:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (o OperationKind) String() string {
	return string(o)
}

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

// Task lifecycle states.
// A task moves pending -> running -> completed|failed and never leaves a terminal state.
const (
	TaskPending   TaskStatus = "pending"
	TaskRunning   TaskStatus = "running"
	TaskCompleted TaskStatus = "completed"
	TaskFailed    TaskStatus = "failed"
)

// IsTerminal returns true for completed and failed.
func (s TaskStatus) IsTerminal() bool {
	return s == TaskCompleted || s == TaskFailed
}

// TaskParams carries the request parameters of a task.
// Only the fields relevant to the task's operation are read.
type TaskParams struct {
	// CNR and listing flags for OpSearchCNR.
	CNR           string `json:"cnr,omitempty"`
	CheckToday    bool   `json:"check_today,omitempty"`
	CheckTomorrow bool   `json:"check_tomorrow,omitempty"`

	// Details for OpSearchCase.
	Details DetailsQuery `json:"details,omitzero"`

	// Selector and Date for OpFetchCauseList.
	Selector SelectorKey `json:"selector,omitzero"`
	Date     string      `json:"date,omitempty"`
}

// TaskResult holds the output of a completed task.
// Exactly one field is set, matching the task's operation.
type TaskResult struct {
	Case      *CaseResult `json:"case,omitempty"`
	CauseList *CauseList  `json:"cause_list,omitempty"`
}

// Task is one asynchronous retrieval with observable lifecycle.
// Values handed out by the executor are snapshots; mutating them has no effect.
type Task struct {
	// ID is the unique identifier for the task.
	ID string `json:"id"`

	// Operation is the retrieval the task performs.
	Operation OperationKind `json:"operation"`

	// Params are the request parameters.
	Params TaskParams `json:"params"`

	// Status is the current lifecycle state.
	Status TaskStatus `json:"status"`

	// Progress is an advisory percentage (0-100).
	Progress int `json:"progress"`

	// Result is set once the task has completed.
	Result *TaskResult `json:"result,omitempty"`

	// Error describes the failure once the task has failed.
	Error string `json:"error,omitempty"`

	// CreatedAt is when the task was submitted.
	CreatedAt time.Time `json:"created_at"`

	// StartedAt is when execution began.
	StartedAt time.Time `json:"started_at,omitzero"`

	// FinishedAt is when the task reached a terminal state.
	FinishedAt time.Time `json:"finished_at,omitzero"`
}

// TaskHandle identifies a submitted task.
type TaskHandle struct {
	ID string `json:"id"`
}
