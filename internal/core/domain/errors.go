package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates malformed caller input (identifier, date, case details).
	// It is rejected before any retrieval is attempted.
	ErrValidation = errors.New("validation failed")

	// ErrUnknownOperation indicates a task was submitted with an unsupported operation.
	ErrUnknownOperation = errors.New("unknown operation")

	// Live retrieval errors.
	// These never reach callers: the retrieval session recovers from them
	// by serving synthetic data.

	// ErrElementNotFound indicates no locator strategy matched a required page element.
	ErrElementNotFound = errors.New("element not found")

	// ErrTimeout indicates the portal did not render the expected element in time.
	ErrTimeout = errors.New("timed out waiting for portal")

	// ErrNoResults indicates the result page contained no parseable case fields.
	ErrNoResults = errors.New("no results on page")

	// ErrLiveDisabled indicates live retrieval is switched off or has no browser.
	ErrLiveDisabled = errors.New("live retrieval disabled")

	// ErrExport indicates a result could not be written to disk.
	ErrExport = errors.New("export failed")

	// ErrTaskFailed wraps any failure raised inside a background task.
	ErrTaskFailed = errors.New("task failed")
)
