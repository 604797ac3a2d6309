// Package mcp exposes the retrieval operations as Model Context Protocol
// tools so AI assistants can look up cases and cause lists.
package mcp

import "errors"

// ErrMissingTaskExecutor is returned when the task executor is not provided.
var ErrMissingTaskExecutor = errors.New("mcp: task executor is required")

// ErrMissingCauseListService is returned when the cause list service is not provided.
var ErrMissingCauseListService = errors.New("mcp: cause list service is required")

// ErrTaskPending is returned when a task outlives the tool's wait. The task
// keeps running and can be read as a resource.
var ErrTaskPending = errors.New("mcp: task still running")
