// Package domain defines the core business entities for ecourts.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - CaseIdentifier: A validated 16-character CNR
//   - CaseRecord / CaseResult: Case details and listings for one case
//   - SelectorKey: The state/district/complex address of a cause list
//   - CauseList: A daily docket with metadata and ordered entries
//   - Task: One asynchronous retrieval with observable lifecycle
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
