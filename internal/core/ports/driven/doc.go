// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - DatasetProvider: Deterministic synthetic records used whenever live
//     retrieval fails. Always available.
//   - Exporter: Writes results to JSON and CSV files.
//   - ConfigStore: Application configuration.
//
// # Optional Interfaces
//
// These can be nil - the application degrades to the synthetic dataset:
//
//   - BrowserFactory: Creates a browser session for live portal retrieval.
//   - CaptchaSolver: Answers challenge images. Without it, challenges are skipped.
//   - ConfigWatcher: Notifies on configuration changes.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
