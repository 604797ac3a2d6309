// Package services implements the driving ports.
//
// Portal owns the live path: browser sessions, the navigation throttle and
// the observer hook. CaseService and CauseListService run the multi-step
// portal protocols on top of it and fall back to the synthetic dataset on
// any step failure. TaskExecutor runs those retrievals in the background for
// the CLI, HTTP API and MCP server alike. ExportService names and writes
// result files. SettingsService maps config keys onto domain.Settings.
//
// Services depend only on domain and the port interfaces.
package services
