package driven

// Exporter writes a result to files sharing a destination base path.
type Exporter interface {
	// Export writes base.json, and base.csv when result is domain.Tabular
	// with at least one row. Failures are logged and reported as false.
	Export(result any, base string) bool
}
