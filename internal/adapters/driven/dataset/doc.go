// Package dataset serves the deterministic synthetic records returned when
// live retrieval from the portal fails or is disabled.
//
// Cause lists and the jurisdiction catalogue are read from an embedded YAML
// document, parsed once on first use and never modified afterwards. Every
// accessor returns fresh copies.
package dataset
