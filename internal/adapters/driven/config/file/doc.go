// Package file provides the TOML configuration store kept in the eCourts
// config directory (~/.ecourts by default).
package file
