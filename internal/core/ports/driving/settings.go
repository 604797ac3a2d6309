package driving

import "github.com/custodia-labs/ecourts-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get reads current settings, applying defaults for missing keys.
	Get() (*domain.Settings, error)

	// Set validates and persists a single key.
	Set(key, value string) error

	// Keys returns the supported configuration keys.
	Keys() []string

	// GetDefaults returns default settings.
	GetDefaults() domain.Settings
}
