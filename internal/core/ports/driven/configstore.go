package driven

import (
	"context"
	"time"
)

// ConfigStore provides access to application configuration.
// Keys use dot notation matching TOML tables, e.g. "scraper.base_url".
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	Get(key string) (any, bool)

	// GetString returns "" if key doesn't exist or isn't a string.
	GetString(key string) string

	// GetInt returns 0 if key doesn't exist or isn't numeric.
	GetInt(key string) int

	// GetFloat returns 0 if key doesn't exist or isn't numeric.
	GetFloat(key string) float64

	// GetBool returns false if key doesn't exist or isn't a boolean.
	GetBool(key string) bool

	// GetDuration parses a duration string such as "15s".
	// Integers are read as seconds. Returns 0 if absent or malformed.
	GetDuration(key string) time.Duration

	// Keys returns all keys in sorted order.
	Keys() []string

	// Set stores a configuration value and persists it.
	Set(key string, value any) error

	// Save persists the current configuration to storage.
	Save() error

	// Load reads configuration from storage.
	Load() error

	// Path returns the configuration file path.
	Path() string
}

// ConfigWatcher reports changes to the configuration source.
type ConfigWatcher interface {
	// Watch reloads the store and calls onChange after each change until
	// ctx ends.
	Watch(ctx context.Context, onChange func()) error
}
