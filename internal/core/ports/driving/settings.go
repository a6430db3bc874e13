package driving

import "github.com/custodia-labs/creational/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get returns the current settings with defaults applied.
	Get() domain.Settings

	// Set parses and persists a raw value for a known key.
	Set(key, raw string) error

	// Lookup returns the stored value for a key, or domain.ErrNotFound.
	Lookup(key string) (any, error)

	// Path returns where settings are persisted.
	Path() string
}
