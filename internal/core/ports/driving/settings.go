package driving

import "github.com/databolaget/databolaget/internal/core/domain"

// SettingsService manages persisted settings.
type SettingsService interface {
	// Get returns the current settings with defaults applied.
	Get() domain.Settings

	// Set stores one setting given as text.
	Set(key, value string) error

	// Keys lists the settable keys.
	Keys() []string

	// Path returns the config file location.
	Path() string
}
