package domain

import "time"

// Defaults for Settings.
const (
	DefaultCatalogBinary    = "systembolaget"
	DefaultOutputPath       = "data/products_with_apk.json"
	DefaultProgressInterval = 150 * time.Millisecond
)

// Settings are the resolved runtime settings for a run.
// Values come from defaults, then the config file, then command flags.
type Settings struct {
	// CatalogBinary is the executable name or path of the catalog tool.
	CatalogBinary string

	// OutputPath is where the enriched JSON document is written.
	OutputPath string

	// SQLitePath enables the run history database when non-empty.
	SQLitePath string

	// ProgressInterval is the spinner redraw interval.
	ProgressInterval time.Duration
}

// DefaultSettings returns the built-in settings.
func DefaultSettings() Settings {
	return Settings{
		CatalogBinary:    DefaultCatalogBinary,
		OutputPath:       DefaultOutputPath,
		ProgressInterval: DefaultProgressInterval,
	}
}
