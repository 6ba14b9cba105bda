package domain

import "time"

// RunSummary describes one fetch, enrich and save run.
type RunSummary struct {
	// ID uniquely identifies the run.
	ID string

	StartedAt  time.Time
	FinishedAt time.Time

	// Products is the number of records fetched and saved.
	Products int

	// WithURL counts records that received a productUrl.
	WithURL int

	// WithAPK counts records whose apk is not null.
	WithAPK int

	// OutputPath is where the JSON document was written.
	OutputPath string
}

// Duration returns how long the run took.
func (r RunSummary) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
