package driven

import (
	"context"

	"github.com/databolaget/databolaget/internal/core/domain"
)

// ProductStore persists the enriched product list.
type ProductStore interface {
	// Save writes the full list, replacing any previous content.
	Save(ctx context.Context, products []domain.Product) error

	// Load reads the last saved list.
	// Returns domain.ErrNotFound if nothing has been saved yet.
	Load(ctx context.Context) ([]domain.Product, error)

	// Path returns where the list is stored.
	Path() string
}

// RunRecorder keeps a history of runs alongside the products they produced.
type RunRecorder interface {
	// RecordRun stores the summary and the enriched products of one run.
	RecordRun(ctx context.Context, run domain.RunSummary, products []domain.Product) error

	// Runs returns recorded runs, newest first. Zero limit returns all.
	Runs(ctx context.Context, limit int) ([]domain.RunSummary, error)

	// TopProducts returns a run's products with the highest apk first.
	TopProducts(ctx context.Context, runID string, limit int) ([]domain.Product, error)
}
