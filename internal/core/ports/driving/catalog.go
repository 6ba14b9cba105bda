package driving

import (
	"context"

	"github.com/databolaget/databolaget/internal/core/domain"
)

// CatalogService queries the saved, enriched product list.
type CatalogService interface {
	// List returns the products matching query.
	List(ctx context.Context, query domain.ProductQuery) ([]domain.Product, error)

	// Assortments returns the distinct assortment values, sorted.
	Assortments(ctx context.Context) ([]string, error)
}

// HistoryService lists previous runs.
type HistoryService interface {
	// Runs returns recorded runs, newest first. Zero limit returns all.
	Runs(ctx context.Context, limit int) ([]domain.RunSummary, error)

	// TopProducts returns the best value products of a run.
	// An empty runID selects the newest run.
	TopProducts(ctx context.Context, runID string, limit int) ([]domain.Product, error)
}
