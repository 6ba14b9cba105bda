package driving

import (
	"context"

	"github.com/databolaget/databolaget/internal/core/domain"
)

// Pipeline fetches the catalog, enriches every product and saves the result.
type Pipeline interface {
	// Run performs one full run. A catalog failure aborts the run before
	// anything is written.
	Run(ctx context.Context) (*domain.RunSummary, error)
}
