package driven

import (
	"context"

	"github.com/databolaget/databolaget/internal/core/domain"
)

// CatalogSource returns the retailer's product assortment.
type CatalogSource interface {
	// FullAssortment fetches every product, sorted by name ascending.
	// Fails with *domain.ExternalToolError or *domain.MalformedResponseError.
	FullAssortment(ctx context.Context) ([]domain.Product, error)
}
