package driving

import (
	"context"

	"github.com/databolaget/databolaget/internal/core/domain"
)

// ProductActionService provides actions on a single product.
// This is used by the TUI and CLI adapters.
type ProductActionService interface {
	// OpenProduct opens the product page in the default browser.
	OpenProduct(ctx context.Context, product domain.Product) error

	// CopyURL copies the product page URL to the system clipboard.
	CopyURL(ctx context.Context, product domain.Product) error
}
