// Package messages defines Bubbletea message types for the browser.
package messages

import (
	"github.com/databolaget/databolaget/internal/core/domain"
)

// ProductsLoaded carries the products matching the current query.
type ProductsLoaded struct {
	Products []domain.Product

	// Assortments is the full list of assortment codes, or nil when it
	// was not reloaded.
	Assortments []string

	Err error
}

// SearchTick fires after the search field has been idle for the debounce
// delay. Seq identifies the keystroke that scheduled it; stale ticks are
// ignored.
type SearchTick struct {
	Seq int
}

// ActionCompleted reports the outcome of an action on a product.
type ActionCompleted struct {
	Message string
	Err     error
}
