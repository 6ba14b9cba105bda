package domain

import (
	"fmt"
	"strings"
)

// SortKey selects the ordering of a product listing.
type SortKey string

// Supported sort keys. SortNone keeps catalog order.
const (
	SortNone       SortKey = ""
	SortAPKDesc    SortKey = "apk-desc"
	SortAPKAsc     SortKey = "apk-asc"
	SortPriceAsc   SortKey = "price-asc"
	SortPriceDesc  SortKey = "price-desc"
	SortVolumeDesc SortKey = "volume-desc"
	SortNameAsc    SortKey = "name-asc"
)

// SortKeys lists every non-empty sort key in display order.
func SortKeys() []SortKey {
	return []SortKey{SortAPKDesc, SortAPKAsc, SortPriceAsc, SortPriceDesc, SortVolumeDesc, SortNameAsc}
}

// ParseSortKey validates a sort key given on the command line.
func ParseSortKey(s string) (SortKey, error) {
	key := SortKey(strings.ToLower(strings.TrimSpace(s)))
	if key == SortNone {
		return SortNone, nil
	}
	for _, k := range SortKeys() {
		if k == key {
			return k, nil
		}
	}
	return SortNone, fmt.Errorf("%w: unknown sort key %q", ErrInvalidInput, s)
}

// ProductQuery filters and orders saved products.
type ProductQuery struct {
	// Search matches case-insensitively against name, category and grapes.
	Search string

	// Assortment keeps only products with this exact assortment value.
	Assortment string

	// Sort orders the result. Empty keeps catalog order.
	Sort SortKey

	// Limit caps the number of results. Zero means no limit.
	Limit int
}
