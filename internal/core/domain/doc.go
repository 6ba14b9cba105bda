// Package domain defines the core business entities for databolaget.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Product: One catalog item as returned by the catalog tool
//   - ProductQuery: Search, filter and sort options over saved products
//   - RunSummary: The outcome of one fetch-enrich-save run
//   - Settings: Resolved runtime settings
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
