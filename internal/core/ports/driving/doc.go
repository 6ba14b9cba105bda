// Package driving defines the interfaces the CLI and the browser call
// into core:
//
//   - Pipeline: fetch, enrich and save the assortment
//   - CatalogService: query the saved products
//   - HistoryService: recorded runs (needs the SQLite recorder)
//   - SettingsService: persisted settings
//   - ProductActionService: open or copy a product page
//
// Implementations live in internal/core/services.
package driving
