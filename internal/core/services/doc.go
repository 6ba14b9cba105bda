// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Enrichment (product URLs and APK) lives here as pure functions.
package services
