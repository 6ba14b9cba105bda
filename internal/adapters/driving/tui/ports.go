// Package tui provides the interactive product browser.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/databolaget/databolaget/internal/core/ports/driving"
)

// Ports aggregates the driving ports the browser needs.
type Ports struct {
	// Catalog answers product queries.
	Catalog driving.CatalogService

	// Actions opens and copies product links. Optional.
	Actions driving.ProductActionService
}

// NewPorts creates a new Ports aggregate.
func NewPorts(catalog driving.CatalogService, actions driving.ProductActionService) *Ports {
	return &Ports{
		Catalog: catalog,
		Actions: actions,
	}
}

// Validate ensures the required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Catalog == nil {
		return ErrMissingCatalogService
	}
	return nil
}
