package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/databolaget/databolaget/internal/core/domain"
	"github.com/databolaget/databolaget/internal/core/ports/driven"
	"github.com/databolaget/databolaget/internal/core/ports/driving"
	"github.com/databolaget/databolaget/internal/logger"
)

// Ensure Pipeline implements the interface.
var _ driving.Pipeline = (*Pipeline)(nil)

// Pipeline runs fetch, enrich and save.
type Pipeline struct {
	catalog  driven.CatalogSource
	store    driven.ProductStore
	recorder driven.RunRecorder
	out      io.Writer
	now      func() time.Time
}

// NewPipeline creates a pipeline. The recorder is optional; progress lines
// go to out, which defaults to io.Discard.
func NewPipeline(
	catalog driven.CatalogSource,
	store driven.ProductStore,
	recorder driven.RunRecorder,
	out io.Writer,
) *Pipeline {
	if out == nil {
		out = io.Discard
	}
	return &Pipeline{
		catalog:  catalog,
		store:    store,
		recorder: recorder,
		out:      out,
		now:      time.Now,
	}
}

// Run fetches the full assortment, enriches every product in place and
// saves the list. Nothing is written when the fetch fails.
func (p *Pipeline) Run(ctx context.Context) (*domain.RunSummary, error) {
	if p.catalog == nil {
		return nil, fmt.Errorf("fetch assortment: catalog source not configured")
	}
	if p.store == nil {
		return nil, fmt.Errorf("save products: product store not configured")
	}

	run := &domain.RunSummary{
		ID:         uuid.New().String(),
		StartedAt:  p.now(),
		OutputPath: p.store.Path(),
	}
	logger.Section("Run " + run.ID)

	fmt.Fprintln(p.out, "Fetching full product assortment…")
	products, err := p.catalog.FullAssortment(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch assortment: %w", err)
	}
	logger.Debug("fetched %d products", len(products))

	fmt.Fprintln(p.out, "Calculating APK (ethanol ml per SEK)…")
	for _, product := range products {
		hasURL, hasAPK := Enrich(product)
		if hasURL {
			run.WithURL++
		}
		if hasAPK {
			run.WithAPK++
		}
	}
	run.Products = len(products)
	logger.Info("enriched %d products: %d with URL, %d with APK", run.Products, run.WithURL, run.WithAPK)

	fmt.Fprintf(p.out, "Saving %d products to %s\n", len(products), p.store.Path())
	if err := p.store.Save(ctx, products); err != nil {
		return nil, fmt.Errorf("save products: %w", err)
	}
	run.FinishedAt = p.now()

	if p.recorder != nil {
		if err := p.recorder.RecordRun(ctx, *run, products); err != nil {
			return nil, fmt.Errorf("record run: %w", err)
		}
		logger.Debug("recorded run %s", run.ID)
	}

	fmt.Fprintln(p.out, "Done.")
	return run, nil
}
