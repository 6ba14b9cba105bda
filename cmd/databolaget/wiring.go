package main

import (
	"io"

	"github.com/databolaget/databolaget/internal/adapters/driven/catalog/systembolaget"
	"github.com/databolaget/databolaget/internal/adapters/driven/config/file"
	"github.com/databolaget/databolaget/internal/adapters/driven/progress"
	"github.com/databolaget/databolaget/internal/adapters/driven/storage/jsonfile"
	"github.com/databolaget/databolaget/internal/adapters/driven/storage/memory"
	"github.com/databolaget/databolaget/internal/adapters/driven/storage/sqlite"
	"github.com/databolaget/databolaget/internal/adapters/driving/cli"
	"github.com/databolaget/databolaget/internal/core/domain"
	"github.com/databolaget/databolaget/internal/core/ports/driven"
	"github.com/databolaget/databolaget/internal/core/ports/driving"
	"github.com/databolaget/databolaget/internal/core/services"
	"github.com/databolaget/databolaget/internal/logger"
)

// newWiring connects the CLI to the concrete adapters.
func newWiring(actions driving.ProductActionService) *cli.Wiring {
	return &cli.Wiring{
		Settings: openSettings,
		Pipeline: newPipeline,
		Catalog:  openCatalog,
		History:  openHistory,
		Actions:  actions,
	}
}

func openSettings(dir string) (driving.SettingsService, error) {
	store, err := file.NewConfigStore(dir)
	if err != nil {
		return nil, err
	}
	logger.Debug("config: %s", store.Path())
	return services.NewSettingsService(store), nil
}

// newPipeline builds the fetch pipeline. A dry run saves to memory and
// records no history.
func newPipeline(settings domain.Settings, out io.Writer, dryRun bool) (driving.Pipeline, io.Closer, error) {
	spinner := progress.New(out, progress.WithInterval(settings.ProgressInterval))
	catalog := systembolaget.NewClient(settings.CatalogBinary, spinner)

	if dryRun {
		return services.NewPipeline(catalog, memory.NewProductStore(), nil, out), nopCloser{}, nil
	}

	store := jsonfile.NewStore(settings.OutputPath)
	if settings.SQLitePath == "" {
		return services.NewPipeline(catalog, store, nil, out), nopCloser{}, nil
	}

	db, err := sqlite.NewStore(settings.SQLitePath)
	if err != nil {
		return nil, nil, err
	}
	return services.NewPipeline(catalog, store, db, out), db, nil
}

func openCatalog(path string) (driving.CatalogService, error) {
	return services.NewCatalogService(jsonfile.NewStore(path)), nil
}

func openHistory(path string) (driving.HistoryService, io.Closer, error) {
	db, err := sqlite.NewStore(path)
	if err != nil {
		return nil, nil, err
	}
	var recorder driven.RunRecorder = db
	return services.NewHistoryService(recorder), db, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
