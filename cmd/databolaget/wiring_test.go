package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/databolaget/databolaget/internal/core/domain"
)

func TestNewWiring(t *testing.T) {
	w := newWiring(nil)

	require.NotNil(t, w)
	assert.NotNil(t, w.Settings)
	assert.NotNil(t, w.Pipeline)
	assert.NotNil(t, w.Catalog)
	assert.NotNil(t, w.History)
}

func TestOpenSettings(t *testing.T) {
	dir := t.TempDir()

	service, err := openSettings(dir)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.toml"), service.Path())
	assert.Equal(t, domain.DefaultSettings(), service.Get())

	require.NoError(t, service.Set("output.sqlite", "runs.db"))
	reopened, err := openSettings(dir)
	require.NoError(t, err)
	assert.Equal(t, "runs.db", reopened.Get().SQLitePath)
}

func TestNewPipeline_MissingBinaryWritesNothing(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "data", "products_with_apk.json")
	settings := domain.Settings{
		CatalogBinary:    filepath.Join(dir, "no-such-binary"),
		OutputPath:       output,
		ProgressInterval: 10 * time.Millisecond,
	}

	pipeline, closer, err := newPipeline(settings, &bytes.Buffer{}, false)
	require.NoError(t, err)
	defer closer.Close()

	_, err = pipeline.Run(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrExternalTool))
	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr))
}

func TestNewPipeline_WithHistory(t *testing.T) {
	dir := t.TempDir()
	settings := domain.DefaultSettings()
	settings.OutputPath = filepath.Join(dir, "out.json")
	settings.SQLitePath = filepath.Join(dir, "runs.db")

	_, closer, err := newPipeline(settings, &bytes.Buffer{}, false)

	require.NoError(t, err)
	require.NoError(t, closer.Close())
	_, statErr := os.Stat(settings.SQLitePath)
	assert.NoError(t, statErr)
}

func TestNewPipeline_DryRun(t *testing.T) {
	dir := t.TempDir()
	settings := domain.DefaultSettings()
	settings.SQLitePath = filepath.Join(dir, "runs.db")

	_, closer, err := newPipeline(settings, &bytes.Buffer{}, true)

	require.NoError(t, err)
	require.NoError(t, closer.Close())
	_, statErr := os.Stat(settings.SQLitePath)
	assert.True(t, os.IsNotExist(statErr), "dry run opens no database")
}

func TestOpenCatalog_MissingFile(t *testing.T) {
	catalog, err := openCatalog(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)

	_, err = catalog.List(context.Background(), domain.ProductQuery{})

	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestOpenHistory(t *testing.T) {
	history, closer, err := openHistory(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	defer closer.Close()

	runs, err := history.Runs(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, runs)

	_, err = history.TopProducts(context.Background(), "", 5)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
