package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/databolaget/databolaget/internal/core/domain"
	"github.com/databolaget/databolaget/internal/core/ports/driven"
	"github.com/databolaget/databolaget/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyCatalogBinary    = "catalog.binary"
	KeyOutputJSON       = "output.json"
	KeyOutputSQLite     = "output.sqlite"
	KeyProgressInterval = "progress.interval_ms"
)

// SettingsService reads and writes settings through a ConfigStore.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get returns the configured settings with defaults filled in.
// A nil config store yields the defaults.
func (s *SettingsService) Get() domain.Settings {
	settings := domain.DefaultSettings()
	if s.configStore == nil {
		return settings
	}

	settings.CatalogBinary = s.getString(KeyCatalogBinary, settings.CatalogBinary)
	settings.OutputPath = s.getString(KeyOutputJSON, settings.OutputPath)
	settings.SQLitePath = s.configStore.GetString(KeyOutputSQLite)
	if ms := s.configStore.GetInt(KeyProgressInterval); ms > 0 {
		settings.ProgressInterval = time.Duration(ms) * time.Millisecond
	}
	return settings
}

// Set validates and stores a single setting given as text.
func (s *SettingsService) Set(key, value string) error {
	if s.configStore == nil {
		return errors.New("config store not configured")
	}

	value = strings.TrimSpace(value)
	switch key {
	case KeyCatalogBinary, KeyOutputJSON:
		if value == "" {
			return fmt.Errorf("%w: %s cannot be empty", domain.ErrInvalidInput, key)
		}
		return s.configStore.Set(key, value)
	case KeyOutputSQLite:
		return s.configStore.Set(key, value)
	case KeyProgressInterval:
		ms, err := strconv.Atoi(value)
		if err != nil || ms <= 0 {
			return fmt.Errorf("%w: %s must be a positive number of milliseconds", domain.ErrInvalidInput, key)
		}
		return s.configStore.Set(key, ms)
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
}

// Keys lists the settable keys in display order.
func (s *SettingsService) Keys() []string {
	return []string{KeyCatalogBinary, KeyOutputJSON, KeyOutputSQLite, KeyProgressInterval}
}

// Path returns the config file location, or "" without a store.
func (s *SettingsService) Path() string {
	if s.configStore == nil {
		return ""
	}
	return s.configStore.Path()
}

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}
