// Package cli provides the databolaget command line.
// It implements a driving adapter following hexagonal architecture principles.
package cli

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/databolaget/databolaget/internal/core/domain"
	"github.com/databolaget/databolaget/internal/core/ports/driving"
	"github.com/databolaget/databolaget/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

var (
	verbose   bool
	configDir string
)

// Wiring builds the services a command needs once its settings are known.
type Wiring struct {
	// Settings opens the settings stored under dir, or the default
	// location when dir is empty.
	Settings func(dir string) (driving.SettingsService, error)

	// Pipeline builds the fetch pipeline. Progress lines go to out. A dry
	// run keeps the products in memory instead of writing files.
	Pipeline func(settings domain.Settings, out io.Writer, dryRun bool) (driving.Pipeline, io.Closer, error)

	// Catalog opens the saved product list at path.
	Catalog func(path string) (driving.CatalogService, error)

	// History opens the run history database at path.
	History func(path string) (driving.HistoryService, io.Closer, error)

	// Actions opens and copies product links. Optional.
	Actions driving.ProductActionService
}

// wiring holds the current service wiring.
var wiring *Wiring

// SetWiring sets the service wiring used by all commands.
func SetWiring(w *Wiring) {
	wiring = w
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "databolaget",
	Short: "Systembolaget's catalog ranked by APK",
	Long: `Databolaget fetches Systembolaget's full product assortment with the
systembolaget command line tool, adds each product's page URL and APK
(millilitres of ethanol per SEK), and saves the list as JSON.

Saved products can then be listed, filtered and browsed.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		logger.SetOutput(cmd.ErrOrStderr())
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "config directory (default ~/.databolaget)")
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// resolveSettings loads the stored settings and applies any flags the
// command was given. Flags win over the config file, which wins over
// defaults.
func resolveSettings(cmd *cobra.Command) (domain.Settings, error) {
	if wiring == nil || wiring.Settings == nil {
		return domain.Settings{}, errors.New("settings not configured")
	}
	service, err := wiring.Settings(configDir)
	if err != nil {
		return domain.Settings{}, err
	}
	settings := service.Get()

	overrideString(cmd, "binary", &settings.CatalogBinary)
	overrideString(cmd, "output", &settings.OutputPath)
	overrideString(cmd, "input", &settings.OutputPath)
	overrideString(cmd, "sqlite", &settings.SQLitePath)
	if f := cmd.Flags().Lookup("interval"); f != nil && f.Changed {
		interval, err := cmd.Flags().GetDuration("interval")
		if err != nil {
			return domain.Settings{}, err
		}
		if interval <= 0 {
			return domain.Settings{}, errors.New("--interval must be positive")
		}
		settings.ProgressInterval = interval
	}

	logger.Debug("settings: binary=%s output=%s sqlite=%s interval=%s",
		settings.CatalogBinary, settings.OutputPath, settings.SQLitePath,
		settings.ProgressInterval.Round(time.Millisecond))
	return settings, nil
}

func overrideString(cmd *cobra.Command, name string, target *string) {
	if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
		*target = f.Value.String()
	}
}
