package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/databolaget/databolaget/internal/core/domain"
	"github.com/databolaget/databolaget/internal/core/ports/driving"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change the settings stored in the config file.

Keys:
  catalog.binary        catalog tool executable
  output.json           JSON output file
  output.sqlite         run history database, empty to disable
  progress.interval_ms  progress spinner interval in milliseconds

Command flags override these settings.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func openSettings() (driving.SettingsService, error) {
	if wiring == nil || wiring.Settings == nil {
		return nil, errors.New("settings service not configured")
	}
	return wiring.Settings(configDir)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	service, err := openSettings()
	if err != nil {
		return err
	}
	settings := service.Get()

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Printf("Config file: %s\n\n", service.Path())

	sqlite := settings.SQLitePath
	if sqlite == "" {
		sqlite = "(disabled)"
	}
	cmd.Printf("  %-22s %s\n", "catalog.binary", settings.CatalogBinary)
	cmd.Printf("  %-22s %s\n", "output.json", settings.OutputPath)
	cmd.Printf("  %-22s %s\n", "output.sqlite", sqlite)
	cmd.Printf("  %-22s %d\n", "progress.interval_ms", settings.ProgressInterval.Milliseconds())
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	service, err := openSettings()
	if err != nil {
		return err
	}

	key, value := args[0], args[1]
	if err := service.Set(key, value); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return fmt.Errorf("%w (keys: %v)", err, service.Keys())
		}
		return fmt.Errorf("failed to save setting: %w", err)
	}

	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}
