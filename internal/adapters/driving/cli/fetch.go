package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/databolaget/databolaget/internal/core/domain"
	"github.com/databolaget/databolaget/internal/logger"
)

var (
	fetchBinary   string
	fetchOutput   string
	fetchSQLite   string
	fetchInterval time.Duration
	fetchDryRun   bool
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch the catalog and compute APK",
	Long: `Runs "systembolaget assortment --sort-by Name --sort ascending", adds
productUrl and apk to every product and writes the list as JSON.

Products keep every field the catalog tool returned. apk is null when
volume, alcohol percentage or price is missing, non-numeric or zero.
Nothing is written when the catalog tool fails.`,
	Args: cobra.NoArgs,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().StringVar(&fetchBinary, "binary", domain.DefaultCatalogBinary, "catalog tool executable")
	fetchCmd.Flags().StringVarP(&fetchOutput, "output", "o", domain.DefaultOutputPath, "JSON output file")
	fetchCmd.Flags().StringVar(&fetchSQLite, "sqlite", "", "also record the run in this SQLite database")
	fetchCmd.Flags().DurationVar(&fetchInterval, "interval", domain.DefaultProgressInterval, "progress spinner interval")
	fetchCmd.Flags().BoolVar(&fetchDryRun, "dry-run", false, "fetch and enrich without writing any file")
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, _ []string) error {
	if wiring == nil || wiring.Pipeline == nil {
		return errors.New("fetch pipeline not configured")
	}

	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	pipeline, closer, err := wiring.Pipeline(settings, cmd.OutOrStdout(), fetchDryRun)
	if err != nil {
		return fmt.Errorf("failed to set up fetch: %w", err)
	}
	if closer != nil {
		defer func() {
			if err := closer.Close(); err != nil {
				logger.Warn("close: %v", err)
			}
		}()
	}

	run, err := pipeline.Run(cmd.Context())
	if err != nil {
		return err
	}

	cmd.Printf("%d products, %d with URL, %d with APK in %s\n",
		run.Products, run.WithURL, run.WithAPK, run.Duration().Round(time.Millisecond))
	if fetchDryRun {
		cmd.Println("Dry run: nothing was written.")
	}
	logger.Debug("run %s finished", run.ID)
	return nil
}
