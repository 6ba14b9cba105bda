package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/databolaget/databolaget/internal/adapters/driving/tui/components/table"
	"github.com/databolaget/databolaget/internal/core/domain"
	"github.com/databolaget/databolaget/internal/core/ports/driving"
	"github.com/databolaget/databolaget/internal/logger"
)

var (
	historySQLite string
	historyLimit  int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded fetch runs",
	Long: `Lists fetch runs recorded in the SQLite database, newest first.

Runs are only recorded when output.sqlite is set or fetch is given --sqlite.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

var historyTopCmd = &cobra.Command{
	Use:   "top [run-id]",
	Short: "Show the highest APK products of a run",
	Long:  `Shows the products with the highest APK of a run. Without a run ID the newest run is used.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHistoryTop,
}

func init() {
	historyCmd.PersistentFlags().StringVar(&historySQLite, "sqlite", "", "SQLite database (default from output.sqlite)")
	historyCmd.PersistentFlags().IntVarP(&historyLimit, "limit", "n", 10, "maximum number of rows, 0 for all")
	historyCmd.AddCommand(historyTopCmd)
	rootCmd.AddCommand(historyCmd)
}

func openHistory(cmd *cobra.Command) (driving.HistoryService, func(), error) {
	if wiring == nil || wiring.History == nil {
		return nil, nil, errors.New("history not configured")
	}

	settings, err := resolveSettings(cmd)
	if err != nil {
		return nil, nil, err
	}
	if settings.SQLitePath == "" {
		return nil, nil, errors.New("run history is disabled: set output.sqlite or pass --sqlite")
	}

	history, closer, err := wiring.History(settings.SQLitePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open history: %w", err)
	}
	cleanup := func() {
		if closer == nil {
			return
		}
		if err := closer.Close(); err != nil {
			logger.Warn("close history: %v", err)
		}
	}
	return history, cleanup, nil
}

func runHistory(cmd *cobra.Command, _ []string) error {
	history, cleanup, err := openHistory(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	runs, err := history.Runs(cmd.Context(), historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}
	if len(runs) == 0 {
		cmd.Println("No runs recorded.")
		return nil
	}

	cmd.Printf("%-36s  %-19s  %8s  %8s  %8s  %s\n", "RUN", "STARTED", "PRODUCTS", "URL", "APK", "DURATION")
	for _, run := range runs {
		cmd.Printf("%-36s  %-19s  %8d  %8d  %8d  %s\n",
			run.ID,
			run.StartedAt.Local().Format("2006-01-02 15:04:05"),
			run.Products, run.WithURL, run.WithAPK,
			run.Duration().Round(time.Millisecond))
	}
	return nil
}

func runHistoryTop(cmd *cobra.Command, args []string) error {
	history, cleanup, err := openHistory(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	runID := ""
	if len(args) == 1 {
		runID = args[0]
	}

	products, err := history.TopProducts(cmd.Context(), runID, historyLimit)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return errors.New("no recorded runs")
		}
		return fmt.Errorf("failed to load run: %w", err)
	}

	cmd.Println(table.Render(products, table.Options{Selected: -1}))
	return nil
}
