package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/databolaget/databolaget/internal/adapters/driving/tui"
	"github.com/databolaget/databolaget/internal/core/domain"
)

var (
	browseInput  string
	browseSearch string
	browseSort   string
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse saved products interactively",
	Long: `Opens an interactive table of the saved products.

Type to search by name, category or grape.

Controls:
  ↑/↓, pgup/pgdn - Move the selection
  tab/shift+tab  - Change sort order
  ctrl+f         - Cycle assortment filter
  enter          - Open the product page
  ctrl+y         - Copy the product link
  esc            - Clear search, or quit when empty
  ctrl+c         - Quit`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().StringVarP(&browseInput, "input", "i", domain.DefaultOutputPath, "saved JSON file")
	browseCmd.Flags().StringVarP(&browseSearch, "search", "s", "", "initial search")
	browseCmd.Flags().StringVar(&browseSort, "sort", string(domain.SortAPKDesc), "initial sort order")
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, _ []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in browser: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("browser crashed: %v", r)
		}
	}()

	if wiring == nil || wiring.Catalog == nil {
		return errors.New("catalog not configured")
	}

	sortKey, err := domain.ParseSortKey(browseSort)
	if err != nil {
		return err
	}

	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	catalog, err := wiring.Catalog(settings.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}

	app, err := tui.NewApp(tui.NewPorts(catalog, wiring.Actions))
	if err != nil {
		return fmt.Errorf("failed to create browser: %w", err)
	}
	app.WithContext(cmd.Context()).
		WithQuery(domain.ProductQuery{Search: browseSearch, Sort: sortKey})
	if info, statErr := os.Stat(settings.OutputPath); statErr == nil {
		app.WithUpdated(info.ModTime())
	}

	if err := app.Run(); err != nil {
		return fmt.Errorf("browser error: %w", err)
	}
	return nil
}
