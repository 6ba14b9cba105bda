package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/databolaget/databolaget/internal/adapters/driving/tui/components/table"
	"github.com/databolaget/databolaget/internal/core/domain"
)

var (
	listSearch     string
	listAssortment string
	listSort       string
	listLimit      int
	listInput      string
	listURLs       bool
	listPlain      bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved products",
	Long: `Lists products from the saved JSON file as a table.

Search matches the product name, category and grapes, ignoring case.
Sort keys: ` + sortKeyList() + `.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "filter by name, category or grape")
	listCmd.Flags().StringVarP(&listAssortment, "assortment", "a", "", "only this assortment (e.g. FS, BS, TSE)")
	listCmd.Flags().StringVar(&listSort, "sort", string(domain.SortAPKDesc), "sort order")
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 20, "maximum number of products, 0 for all")
	listCmd.Flags().StringVarP(&listInput, "input", "i", domain.DefaultOutputPath, "saved JSON file")
	listCmd.Flags().BoolVar(&listURLs, "urls", false, "print full product URLs")
	listCmd.Flags().BoolVar(&listPlain, "plain", false, "print without borders")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	if wiring == nil || wiring.Catalog == nil {
		return errors.New("catalog not configured")
	}

	sortKey, err := domain.ParseSortKey(listSort)
	if err != nil {
		return err
	}
	if listLimit < 0 {
		return fmt.Errorf("%w: --limit cannot be negative", domain.ErrInvalidInput)
	}

	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	catalog, err := wiring.Catalog(settings.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}

	products, err := catalog.List(cmd.Context(), domain.ProductQuery{
		Search:     listSearch,
		Assortment: listAssortment,
		Sort:       sortKey,
		Limit:      listLimit,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("no saved products at %s, run 'databolaget fetch' first", settings.OutputPath)
		}
		return fmt.Errorf("failed to list products: %w", err)
	}

	cmd.Println(table.Render(products, table.Options{
		Selected: -1,
		WithURL:  listURLs,
		Plain:    listPlain,
	}))
	if len(products) > 0 {
		cmd.Printf("%d products\n", len(products))
	}
	return nil
}

func sortKeyList() string {
	keys := domain.SortKeys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}
