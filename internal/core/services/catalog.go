package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/databolaget/databolaget/internal/core/domain"
	"github.com/databolaget/databolaget/internal/core/ports/driven"
	"github.com/databolaget/databolaget/internal/core/ports/driving"
)

// Ensure CatalogService implements the interface.
var _ driving.CatalogService = (*CatalogService)(nil)

// CatalogService answers queries over the saved product list.
// The list is read from the store on first use and kept for the lifetime
// of the service.
type CatalogService struct {
	store driven.ProductStore

	mu       sync.Mutex
	products []domain.Product
	loaded   bool
}

// NewCatalogService creates a catalog service reading from store.
func NewCatalogService(store driven.ProductStore) *CatalogService {
	return &CatalogService{store: store}
}

// List returns the saved products matching query.
func (s *CatalogService) List(ctx context.Context, query domain.ProductQuery) ([]domain.Product, error) {
	products, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return FilterProducts(products, query), nil
}

// Assortments returns the distinct non-empty assortment values, sorted.
func (s *CatalogService) Assortments(ctx context.Context) ([]string, error) {
	products, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var result []string
	for _, p := range products {
		a := p.String(domain.FieldAssortment)
		if a == "" || seen[a] {
			continue
		}
		seen[a] = true
		result = append(result, a)
	}
	sort.Strings(result)
	return result, nil
}

func (s *CatalogService) load(ctx context.Context) ([]domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return s.products, nil
	}
	if s.store == nil {
		return nil, errors.New("product store not configured")
	}

	products, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	s.products = products
	s.loaded = true
	return products, nil
}

// FilterProducts applies search, assortment filter, sort and limit.
// The input slice is not modified; sorting is stable.
func FilterProducts(products []domain.Product, query domain.ProductQuery) []domain.Product {
	term := strings.ToLower(strings.TrimSpace(query.Search))

	result := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if term != "" && !matchesSearch(p, term) {
			continue
		}
		if query.Assortment != "" && p.String(domain.FieldAssortment) != query.Assortment {
			continue
		}
		result = append(result, p)
	}

	sortProducts(result, query.Sort)

	if query.Limit > 0 && len(result) > query.Limit {
		result = result[:query.Limit]
	}
	return result
}

// matchesSearch checks term against the name, the category title and the
// grape list. term must already be lower-case.
func matchesSearch(p domain.Product, term string) bool {
	name := p.String(domain.FieldNameBold) + " " + p.String(domain.FieldNameThin)
	grapes := strings.Join(p.Grapes(), ", ")

	return strings.Contains(strings.ToLower(name), term) ||
		strings.Contains(strings.ToLower(p.CategoryTitle()), term) ||
		strings.Contains(strings.ToLower(grapes), term)
}

func sortProducts(products []domain.Product, key domain.SortKey) {
	switch key {
	case domain.SortAPKDesc:
		sortByNumber(products, domain.FieldAPK, true)
	case domain.SortAPKAsc:
		sortByNumber(products, domain.FieldAPK, false)
	case domain.SortPriceAsc:
		sortByNumber(products, domain.FieldPrice, false)
	case domain.SortPriceDesc:
		sortByNumber(products, domain.FieldPrice, true)
	case domain.SortVolumeDesc:
		sortByNumber(products, domain.FieldVolume, true)
	case domain.SortNameAsc:
		// Base-letter comparison: case and accents are ignored, while
		// Swedish å, ä and ö stay letters of their own after z.
		c := collate.New(language.Swedish, collate.Loose)
		sort.SliceStable(products, func(i, j int) bool {
			return c.CompareString(products[i].ListName(), products[j].ListName()) < 0
		})
	case domain.SortNone:
	}
}

// sortByNumber orders by a numeric field; missing or invalid values count
// as zero.
func sortByNumber(products []domain.Product, field string, desc bool) {
	value := func(p domain.Product) float64 {
		f, ok := p.Float(field)
		if !ok {
			return 0
		}
		return f
	}
	sort.SliceStable(products, func(i, j int) bool {
		if desc {
			return value(products[i]) > value(products[j])
		}
		return value(products[i]) < value(products[j])
	})
}
