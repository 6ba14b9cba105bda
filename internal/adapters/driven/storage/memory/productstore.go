package memory

import (
	"context"
	"sync"

	"github.com/databolaget/databolaget/internal/core/domain"
	"github.com/databolaget/databolaget/internal/core/ports/driven"
)

// Ensure ProductStore implements the interface.
var _ driven.ProductStore = (*ProductStore)(nil)

// ProductStore keeps the last saved product list in memory.
type ProductStore struct {
	mu       sync.RWMutex
	products []domain.Product
	saved    bool
	saves    int
}

// NewProductStore creates an empty product store.
func NewProductStore() *ProductStore {
	return &ProductStore{}
}

// Save replaces the stored list. The slice is copied; the products
// themselves are shared.
func (s *ProductStore) Save(_ context.Context, products []domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append([]domain.Product{}, products...)
	s.saved = true
	s.saves++
	return nil
}

// Load returns the stored list, or domain.ErrNotFound before any Save.
func (s *ProductStore) Load(_ context.Context) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.saved {
		return nil, domain.ErrNotFound
	}
	return append([]domain.Product{}, s.products...), nil
}

// Path returns ":memory:".
func (s *ProductStore) Path() string {
	return ":memory:"
}

// Saves returns how many times Save was called.
func (s *ProductStore) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}
