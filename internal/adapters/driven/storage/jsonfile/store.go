// Package jsonfile stores the enriched product list as a single JSON
// document.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/databolaget/databolaget/internal/core/domain"
	"github.com/databolaget/databolaget/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.ProductStore = (*Store)(nil)

// Store writes products as a pretty-printed JSON array. Non-ASCII text is
// written as UTF-8, not escaped.
type Store struct {
	path string
}

// NewStore creates a store at path. An empty path uses
// domain.DefaultOutputPath.
func NewStore(path string) *Store {
	if path == "" {
		path = domain.DefaultOutputPath
	}
	return &Store{path: path}
}

// Path returns the JSON file path.
func (s *Store) Path() string {
	return s.path
}

// Save replaces the file with products. The file is truncated and written
// in place; a failure part way leaves it incomplete.
func (s *Store) Save(_ context.Context, products []domain.Product) error {
	if products == nil {
		products = []domain.Product{}
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", s.path, err)
	}

	if err := Encode(f, products); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", s.path, err)
	}
	return f.Close()
}

// Load reads the product list back.
func (s *Store) Load(_ context.Context) ([]domain.Product, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, s.path)
		}
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var products []domain.Product
	if err := dec.Decode(&products); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", s.path, err)
	}
	if products == nil {
		products = []domain.Product{}
	}
	return products, nil
}

// Encode writes products with two-space indentation and without HTML or
// non-ASCII escaping.
func Encode(w io.Writer, products []domain.Product) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(products)
}
