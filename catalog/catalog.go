// Package catalog serves the static product list. The backing JSON file is
// parsed once and cached until its modification time changes.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"loopcart/models"
)

// ErrNotFound is returned when no product has the requested id.
var ErrNotFound = errors.New("product not found")

// Reader owns the cached catalog snapshot and its source mtime.
type Reader struct {
	path string

	mu       sync.Mutex
	mtime    time.Time
	products []models.Product
}

// NewReader creates a reader for the given product file. The file is read
// lazily on first use.
func NewReader(path string) *Reader {
	return &Reader{path: path}
}

// All returns the current catalog snapshot. Callers must not mutate the
// returned slice; a reload replaces it wholesale.
func (r *Reader) All() ([]models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	info, err := os.Stat(r.path)
	if err != nil {
		return nil, fmt.Errorf("stat catalog: %w", err)
	}

	if r.products == nil || !info.ModTime().Equal(r.mtime) {
		raw, err := os.ReadFile(r.path)
		if err != nil {
			return nil, fmt.Errorf("read catalog: %w", err)
		}
		var products []models.Product
		if err := json.Unmarshal(raw, &products); err != nil {
			return nil, fmt.Errorf("parse catalog: %w", err)
		}
		if products == nil {
			products = []models.Product{}
		}
		r.products = products
		r.mtime = info.ModTime()
	}

	return r.products, nil
}

// GetByID returns the product with the given id, or ErrNotFound.
func (r *Reader) GetByID(id string) (*models.Product, error) {
	products, err := r.All()
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, ErrNotFound
}

// Search returns every product whose title, brand, category, tags or specs
// contain the query, case-insensitively. An empty query returns the full
// catalog. No ranking or pagination.
func (r *Reader) Search(query string) ([]models.Product, error) {
	products, err := r.All()
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return products, nil
	}

	results := []models.Product{}
	for _, p := range products {
		if strings.Contains(haystack(&p), q) {
			results = append(results, p)
		}
	}
	return results, nil
}

func haystack(p *models.Product) string {
	parts := []string{p.Title, p.Brand, p.Category}
	parts = append(parts, p.Tags...)
	if len(p.Specs) > 0 {
		// Serialized specs are searchable too, matching the storefront UI.
		if raw, err := json.Marshal(p.Specs); err == nil {
			parts = append(parts, string(raw))
		}
	}
	return strings.ToLower(strings.Join(parts, " "))
}
