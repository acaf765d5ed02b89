package catalog

import (
	"context"
	"errors"
	"strings"
)

// ErrNotFound is returned when no product exists for the requested id.
var ErrNotFound = errors.New("product not found")

// Filter narrows List results. Zero value matches everything.
type Filter struct {
	Category string // exact match, "" or "All" matches every category
	Query    string // case-insensitive substring of name, category or location
}

type Repository interface {
	Get(ctx context.Context, productID string) (Product, error)
	List(ctx context.Context, f Filter) ([]Product, error)
	Categories(ctx context.Context) ([]string, error)
}

type memoryRepo struct {
	products []Product
	byID     map[string]Product
}

// NewMemoryRepository serves a fixed product list. The catalog is
// reference data here; nothing in the storefront ever mutates it.
func NewMemoryRepository(products []Product) Repository {
	byID := make(map[string]Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &memoryRepo{products: products, byID: byID}
}

func (r *memoryRepo) Get(_ context.Context, productID string) (Product, error) {
	p, ok := r.byID[productID]
	if !ok {
		return Product{}, ErrNotFound
	}
	return p, nil
}

func (r *memoryRepo) List(_ context.Context, f Filter) ([]Product, error) {
	out := make([]Product, 0, len(r.products))
	q := strings.ToLower(strings.TrimSpace(f.Query))
	for _, p := range r.products {
		if f.Category != "" && f.Category != "All" && p.Category != f.Category {
			continue
		}
		if q != "" && !matchesQuery(p, q) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *memoryRepo) Categories(_ context.Context) ([]string, error) {
	seen := map[string]bool{}
	cats := []string{"All"}
	for _, p := range r.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			cats = append(cats, p.Category)
		}
	}
	return cats, nil
}

func matchesQuery(p Product, q string) bool {
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Category), q) ||
		strings.Contains(strings.ToLower(p.Location), q)
}
