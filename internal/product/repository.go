package product

import (
	"context"
	"strings"
	"sync"
)

// QueryOptions narrows a catalog listing. Zero value lists everything.
type QueryOptions struct {
	Search     string
	Category   *Category
	OnSaleOnly bool
	NewOnly    bool
	InStock    bool
}

// Repository is the catalog data provider. GetByID returns (nil, nil)
// when no product matches, mirroring a missing row.
type Repository interface {
	GetByID(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context, opts QueryOptions) ([]*Product, error)
}

// memoryRepository serves the catalog from a fixed in-memory slice.
// It stands in for the backend the demo app never talks to.
type memoryRepository struct {
	mu       sync.RWMutex
	products []*Product
}

func NewMemoryRepository(seed []*Product) Repository {
	items := make([]*Product, len(seed))
	copy(items, seed)
	return &memoryRepository{products: items}
}

func (r *memoryRepository) GetByID(ctx context.Context, id string) (*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memoryRepository) List(ctx context.Context, opts QueryOptions) ([]*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Product, 0, len(r.products))
	for _, p := range r.products {
		if !matches(p, opts) {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func matches(p *Product, opts QueryOptions) bool {
	if opts.Search != "" {
		q := strings.ToLower(opts.Search)
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			return false
		}
	}
	if opts.Category != nil && p.Category != *opts.Category {
		return false
	}
	if opts.OnSaleOnly && !p.IsOnSale {
		return false
	}
	if opts.NewOnly && !p.IsNew {
		return false
	}
	if opts.InStock && !p.InStock {
		return false
	}
	return true
}
