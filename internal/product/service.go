package product

import (
	"context"
)

// Service defines the business logic for the product catalog.
type Service interface {
	GetProduct(ctx context.Context, id string) (*Product, error)
	ListProducts(ctx context.Context, opts QueryOptions) ([]*Product, error)
	FeaturedProducts(ctx context.Context) ([]*Product, error)
}

type service struct {
	repo Repository
}

// NewService creates a new catalog service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetProduct(ctx context.Context, id string) (*Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}

func (s *service) ListProducts(ctx context.Context, opts QueryOptions) ([]*Product, error) {
	if opts.Category != nil && !opts.Category.Valid() {
		return nil, ErrInvalidCategory
	}
	return s.repo.List(ctx, opts)
}

// FeaturedProducts returns the home-feed selection: new arrivals and
// items currently on sale, in-stock only.
func (s *service) FeaturedProducts(ctx context.Context) ([]*Product, error) {
	all, err := s.repo.List(ctx, QueryOptions{InStock: true})
	if err != nil {
		return nil, err
	}

	featured := make([]*Product, 0, len(all))
	for _, p := range all {
		if p.IsNew || p.IsOnSale {
			featured = append(featured, p)
		}
	}
	return featured, nil
}
