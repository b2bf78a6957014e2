package store

import (
	"context"
	"errors"
	"sort"
	"strings"
)

var ErrStoreNotFound = errors.New("store not found")

// Service defines the business logic for the store locator.
type Service interface {
	GetStore(ctx context.Context, id string) (*Store, error)
	ListStores(ctx context.Context) ([]*Store, error)
	// Search matches name, city, or zip code by case-insensitive
	// substring, the way the locator's search field filters.
	Search(ctx context.Context, query string) ([]*Store, error)
	// Nearest returns all stores with computed distances from the
	// given point, closest first.
	Nearest(ctx context.Context, from Coordinates) ([]*Located, error)
}

type service struct {
	repo Repository
}

// NewService creates a new store locator service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetStore(ctx context.Context, id string) (*Store, error) {
	st, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, ErrStoreNotFound
	}
	return st, nil
}

func (s *service) ListStores(ctx context.Context) ([]*Store, error) {
	return s.repo.List(ctx)
}

func (s *service) Search(ctx context.Context, query string) ([]*Store, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return all, nil
	}

	out := make([]*Store, 0, len(all))
	for _, st := range all {
		if strings.Contains(strings.ToLower(st.Name), q) ||
			strings.Contains(strings.ToLower(st.Address.City), q) ||
			strings.Contains(strings.ToLower(st.Address.ZipCode), q) {
			out = append(out, st)
		}
	}
	return out, nil
}

func (s *service) Nearest(ctx context.Context, from Coordinates) ([]*Located, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*Located, 0, len(all))
	for _, st := range all {
		out = append(out, &Located{
			Store:         *st,
			DistanceMiles: DistanceMiles(from, st.Coordinates),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].DistanceMiles < out[j].DistanceMiles
	})
	return out, nil
}
