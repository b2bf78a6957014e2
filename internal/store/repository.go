package store

import (
	"context"
	"sync"
)

// Repository is the store-locator data provider. GetByID returns
// (nil, nil) when no store matches.
type Repository interface {
	GetByID(ctx context.Context, id string) (*Store, error)
	List(ctx context.Context) ([]*Store, error)
}

type memoryRepository struct {
	mu     sync.RWMutex
	stores []*Store
}

func NewMemoryRepository(seed []*Store) Repository {
	stores := make([]*Store, len(seed))
	copy(stores, seed)
	return &memoryRepository{stores: stores}
}

func (r *memoryRepository) GetByID(ctx context.Context, id string) (*Store, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.stores {
		if s.ID == id {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memoryRepository) List(ctx context.Context) ([]*Store, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Store, 0, len(r.stores))
	for _, s := range r.stores {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}
