package cart

import (
	"context"
	"sync"
)

// Repository stores one open cart per user. GetByUser returns (nil, nil)
// when the user has no cart.
type Repository interface {
	GetByUser(ctx context.Context, userID string) (*Cart, error)
	Save(ctx context.Context, c *Cart) error
	DeleteByUser(ctx context.Context, userID string) error
}

// memoryRepository keeps carts in a map guarded by a mutex. Carts are
// deep-copied on the way in and out, so a reader never observes a cart
// mid-mutation even though the design assumes a single logical writer
// per session.
type memoryRepository struct {
	mu    sync.RWMutex
	carts map[string]*Cart
}

func NewMemoryRepository() Repository {
	return &memoryRepository{carts: make(map[string]*Cart)}
}

func (r *memoryRepository) GetByUser(ctx context.Context, userID string) (*Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.carts[userID]
	if !ok {
		return nil, nil
	}
	return c.Clone(), nil
}

func (r *memoryRepository) Save(ctx context.Context, c *Cart) error {
	if c.UserID == "" {
		return ErrUserRequired
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.carts[c.UserID] = c.Clone()
	return nil
}

func (r *memoryRepository) DeleteByUser(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, userID)
	return nil
}
