package user

import (
	"context"
	"sync"
)

// Repository is the profile/loyalty data provider. GetByID returns
// (nil, nil) when no user matches.
type Repository interface {
	GetByID(ctx context.Context, id string) (*User, error)
}

type memoryRepository struct {
	mu    sync.RWMutex
	users map[string]User
}

func NewMemoryRepository(seed []User) Repository {
	users := make(map[string]User, len(seed))
	for _, u := range seed {
		users[u.ID] = u
	}
	return &memoryRepository{users: users}
}

func (r *memoryRepository) GetByID(ctx context.Context, id string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := u
	return &cp, nil
}
