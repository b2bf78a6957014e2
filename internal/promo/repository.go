package promo

import (
	"context"
	"strings"
	"sync"
)

// Repository provides lookup of promo rules by their code.
// FindByCode returns (nil, nil) when the code is unknown.
type Repository interface {
	FindByCode(ctx context.Context, code string) (*Rule, error)
}

type memoryRepository struct {
	mu    sync.RWMutex
	rules map[string]Rule
}

func NewMemoryRepository(seed []Rule) Repository {
	rules := make(map[string]Rule, len(seed))
	for _, r := range seed {
		rules[normalizeCode(r.Code)] = r
	}
	return &memoryRepository{rules: rules}
}

func (r *memoryRepository) FindByCode(ctx context.Context, code string) (*Rule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rule, ok := r.rules[normalizeCode(code)]
	if !ok {
		return nil, nil
	}
	cp := rule
	return &cp, nil
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
