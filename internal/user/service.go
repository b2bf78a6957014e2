package user

import (
	"context"
)

// Service defines the business logic for profiles and loyalty balances.
type Service interface {
	GetUser(ctx context.Context, id string) (*User, error)
	// ValidateRedemption checks that the user holds at least the
	// requested number of points. The cart layer calls this before
	// recording a redemption; total computation itself never re-checks
	// the balance.
	ValidateRedemption(ctx context.Context, userID string, points int) error
}

type service struct {
	repo Repository
}

// NewService creates a new user service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetUser(ctx context.Context, id string) (*User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (s *service) ValidateRedemption(ctx context.Context, userID string, points int) error {
	if points < 0 {
		return ErrInvalidPointAmount
	}

	u, err := s.GetUser(ctx, userID)
	if err != nil {
		return err
	}

	if points > u.LoyaltyPoints {
		return ErrInsufficientPoints
	}
	return nil
}
