package promo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Service resolves promo codes into currency-amount discounts.
//
// Expiration is enforced here, at application time. Total computation
// downstream trusts the applied discount list and never re-checks
// expiry, so this is the single enforcement point.
type Service interface {
	Resolve(ctx context.Context, code string, subtotal, shippingCost decimal.Decimal) (*Discount, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a new promotions service
func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) Resolve(ctx context.Context, code string, subtotal, shippingCost decimal.Decimal) (*Discount, error) {
	rule, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		return nil, ErrCodeNotFound
	}

	if rule.ExpiresAt != nil && rule.ExpiresAt.Before(s.now()) {
		return nil, ErrCodeExpired
	}
	if subtotal.LessThan(rule.MinSubtotal) {
		return nil, ErrMinSubtotalNotMet
	}

	var amount decimal.Decimal
	switch rule.Kind {
	case KindPercentage:
		// Resolve the raw percentage to a currency amount, rounded
		// to the minor unit.
		amount = subtotal.Mul(rule.Value).Div(hundred).Round(2)
	case KindFixedAmount:
		amount = rule.Value
	case KindFreeShipping:
		amount = shippingCost
	default:
		return nil, ErrInvalidKind
	}

	d, err := NewDiscount(uuid.NewString(), rule.Code, rule.Kind, amount, rule.Description, rule.ExpiresAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
