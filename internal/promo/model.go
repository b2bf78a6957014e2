package promo

import (
	"time"

	"github.com/shopspring/decimal"
)

type Kind string

const (
	KindPercentage   Kind = "percentage"
	KindFixedAmount  Kind = "fixed_amount"
	KindFreeShipping Kind = "free_shipping"
)

func (k Kind) Valid() bool {
	switch k {
	case KindPercentage, KindFixedAmount, KindFreeShipping:
		return true
	}
	return false
}

// Discount is a promotional adjustment already resolved to a currency
// amount. For the percentage kind, Amount holds the computed reduction,
// never the raw percentage.
type Discount struct {
	ID          string           `json:"id"`
	Code        string           `json:"code"`
	Kind        Kind             `json:"kind"`
	Amount      decimal.Decimal  `json:"amount"`
	Description string           `json:"description"`
	ExpiresAt   *time.Time       `json:"expires_at,omitempty"`
}

// NewDiscount validates the resolved amount at construction time.
// A negative amount is rejected, never coerced.
func NewDiscount(id, code string, kind Kind, amount decimal.Decimal, description string, expiresAt *time.Time) (Discount, error) {
	if !kind.Valid() {
		return Discount{}, ErrInvalidKind
	}
	if amount.IsNegative() {
		return Discount{}, ErrInvalidAmount
	}
	return Discount{
		ID:          id,
		Code:        code,
		Kind:        kind,
		Amount:      amount,
		Description: description,
		ExpiresAt:   expiresAt,
	}, nil
}

// Expired reports whether the discount's expiration has passed at the
// given instant. Discounts without an expiration never expire.
func (d Discount) Expired(at time.Time) bool {
	return d.ExpiresAt != nil && d.ExpiresAt.Before(at)
}

// Rule is a promotional catalog entry. Value is interpreted per Kind:
// a raw percentage, a fixed currency amount, or unused for free shipping.
type Rule struct {
	Code        string
	Kind        Kind
	Value       decimal.Decimal
	Description string
	MinSubtotal decimal.Decimal
	ExpiresAt   *time.Time
}
