package promo

import "errors"

var (
	// -- Validation & Input --
	ErrInvalidKind   = errors.New("invalid discount kind")
	ErrInvalidAmount = errors.New("discount amount must not be negative")

	// -- Resource State --
	ErrCodeNotFound      = errors.New("promo code not found")
	ErrCodeExpired       = errors.New("promo code expired")
	ErrMinSubtotalNotMet = errors.New("cart subtotal below promo minimum")
)
