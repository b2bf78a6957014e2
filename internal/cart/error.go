package cart

import "errors"

var (
	// -- Validation & Input --
	ErrInvalidQuantity      = errors.New("invalid cart quantity")
	ErrInvalidPrice         = errors.New("unit price must not be negative")
	ErrInvalidOriginalPrice = errors.New("original price must not be below unit price")
	ErrUserRequired         = errors.New("user ID is required")

	// -- Resource State --
	ErrCartNotFound       = errors.New("cart not found")
	ErrItemNotFound       = errors.New("cart item not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrCodeAlreadyApplied = errors.New("promo code already applied")
)
