package order

import "errors"

var (
	// -- Resource State --
	ErrOrderNotFound  = errors.New("order not found")
	ErrCartEmpty      = errors.New("cart is empty")
	ErrNotCancellable = errors.New("order is not eligible for cancellation")

	// -- Authentication/Authorization --
	ErrUnauthorized = errors.New("unauthorized")

	// -- Validation & Input --
	ErrInvalidStatus       = errors.New("invalid order status")
	ErrPickupStoreNotFound = errors.New("pickup store not found")
)
