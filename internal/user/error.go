package user

import "errors"

var (
	// -- Resource State --
	ErrUserNotFound = errors.New("user not found")

	// -- Validation & Input --
	ErrInvalidPointAmount = errors.New("point amount must not be negative")
	ErrInsufficientPoints = errors.New("insufficient loyalty points")
)
