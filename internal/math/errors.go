package math

import "errors"

var (
	// ErrInvalidModulus is returned when modulus is invalid
	ErrInvalidModulus = errors.New("modulus must be positive")

	// ErrNoInverse is returned when a value has no modular inverse
	ErrNoInverse = errors.New("value has no modular inverse")

	// ErrNilValue is returned when a nil value is provided
	ErrNilValue = errors.New("value cannot be nil")
)
