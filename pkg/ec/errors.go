package ec

import (
	"errors"
	"fmt"
)

var (
	// ErrUndefinedResult is returned when an operation has no well-defined
	// group-theoretic result, such as inverting the zero scalar
	ErrUndefinedResult = errors.New("operation has no defined result")

	// ErrInvalidPoint is returned when coordinates do not describe a point
	// on the curve in the prime-order subgroup
	ErrInvalidPoint = errors.New("invalid point: not on curve or not in subgroup")
)

// DecodeError reports malformed, wrong-length, or off-curve bytes passed to
// a decoder. It is a plain value to branch on, never a fatal condition:
// untrusted network bytes are a primary decode input. Match with errors.As.
type DecodeError struct {
	// Reason describes why the bytes were rejected
	Reason string

	// Length is the byte length of the rejected input
	Length int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode failed: %s (input length %d)", e.Reason, e.Length)
}

func newDecodeError(reason string, length int) *DecodeError {
	return &DecodeError{Reason: reason, Length: length}
}
