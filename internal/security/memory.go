// Package security provides security utilities for protecting sensitive data
package security

import (
	"crypto/subtle"
	"runtime"
)

// SecureZero securely zeros out a byte slice to prevent secrets from remaining in memory
// This uses a method that prevents the compiler from optimizing away the zeroing
func SecureZero(data []byte) {
	if len(data) == 0 {
		return
	}

	// Use subtle.ConstantTimeCopy to ensure compiler doesn't optimize away
	zeros := make([]byte, len(data))
	subtle.ConstantTimeCopy(1, data, zeros)

	// Force a memory barrier
	runtime.KeepAlive(data)
}

// ConstantTimeCompare compares two byte slices in constant time
// Returns true if they are equal, false otherwise
func ConstantTimeCompare(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
