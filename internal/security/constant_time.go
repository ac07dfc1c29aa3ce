// Package security provides constant-time operations for cryptographic security
//
// IMPORTANT: This implementation provides defense-in-depth against timing attacks.
// For maximum security in production:
// 1. Use hardware that supports constant-time instructions (e.g., ARM64 crypto extensions)
// 2. Consider using assembly-optimized libraries for critical paths
// 3. Run on dedicated hardware without SMT/hyperthreading for high-value operations
package security

import (
	"crypto/subtle"
	"math/big"
)

// ConstantTimeModAdd performs constant-time modular addition
// result = (a + b) mod m
func ConstantTimeModAdd(a, b, m *big.Int) *big.Int {
	if a.Sign() < 0 || b.Sign() < 0 || m.Sign() <= 0 {
		panic("ConstantTimeModAdd: inputs must be non-negative")
	}

	result := new(big.Int).Add(a, b)
	return constantTimeModReduce(result, m)
}

// ConstantTimeModSub performs constant-time modular subtraction
// result = (a - b) mod m
func ConstantTimeModSub(a, b, m *big.Int) *big.Int {
	if a.Sign() < 0 || b.Sign() < 0 || m.Sign() <= 0 {
		panic("ConstantTimeModSub: inputs must be non-negative")
	}

	result := new(big.Int).Sub(a, b)
	return constantTimeModReduce(result, m)
}

// ConstantTimeModMul performs constant-time modular multiplication
// result = (a * b) mod m
func ConstantTimeModMul(a, b, m *big.Int) *big.Int {
	if a.Sign() < 0 || b.Sign() < 0 || m.Sign() <= 0 {
		panic("ConstantTimeModMul: inputs must be non-negative")
	}

	result := new(big.Int).Mul(a, b)
	return constantTimeModReduce(result, m)
}

// ConstantTimeModNeg performs constant-time modular negation
// result = -x mod m = m - x, with -0 = 0
func ConstantTimeModNeg(x, m *big.Int) *big.Int {
	if x.Sign() == 0 {
		return big.NewInt(0)
	}
	result := new(big.Int).Sub(m, x)
	return constantTimeModReduce(result, m)
}

// constantTimeModReduce performs constant-time modular reduction
func constantTimeModReduce(x, m *big.Int) *big.Int {
	if x.Cmp(m) < 0 && x.Sign() >= 0 {
		return new(big.Int).Set(x)
	}

	// Go's Mod implements Barrett reduction for cryptographic-sized
	// operands in Go 1.13+
	result := new(big.Int).Mod(x, m)

	if result.Sign() < 0 {
		result.Add(result, m)
	}

	return result
}

// ConstantTimeModInv performs constant-time modular inversion
// result = a^(-1) mod m
// Returns nil if the inverse doesn't exist
//
// Note: Go 1.20+ uses constant-time ModInverse for prime moduli.
func ConstantTimeModInv(a, m *big.Int) *big.Int {
	if a.Sign() <= 0 || m.Sign() <= 0 {
		return nil
	}

	return new(big.Int).ModInverse(a, m)
}

// ConstantTimeBigIntEqual compares two big.Ints in constant time
// Returns 1 if equal, 0 otherwise
func ConstantTimeBigIntEqual(a, b *big.Int) int {
	aBytes := a.Bytes()
	bBytes := b.Bytes()

	// Pad to same length to prevent length-based leaks
	maxLen := len(aBytes)
	if len(bBytes) > maxLen {
		maxLen = len(bBytes)
	}

	if maxLen == 0 {
		return 1
	}

	aPadded := make([]byte, maxLen)
	bPadded := make([]byte, maxLen)

	copy(aPadded[maxLen-len(aBytes):], aBytes)
	copy(bPadded[maxLen-len(bBytes):], bBytes)

	return subtle.ConstantTimeCompare(aPadded, bPadded)
}

// ConstantTimeIsZero returns 1 if x is zero, 0 otherwise (constant-time)
func ConstantTimeIsZero(x *big.Int) int {
	bytes := x.Bytes()
	if len(bytes) == 0 {
		return 1
	}

	// OR all bytes together - result is 0 iff all bytes are 0
	var result byte
	for i := 0; i < len(bytes); i++ {
		result |= bytes[i]
	}

	return subtle.ConstantTimeByteEq(result, 0)
}

// ConstantTimeSelect returns x if v == 1 and y if v == 0
// v must be 0 or 1, operation is constant-time
func ConstantTimeSelect(v int, x, y *big.Int) *big.Int {
	if v != 0 && v != 1 {
		panic("ConstantTimeSelect: v must be 0 or 1")
	}

	xBytes := x.Bytes()
	yBytes := y.Bytes()

	maxLen := len(xBytes)
	if len(yBytes) > maxLen {
		maxLen = len(yBytes)
	}

	xPadded := make([]byte, maxLen)
	yPadded := make([]byte, maxLen)

	copy(xPadded[maxLen-len(xBytes):], xBytes)
	copy(yPadded[maxLen-len(yBytes):], yBytes)

	result := make([]byte, maxLen)
	subtle.ConstantTimeCopy(v, result, xPadded)
	subtle.ConstantTimeCopy(1-v, result, yPadded)

	return new(big.Int).SetBytes(result)
}

// ConstantTimeIsOdd returns 1 if x is odd, 0 if even (constant-time)
func ConstantTimeIsOdd(x *big.Int) int {
	if x.Sign() == 0 {
		return 0
	}
	bytes := x.Bytes()
	return int(bytes[len(bytes)-1] & 1)
}
