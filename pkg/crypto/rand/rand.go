// Package rand provides cryptographically secure random number generation
package rand

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/Caqil/ec-core/internal/security"
)

// Reader is the default cryptographically secure random number generator
var Reader io.Reader = rand.Reader

// GenerateRandomBytes generates n cryptographically secure random bytes
// from the given source (Reader when rng is nil).
func GenerateRandomBytes(rng io.Reader, n int) ([]byte, error) {
	if n <= 0 {
		return nil, ErrInvalidLength
	}
	if rng == nil {
		rng = Reader
	}

	bytes := make([]byte, n)
	if _, err := io.ReadFull(rng, bytes); err != nil {
		return nil, err
	}

	return bytes, nil
}

// Uniform generates a uniformly distributed integer in [0, max) by rejection
// sampling: candidates are drawn at the bit width of max with excess high
// bits masked off, and redrawn until one falls below max. Masking keeps the
// acceptance probability above 1/2, so the expected number of draws is below
// two; rejection (rather than reduction) avoids modulo bias.
func Uniform(rng io.Reader, max *big.Int) (*big.Int, error) {
	if max == nil {
		return nil, ErrNilMax
	}
	if max.Sign() <= 0 {
		return nil, ErrInvalidMax
	}
	if rng == nil {
		rng = Reader
	}

	bitLen := max.BitLen()
	byteLen := (bitLen + 7) / 8
	mask := byte(0xff >> (uint(byteLen*8-bitLen) % 8))

	buf := make([]byte, byteLen)
	for {
		if _, err := io.ReadFull(rng, buf); err != nil {
			return nil, err
		}
		buf[0] &= mask

		v := new(big.Int).SetBytes(buf)
		if v.Cmp(max) < 0 {
			security.SecureZero(buf)
			return v, nil
		}

		// Rejected candidate - wipe it before redrawing.
		security.SecureZero(buf)
	}
}

// GenerateRandomScalar generates a random scalar in range [1, max)
// This is cryptographically secure and uniform
func GenerateRandomScalar(rng io.Reader, max *big.Int) (*big.Int, error) {
	value, err := Uniform(rng, max)
	if err != nil {
		return nil, err
	}

	// Ensure non-zero by regenerating if zero
	// This is still uniform because we're rejecting with probability 1/max
	for value.Sign() == 0 {
		value, err = Uniform(rng, max)
		if err != nil {
			return nil, err
		}
	}

	return value, nil
}
