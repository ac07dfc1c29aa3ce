// Package curves provides the bundled implementations of the ec.Curve
// contract. Each curve is a stateless zero-size type whose value methods
// delegate to a vetted arithmetic backend: btcec and the decred field
// implementation for secp256k1, the standard library for NIST P-256, and
// filippo.io/edwards25519 for Edwards25519.
//
// Because generic code instantiates curve values as zero values, every
// method here reads only package-level parameters and must remain safe on
// the zero value.
package curves

import (
	"math/big"
)

// fromHex parses curve constants; it is only used on compile-time values.
func fromHex(s string) *big.Int {
	b, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("invalid hex string: " + s)
	}
	return b
}

// paddedBytes returns the bytes of a big.Int, left-padded to the specified length
func paddedBytes(value *big.Int, length int) []byte {
	bytes := value.Bytes()
	if len(bytes) >= length {
		return bytes[len(bytes)-length:]
	}

	padded := make([]byte, length)
	copy(padded[length-len(bytes):], bytes)
	return padded
}

// reverseBytes returns a copy of b in the opposite byte order. The Edwards
// backend speaks little-endian; the wire formats and math/big speak
// big-endian.
func reverseBytes(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		out[len(b)-1-i] = c
	}
	return out
}
