// Package ec implements curve-generic elliptic curve group arithmetic for
// higher-level cryptographic protocols. Scalar and Point are generic over
// the Curve contract, so values from two different curves can never be mixed:
// a Scalar[curves.Secp256k1] does not type-check where a
// Scalar[curves.P256] is expected.
//
// All implementations are expected to use constant-time operations to
// prevent timing attacks; every component above the contract inherits the
// timing profile of the curve it is instantiated with.
package ec

import "math/big"

// Curve defines the contract every concrete elliptic curve must satisfy.
// Implementations are stateless value types: generic code instantiates the
// zero value and calls methods on it, so a method must never depend on
// per-instance state.
//
// Points cross the contract boundary as affine coordinate pairs. Each curve
// family designates a fixed affine sentinel for the identity element,
// reported by IdentityPoint; implementations are free to use any internal
// coordinate system (Jacobian, extended) as long as inputs and outputs are
// normalized affine values.
type Curve interface {
	// Params returns the curve parameters
	Params() *CurveParams

	// FieldAdd computes a + b in the prime field of modulus P
	FieldAdd(a, b *big.Int) *big.Int

	// FieldSub computes a - b in the prime field of modulus P
	FieldSub(a, b *big.Int) *big.Int

	// FieldMul computes a * b in the prime field of modulus P
	FieldMul(a, b *big.Int) *big.Int

	// FieldInvert computes a^-1 in the prime field of modulus P.
	// It fails with ErrUndefinedResult when a is congruent to zero.
	FieldInvert(a *big.Int) (*big.Int, error)

	// IdentityPoint returns the affine sentinel for the identity element
	IdentityPoint() (*big.Int, *big.Int)

	// Add computes P1 + P2. Both operands and the result may be the
	// identity sentinel.
	Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int)

	// Double computes 2*P
	Double(x1, y1 *big.Int) (*big.Int, *big.Int)

	// Negate computes -P
	Negate(x1, y1 *big.Int) (*big.Int, *big.Int)

	// ScalarMult computes k*P for k in [1, N) and P not the identity;
	// callers handle the zero scalar and the identity point
	ScalarMult(x1, y1, k *big.Int) (*big.Int, *big.Int)

	// ScalarBaseMult computes k*G for k in [1, N), where G is the generator
	ScalarBaseMult(k *big.Int) (*big.Int, *big.Int)

	// IsOnCurve verifies the curve equation; the identity sentinel
	// reports true
	IsOnCurve(x, y *big.Int) bool

	// IsInSubgroup verifies membership in the prime-order subgroup for a
	// point already known to be on the curve
	IsInSubgroup(x, y *big.Int) bool

	// CompressPoint encodes a non-identity point as a parity tag byte
	// followed by a single fixed-width coordinate
	CompressPoint(x, y *big.Int) []byte

	// DecompressPoint decodes the CompressPoint form, recovering the
	// omitted coordinate from the curve equation
	DecompressPoint(data []byte) (*big.Int, *big.Int, error)
}

// CurveParams contains the parameters of an elliptic curve
type CurveParams struct {
	// Name of the curve
	Name string

	// P is the prime field modulus
	P *big.Int

	// N is the order of the base point
	N *big.Int

	// A is the linear coefficient of a short Weierstrass equation
	// y² = x³ + Ax + B. It is nil for Edwards curves, which signals the
	// multiscalar engine to avoid the Weierstrass fast path.
	A *big.Int

	// B is the constant of the curve equation. For Edwards curves it
	// holds the d constant instead.
	B *big.Int

	// Gx, Gy are the coordinates of the generator
	Gx, Gy *big.Int

	// BitSize is the size of the field in bits
	BitSize int
}

// FieldSize returns the byte width of a field coordinate encoding.
func (p *CurveParams) FieldSize() int {
	return (p.P.BitLen() + 7) / 8
}

// ScalarSize returns the byte width of a canonical scalar encoding.
func (p *CurveParams) ScalarSize() int {
	return (p.N.BitLen() + 7) / 8
}

// curveOf returns the (stateless) contract implementation for C.
func curveOf[C Curve]() C {
	var c C
	return c
}
