package curves

import (
	"crypto/elliptic"
	"math/big"

	"github.com/Caqil/ec-core/internal/security"
	"github.com/Caqil/ec-core/pkg/ec"
)

// P256 implements the ec.Curve contract for NIST P-256 on top of the
// standard library's constant-time nistec backend.
type P256 struct{}

var _ ec.Curve = P256{}

var p256Params *ec.CurveParams

func init() {
	p := elliptic.P256().Params()
	a := new(big.Int).Sub(p.P, big.NewInt(3))
	p256Params = &ec.CurveParams{
		Name:    "P-256",
		P:       p.P,
		N:       p.N,
		A:       a,
		B:       p.B,
		Gx:      p.Gx,
		Gy:      p.Gy,
		BitSize: p.BitSize,
	}
}

// Params returns the P-256 domain parameters.
func (P256) Params() *ec.CurveParams {
	return p256Params
}

// FieldAdd returns a+b mod p.
func (P256) FieldAdd(a, b *big.Int) *big.Int {
	return security.ConstantTimeModAdd(a, b, p256Params.P)
}

// FieldSub returns a-b mod p.
func (P256) FieldSub(a, b *big.Int) *big.Int {
	return security.ConstantTimeModSub(a, b, p256Params.P)
}

// FieldMul returns a*b mod p.
func (P256) FieldMul(a, b *big.Int) *big.Int {
	return security.ConstantTimeModMul(a, b, p256Params.P)
}

// FieldInvert returns a^-1 mod p, or ec.ErrUndefinedResult for zero.
func (P256) FieldInvert(a *big.Int) (*big.Int, error) {
	inv := security.ConstantTimeModInv(a, p256Params.P)
	if inv == nil {
		return nil, ec.ErrUndefinedResult
	}
	return inv, nil
}

// IdentityPoint returns the affine sentinel (0, 0) for the point at
// infinity, matching the standard library's convention.
func (P256) IdentityPoint() (*big.Int, *big.Int) {
	return new(big.Int), new(big.Int)
}

func p256IsIdentity(x, y *big.Int) bool {
	return x.Sign() == 0 && y.Sign() == 0
}

// Add returns the group sum of two points. crypto/elliptic already uses
// (0, 0) for infinity on both input and output.
func (P256) Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int) {
	return elliptic.P256().Add(x1, y1, x2, y2)
}

// Double returns 2P.
func (P256) Double(x, y *big.Int) (*big.Int, *big.Int) {
	return elliptic.P256().Double(x, y)
}

// Negate returns the inverse of a point.
func (P256) Negate(x, y *big.Int) (*big.Int, *big.Int) {
	if p256IsIdentity(x, y) {
		return new(big.Int), new(big.Int)
	}
	negY := new(big.Int).Sub(p256Params.P, y)
	return new(big.Int).Set(x), negY
}

// ScalarMult returns k*P for k in [1, n) and a non-identity point P.
func (P256) ScalarMult(x, y, k *big.Int) (*big.Int, *big.Int) {
	return elliptic.P256().ScalarMult(x, y, paddedBytes(k, 32))
}

// ScalarBaseMult returns k*G for k in [1, n).
func (P256) ScalarBaseMult(k *big.Int) (*big.Int, *big.Int) {
	return elliptic.P256().ScalarBaseMult(paddedBytes(k, 32))
}

// IsOnCurve reports whether (x, y) satisfies the curve equation. The
// identity sentinel is conventionally on the curve.
func (P256) IsOnCurve(x, y *big.Int) bool {
	if p256IsIdentity(x, y) {
		return true
	}
	return elliptic.P256().IsOnCurve(x, y)
}

// IsInSubgroup reports whether the point lies in the prime-order group.
// P-256 has cofactor 1, so every curve point qualifies.
func (P256) IsInSubgroup(x, y *big.Int) bool {
	return P256{}.IsOnCurve(x, y)
}

// CompressPoint returns the 33-byte SEC compressed encoding of a
// non-identity point.
func (P256) CompressPoint(x, y *big.Int) []byte {
	return elliptic.MarshalCompressed(elliptic.P256(), x, y)
}

// DecompressPoint recovers the affine point from a 33-byte compressed
// encoding.
func (P256) DecompressPoint(data []byte) (*big.Int, *big.Int, error) {
	x, y := elliptic.UnmarshalCompressed(elliptic.P256(), data)
	if x == nil {
		return nil, nil, &ec.DecodeError{Reason: "invalid P-256 compressed point", Length: len(data)}
	}
	return x, y, nil
}
