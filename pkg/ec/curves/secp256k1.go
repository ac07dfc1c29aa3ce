package curves

import (
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"
	secp "github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/Caqil/ec-core/pkg/ec"
)

// Secp256k1 implements the ec.Curve contract for the Bitcoin curve
// y^2 = x^3 + 7 over the secp256k1 prime field. Group operations run on
// btcec's Jacobian arithmetic; field operations use the decred FieldVal
// fixed-width limbs rather than math/big.
type Secp256k1 struct{}

var _ ec.Curve = Secp256k1{}

var secp256k1Params *ec.CurveParams

func init() {
	p := btcec.S256().Params()
	secp256k1Params = &ec.CurveParams{
		Name:    "secp256k1",
		P:       p.P,
		N:       p.N,
		A:       big.NewInt(0),
		B:       p.B,
		Gx:      p.Gx,
		Gy:      p.Gy,
		BitSize: p.BitSize,
	}
}

// Params returns the secp256k1 domain parameters.
func (Secp256k1) Params() *ec.CurveParams {
	return secp256k1Params
}

// secpField reduces v mod p and loads it into a FieldVal.
func secpField(v *big.Int) *secp.FieldVal {
	var f secp.FieldVal
	reduced := new(big.Int).Mod(v, secp256k1Params.P)
	f.SetByteSlice(paddedBytes(reduced, 32))
	return &f
}

func secpFieldToBig(f *secp.FieldVal) *big.Int {
	f.Normalize()
	b := f.Bytes()
	return new(big.Int).SetBytes(b[:])
}

// FieldAdd returns a+b mod p.
func (Secp256k1) FieldAdd(a, b *big.Int) *big.Int {
	f := secpField(a)
	f.Add(secpField(b))
	return secpFieldToBig(f)
}

// FieldSub returns a-b mod p.
func (Secp256k1) FieldSub(a, b *big.Int) *big.Int {
	f := secpField(a)
	f.Add(secpField(b).Negate(1))
	return secpFieldToBig(f)
}

// FieldMul returns a*b mod p.
func (Secp256k1) FieldMul(a, b *big.Int) *big.Int {
	f := secpField(a)
	f.Mul(secpField(b))
	return secpFieldToBig(f)
}

// FieldInvert returns a^-1 mod p, or ec.ErrUndefinedResult for zero.
func (Secp256k1) FieldInvert(a *big.Int) (*big.Int, error) {
	f := secpField(a)
	if f.Normalize().IsZero() {
		return nil, ec.ErrUndefinedResult
	}
	f.Inverse()
	return secpFieldToBig(f), nil
}

// IdentityPoint returns the affine sentinel (0, 0) for the point at
// infinity. The point (0, 0) does not satisfy the curve equation, so the
// sentinel never collides with a real group element.
func (Secp256k1) IdentityPoint() (*big.Int, *big.Int) {
	return new(big.Int), new(big.Int)
}

func secpIsIdentity(x, y *big.Int) bool {
	return x.Sign() == 0 && y.Sign() == 0
}

// secpToJacobian loads an affine point into p. The (0, 0) sentinel maps to
// the all-zero Jacobian point, which btcec already treats as infinity.
func secpToJacobian(p *btcec.JacobianPoint, x, y *big.Int) {
	if secpIsIdentity(x, y) {
		return
	}
	p.X.SetByteSlice(paddedBytes(x, 32))
	p.Y.SetByteSlice(paddedBytes(y, 32))
	p.Z.SetInt(1)
}

func secpFromJacobian(p *btcec.JacobianPoint) (*big.Int, *big.Int) {
	if p.Z.IsZero() || (p.X.IsZero() && p.Y.IsZero()) {
		return new(big.Int), new(big.Int)
	}
	p.ToAffine()
	return secpFieldToBig(&p.X), secpFieldToBig(&p.Y)
}

// Add returns the group sum of two points.
func (Secp256k1) Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int) {
	var p1, p2, sum btcec.JacobianPoint
	secpToJacobian(&p1, x1, y1)
	secpToJacobian(&p2, x2, y2)
	btcec.AddNonConst(&p1, &p2, &sum)
	return secpFromJacobian(&sum)
}

// Double returns 2P.
func (Secp256k1) Double(x, y *big.Int) (*big.Int, *big.Int) {
	var p, sum btcec.JacobianPoint
	secpToJacobian(&p, x, y)
	btcec.DoubleNonConst(&p, &sum)
	return secpFromJacobian(&sum)
}

// Negate returns the inverse of a point.
func (Secp256k1) Negate(x, y *big.Int) (*big.Int, *big.Int) {
	if secpIsIdentity(x, y) {
		return new(big.Int), new(big.Int)
	}
	negY := new(big.Int).Sub(secp256k1Params.P, y)
	return new(big.Int).Set(x), negY
}

// ScalarMult returns k*P for k in [1, n) and a non-identity point P.
func (Secp256k1) ScalarMult(x, y, k *big.Int) (*big.Int, *big.Int) {
	rx, ry := btcec.S256().ScalarMult(x, y, paddedBytes(k, 32))
	return rx, ry
}

// ScalarBaseMult returns k*G for k in [1, n).
func (Secp256k1) ScalarBaseMult(k *big.Int) (*big.Int, *big.Int) {
	_, pubKey := btcec.PrivKeyFromBytes(paddedBytes(k, 32))
	return pubKey.X(), pubKey.Y()
}

// IsOnCurve reports whether (x, y) satisfies the curve equation. The
// identity sentinel is conventionally on the curve.
func (Secp256k1) IsOnCurve(x, y *big.Int) bool {
	if secpIsIdentity(x, y) {
		return true
	}
	return btcec.S256().IsOnCurve(x, y)
}

// IsInSubgroup reports whether the point lies in the prime-order group.
// secp256k1 has cofactor 1, so every curve point qualifies.
func (Secp256k1) IsInSubgroup(x, y *big.Int) bool {
	return Secp256k1{}.IsOnCurve(x, y)
}

// CompressPoint returns the 33-byte SEC compressed encoding of a
// non-identity point.
func (Secp256k1) CompressPoint(x, y *big.Int) []byte {
	var fx, fy secp.FieldVal
	fx.SetByteSlice(paddedBytes(x, 32))
	fy.SetByteSlice(paddedBytes(y, 32))
	return btcec.NewPublicKey(&fx, &fy).SerializeCompressed()
}

// DecompressPoint recovers the affine point from a 33-byte compressed
// encoding.
func (Secp256k1) DecompressPoint(data []byte) (*big.Int, *big.Int, error) {
	pubKey, err := btcec.ParsePubKey(data)
	if err != nil {
		return nil, nil, &ec.DecodeError{Reason: "invalid secp256k1 compressed point: " + err.Error(), Length: len(data)}
	}
	return pubKey.X(), pubKey.Y(), nil
}
