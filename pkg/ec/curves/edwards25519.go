package curves

import (
	"math/big"

	"filippo.io/edwards25519"
	"filippo.io/edwards25519/field"

	"github.com/Caqil/ec-core/internal/security"
	"github.com/Caqil/ec-core/pkg/ec"
)

// Edwards25519 implements the ec.Curve contract for the twisted Edwards
// curve -x^2 + y^2 = 1 + d*x^2*y^2 over GF(2^255-19). Group and field
// operations run on filippo.io/edwards25519; the contract surface stays
// big-endian affine, so every method converts at the boundary.
type Edwards25519 struct{}

var _ ec.Curve = Edwards25519{}

var (
	ed25519Params *ec.CurveParams

	// edSubgroupScalar holds L-1 in the canonical little-endian form the
	// backend expects, for the subgroup membership check.
	edSubgroupScalar *edwards25519.Scalar
)

func init() {
	p := fromHex("7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffed")
	n := fromHex("1000000000000000000000000000000014def9dea2f79cd65812631a5cf5d3ed")
	d := fromHex("52036cee2b6ffe738cc740797779e89800700a4d4141d8ab75eb4dca135978a3")
	ed25519Params = &ec.CurveParams{
		Name:    "Ed25519",
		P:       p,
		N:       n,
		A:       nil,
		B:       d,
		Gx:      fromHex("216936d3cd6e53fec0a4e231fdd6dc5c692cc7609525a7b2c9562d608f25d51a"),
		Gy:      fromHex("6666666666666666666666666666666666666666666666666666666666666658"),
		BitSize: 255,
	}

	lMinusOne := new(big.Int).Sub(n, big.NewInt(1))
	s, err := new(edwards25519.Scalar).SetCanonicalBytes(reverseBytes(paddedBytes(lMinusOne, 32)))
	if err != nil {
		panic("edwards25519: invalid subgroup scalar: " + err.Error())
	}
	edSubgroupScalar = s
}

// Params returns the Ed25519 domain parameters. A is nil because the curve
// is not in Weierstrass form; B carries the Edwards d constant.
func (Edwards25519) Params() *ec.CurveParams {
	return ed25519Params
}

// edField reduces v mod p and loads it into a field element.
func edField(v *big.Int) *field.Element {
	reduced := new(big.Int).Mod(v, ed25519Params.P)
	fe, err := new(field.Element).SetBytes(reverseBytes(paddedBytes(reduced, 32)))
	if err != nil {
		panic("edwards25519: reduced field element out of range")
	}
	return fe
}

func edFieldToBig(fe *field.Element) *big.Int {
	return new(big.Int).SetBytes(reverseBytes(fe.Bytes()))
}

// FieldAdd returns a+b mod p.
func (Edwards25519) FieldAdd(a, b *big.Int) *big.Int {
	var out field.Element
	out.Add(edField(a), edField(b))
	return edFieldToBig(&out)
}

// FieldSub returns a-b mod p.
func (Edwards25519) FieldSub(a, b *big.Int) *big.Int {
	var out field.Element
	out.Subtract(edField(a), edField(b))
	return edFieldToBig(&out)
}

// FieldMul returns a*b mod p.
func (Edwards25519) FieldMul(a, b *big.Int) *big.Int {
	var out field.Element
	out.Multiply(edField(a), edField(b))
	return edFieldToBig(&out)
}

// FieldInvert returns a^-1 mod p, or ec.ErrUndefinedResult for zero.
func (Edwards25519) FieldInvert(a *big.Int) (*big.Int, error) {
	fe := edField(a)
	if fe.Equal(new(field.Element)) == 1 {
		return nil, ec.ErrUndefinedResult
	}
	var out field.Element
	out.Invert(fe)
	return edFieldToBig(&out), nil
}

// IdentityPoint returns (0, 1), the true neutral element of the Edwards
// group. Unlike the Weierstrass curves, the identity is an ordinary affine
// point here.
func (Edwards25519) IdentityPoint() (*big.Int, *big.Int) {
	return new(big.Int), big.NewInt(1)
}

// edPoint loads an affine point into the backend representation via its
// compressed form: little-endian y with the parity of x in the sign bit.
// Inputs are trusted to be valid curve points.
func edPoint(x, y *big.Int) *edwards25519.Point {
	buf := reverseBytes(paddedBytes(y, 32))
	if x.Bit(0) == 1 {
		buf[31] |= 0x80
	}
	p, err := new(edwards25519.Point).SetBytes(buf)
	if err != nil {
		// Unreachable for points that passed IsOnCurve.
		return edwards25519.NewIdentityPoint()
	}
	return p
}

func edPointToAffine(p *edwards25519.Point) (*big.Int, *big.Int) {
	ex, ey, ez, _ := p.ExtendedCoordinates()
	var zInv, ax, ay field.Element
	zInv.Invert(ez)
	ax.Multiply(ex, &zInv)
	ay.Multiply(ey, &zInv)
	return edFieldToBig(&ax), edFieldToBig(&ay)
}

// Add returns the group sum of two points.
func (Edwards25519) Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int) {
	var sum edwards25519.Point
	sum.Add(edPoint(x1, y1), edPoint(x2, y2))
	return edPointToAffine(&sum)
}

// Double returns 2P.
func (Edwards25519) Double(x, y *big.Int) (*big.Int, *big.Int) {
	p := edPoint(x, y)
	var sum edwards25519.Point
	sum.Add(p, p)
	return edPointToAffine(&sum)
}

// Negate returns the inverse of a point, (-x, y).
func (Edwards25519) Negate(x, y *big.Int) (*big.Int, *big.Int) {
	negX := new(big.Int).Mod(new(big.Int).Neg(x), ed25519Params.P)
	return negX, new(big.Int).Set(y)
}

func edScalar(k *big.Int) *edwards25519.Scalar {
	reduced := new(big.Int).Mod(k, ed25519Params.N)
	s, err := new(edwards25519.Scalar).SetCanonicalBytes(reverseBytes(paddedBytes(reduced, 32)))
	if err != nil {
		panic("edwards25519: reduced scalar out of range")
	}
	return s
}

// ScalarMult returns k*P for k in [1, L) and a non-identity point P.
func (Edwards25519) ScalarMult(x, y, k *big.Int) (*big.Int, *big.Int) {
	var out edwards25519.Point
	out.ScalarMult(edScalar(k), edPoint(x, y))
	return edPointToAffine(&out)
}

// ScalarBaseMult returns k*B for k in [1, L).
func (Edwards25519) ScalarBaseMult(k *big.Int) (*big.Int, *big.Int) {
	var out edwards25519.Point
	out.ScalarBaseMult(edScalar(k))
	return edPointToAffine(&out)
}

// IsOnCurve reports whether (x, y) satisfies -x^2 + y^2 = 1 + d*x^2*y^2.
// The identity (0, 1) satisfies the equation directly.
func (Edwards25519) IsOnCurve(x, y *big.Int) bool {
	if x.Sign() < 0 || x.Cmp(ed25519Params.P) >= 0 ||
		y.Sign() < 0 || y.Cmp(ed25519Params.P) >= 0 {
		return false
	}
	var x2, y2, lhs, rhs field.Element
	fx, fy := edField(x), edField(y)
	x2.Multiply(fx, fx)
	y2.Multiply(fy, fy)
	lhs.Subtract(&y2, &x2)

	var dx2y2 field.Element
	dx2y2.Multiply(edField(ed25519Params.B), &x2)
	dx2y2.Multiply(&dx2y2, &y2)
	rhs.Add(edField(big.NewInt(1)), &dx2y2)

	return lhs.Equal(&rhs) == 1
}

// IsInSubgroup reports whether the point lies in the prime-order subgroup
// generated by the base point. Ed25519 has cofactor 8, so small-torsion
// components exist and [L-1]P + P must come back to the identity.
func (Edwards25519) IsInSubgroup(x, y *big.Int) bool {
	if !(Edwards25519{}).IsOnCurve(x, y) {
		return false
	}
	p := edPoint(x, y)
	var check edwards25519.Point
	check.ScalarMult(edSubgroupScalar, p)
	check.Add(&check, p)
	return check.Equal(edwards25519.NewIdentityPoint()) == 1
}

// CompressPoint returns the 33-byte encoding with the parity of x in the
// tag byte and y in big-endian, matching the layout of the Weierstrass
// curves.
func (Edwards25519) CompressPoint(x, y *big.Int) []byte {
	out := make([]byte, 33)
	out[0] = 0x02 | byte(security.ConstantTimeIsOdd(x))
	y.FillBytes(out[1:])
	return out
}

// DecompressPoint recovers the affine point from a 33-byte compressed
// encoding.
func (Edwards25519) DecompressPoint(data []byte) (*big.Int, *big.Int, error) {
	if len(data) != 33 || (data[0] != 0x02 && data[0] != 0x03) {
		return nil, nil, &ec.DecodeError{Reason: "invalid Ed25519 compressed point", Length: len(data)}
	}
	y := new(big.Int).SetBytes(data[1:])
	if y.Cmp(ed25519Params.P) >= 0 {
		return nil, nil, &ec.DecodeError{Reason: "Ed25519 y coordinate out of range", Length: len(data)}
	}

	buf := reverseBytes(paddedBytes(y, 32))
	if data[0]&1 == 1 {
		buf[31] |= 0x80
	}
	p, err := new(edwards25519.Point).SetBytes(buf)
	if err != nil {
		return nil, nil, &ec.DecodeError{Reason: "Ed25519 point not on curve", Length: len(data)}
	}
	px, py := edPointToAffine(p)
	return px, py, nil
}
