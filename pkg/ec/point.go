package ec

import "math/big"

// Point is a group element of curve C, held in normalized affine
// coordinates. The zero value is the identity element. Points are immutable;
// operations return fresh values.
//
// Every live Point satisfies the curve equation and lies in the prime-order
// subgroup: the constructors validate untrusted coordinates and the group
// operations are closed over the subgroup.
type Point[C Curve] struct {
	x, y *big.Int
}

// Identity returns the identity element of the group.
func Identity[C Curve]() Point[C] {
	ix, iy := curveOf[C]().IdentityPoint()
	return Point[C]{x: ix, y: iy}
}

// Generator returns the base point G.
func Generator[C Curve]() Point[C] {
	params := curveOf[C]().Params()
	return Point[C]{
		x: new(big.Int).Set(params.Gx),
		y: new(big.Int).Set(params.Gy),
	}
}

// NewPoint constructs a point from affine coordinates, validating that they
// lie on the curve and in the prime-order subgroup. The curve's identity
// sentinel constructs the identity element. Invalid coordinates fail with
// ErrInvalidPoint.
func NewPoint[C Curve](x, y *big.Int) (Point[C], error) {
	if x == nil || y == nil {
		return Point[C]{}, ErrInvalidPoint
	}

	c := curveOf[C]()
	ix, iy := c.IdentityPoint()
	if x.Cmp(ix) == 0 && y.Cmp(iy) == 0 {
		return Identity[C](), nil
	}

	if !c.IsOnCurve(x, y) || !c.IsInSubgroup(x, y) {
		return Point[C]{}, ErrInvalidPoint
	}

	return Point[C]{
		x: new(big.Int).Set(x),
		y: new(big.Int).Set(y),
	}, nil
}

// BaseMul computes k*G for the curve generator G.
func BaseMul[C Curve](k Scalar[C]) Point[C] {
	if k.IsZero() {
		return Identity[C]()
	}
	x, y := curveOf[C]().ScalarBaseMult(k.value())
	return Point[C]{x: x, y: y}
}

// coords returns the affine coordinates, normalizing the zero value of the
// type to the identity sentinel. Callers must not mutate the results.
func (p Point[C]) coords() (*big.Int, *big.Int) {
	if p.x == nil || p.y == nil {
		return curveOf[C]().IdentityPoint()
	}
	return p.x, p.y
}

// Add computes p + q
func (p Point[C]) Add(q Point[C]) Point[C] {
	px, py := p.coords()
	qx, qy := q.coords()
	x, y := curveOf[C]().Add(px, py, qx, qy)
	return Point[C]{x: x, y: y}
}

// Double computes 2*p
func (p Point[C]) Double() Point[C] {
	px, py := p.coords()
	x, y := curveOf[C]().Double(px, py)
	return Point[C]{x: x, y: y}
}

// Negate computes -p
func (p Point[C]) Negate() Point[C] {
	px, py := p.coords()
	x, y := curveOf[C]().Negate(px, py)
	return Point[C]{x: x, y: y}
}

// Mul computes k*p. Multiplying by the zero scalar or multiplying the
// identity yields the identity.
func (p Point[C]) Mul(k Scalar[C]) Point[C] {
	if k.IsZero() || p.IsIdentity() {
		return Identity[C]()
	}
	px, py := p.coords()
	x, y := curveOf[C]().ScalarMult(px, py, k.value())
	return Point[C]{x: x, y: y}
}

// IsIdentity reports whether p is the identity element.
func (p Point[C]) IsIdentity() bool {
	px, py := p.coords()
	ix, iy := curveOf[C]().IdentityPoint()
	return px.Cmp(ix) == 0 && py.Cmp(iy) == 0
}

// Equal reports whether two points are equal. Coordinates are always held
// in normalized affine form, so structural comparison is independent of any
// internal coordinate system a curve implementation may use.
func (p Point[C]) Equal(q Point[C]) bool {
	px, py := p.coords()
	qx, qy := q.coords()
	return px.Cmp(qx) == 0 && py.Cmp(qy) == 0
}

// X returns a copy of the affine x-coordinate.
func (p Point[C]) X() *big.Int {
	px, _ := p.coords()
	return new(big.Int).Set(px)
}

// Y returns a copy of the affine y-coordinate.
func (p Point[C]) Y() *big.Int {
	_, py := p.coords()
	return new(big.Int).Set(py)
}
