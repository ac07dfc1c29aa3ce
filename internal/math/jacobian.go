package math

import "math/big"

// This file operates, internally, on Jacobian coordinates. For a given
// (x, y) position on the curve, the Jacobian coordinates are (X, Y, Z)
// where x = X/Z² and y = Y/Z³. Long chains of additions and doublings stay
// inside the transform, deferring the expensive field inversion until the
// final conversion back to affine - which ToAffineBatch amortizes further by
// inverting all Z coordinates with a single BatchModInverse call.

// Weierstrass performs generic group arithmetic on a short Weierstrass curve
// y² = x³ + ax + b over the prime field of modulus p. Only p and a are
// needed for the addition and doubling formulas.
type Weierstrass struct {
	P *big.Int
	A *big.Int
}

// JacobianPoint is a point in Jacobian projective coordinates.
// The point at infinity has Z = 0.
type JacobianPoint struct {
	X, Y, Z *big.Int
}

// NewWeierstrass creates an arithmetic context for the curve with field
// modulus p and linear coefficient a (reduced into [0, p)).
func NewWeierstrass(p, a *big.Int) *Weierstrass {
	return &Weierstrass{
		P: new(big.Int).Set(p),
		A: new(big.Int).Mod(a, p),
	}
}

// Infinity returns the point at infinity.
func (w *Weierstrass) Infinity() JacobianPoint {
	return JacobianPoint{X: new(big.Int), Y: new(big.Int), Z: new(big.Int)}
}

// IsInfinity reports whether jp is the point at infinity.
func (jp JacobianPoint) IsInfinity() bool {
	return jp.Z.Sign() == 0
}

// FromAffine lifts an affine point into Jacobian coordinates. The affine
// pair (0, 0) is taken to represent the point at infinity; it is not a
// solution of the curve equation for any curve handled here.
func (w *Weierstrass) FromAffine(x, y *big.Int) JacobianPoint {
	if x.Sign() == 0 && y.Sign() == 0 {
		return w.Infinity()
	}
	return JacobianPoint{
		X: new(big.Int).Set(x),
		Y: new(big.Int).Set(y),
		Z: big.NewInt(1),
	}
}

// Add returns p1 + p2.
func (w *Weierstrass) Add(p1, p2 JacobianPoint) JacobianPoint {
	// See https://hyperelliptic.org/EFD/g1p/auto-shortw-jacobian.html#addition-add-2007-bl
	if p1.IsInfinity() {
		return JacobianPoint{X: new(big.Int).Set(p2.X), Y: new(big.Int).Set(p2.Y), Z: new(big.Int).Set(p2.Z)}
	}
	if p2.IsInfinity() {
		return JacobianPoint{X: new(big.Int).Set(p1.X), Y: new(big.Int).Set(p1.Y), Z: new(big.Int).Set(p1.Z)}
	}

	p := w.P

	z1z1 := new(big.Int).Mul(p1.Z, p1.Z)
	z1z1.Mod(z1z1, p)
	z2z2 := new(big.Int).Mul(p2.Z, p2.Z)
	z2z2.Mod(z2z2, p)

	u1 := new(big.Int).Mul(p1.X, z2z2)
	u1.Mod(u1, p)
	u2 := new(big.Int).Mul(p2.X, z1z1)
	u2.Mod(u2, p)
	h := new(big.Int).Sub(u2, u1)
	xEqual := h.Sign() == 0
	if h.Sign() == -1 {
		h.Add(h, p)
	}
	i := new(big.Int).Lsh(h, 1)
	i.Mul(i, i)
	j := new(big.Int).Mul(h, i)

	s1 := new(big.Int).Mul(p1.Y, p2.Z)
	s1.Mul(s1, z2z2)
	s1.Mod(s1, p)
	s2 := new(big.Int).Mul(p2.Y, p1.Z)
	s2.Mul(s2, z1z1)
	s2.Mod(s2, p)
	r := new(big.Int).Sub(s2, s1)
	if r.Sign() == -1 {
		r.Add(r, p)
	}
	yEqual := r.Sign() == 0
	if xEqual && yEqual {
		return w.Double(p1)
	}
	if xEqual {
		// p1 = -p2
		return w.Infinity()
	}
	r.Lsh(r, 1)
	v := new(big.Int).Mul(u1, i)

	x3 := new(big.Int).Set(r)
	x3.Mul(x3, x3)
	x3.Sub(x3, j)
	x3.Sub(x3, v)
	x3.Sub(x3, v)
	x3.Mod(x3, p)

	y3 := new(big.Int).Set(r)
	v.Sub(v, x3)
	y3.Mul(y3, v)
	s1.Mul(s1, j)
	s1.Lsh(s1, 1)
	y3.Sub(y3, s1)
	y3.Mod(y3, p)

	z3 := new(big.Int).Add(p1.Z, p2.Z)
	z3.Mul(z3, z3)
	z3.Sub(z3, z1z1)
	z3.Sub(z3, z2z2)
	z3.Mul(z3, h)
	z3.Mod(z3, p)

	return JacobianPoint{X: x3, Y: y3, Z: z3}
}

// Double returns 2*jp.
func (w *Weierstrass) Double(jp JacobianPoint) JacobianPoint {
	// See https://hyperelliptic.org/EFD/g1p/auto-shortw-jacobian.html#doubling-dbl-2007-bl
	if jp.IsInfinity() || jp.Y.Sign() == 0 {
		// Doubling a two-torsion point lands on the point at infinity.
		return w.Infinity()
	}

	p := w.P

	xx := new(big.Int).Mul(jp.X, jp.X)
	xx.Mod(xx, p)
	yy := new(big.Int).Mul(jp.Y, jp.Y)
	yy.Mod(yy, p)
	yyyy := new(big.Int).Mul(yy, yy)
	yyyy.Mod(yyyy, p)
	zz := new(big.Int).Mul(jp.Z, jp.Z)
	zz.Mod(zz, p)

	// s = 2*((x+yy)² - xx - yyyy)
	s := new(big.Int).Add(jp.X, yy)
	s.Mul(s, s)
	s.Sub(s, xx)
	s.Sub(s, yyyy)
	s.Lsh(s, 1)
	s.Mod(s, p)

	// m = 3*xx + a*zz²
	m := new(big.Int).Lsh(xx, 1)
	m.Add(m, xx)
	if w.A.Sign() != 0 {
		azz := new(big.Int).Mul(zz, zz)
		azz.Mul(azz, w.A)
		m.Add(m, azz)
	}
	m.Mod(m, p)

	// x3 = m² - 2*s
	x3 := new(big.Int).Mul(m, m)
	x3.Sub(x3, s)
	x3.Sub(x3, s)
	x3.Mod(x3, p)

	// y3 = m*(s - x3) - 8*yyyy
	y3 := new(big.Int).Sub(s, x3)
	y3.Mul(y3, m)
	yyyy.Lsh(yyyy, 3)
	y3.Sub(y3, yyyy)
	y3.Mod(y3, p)

	// z3 = (y+z)² - yy - zz = 2*y*z
	z3 := new(big.Int).Add(jp.Y, jp.Z)
	z3.Mul(z3, z3)
	z3.Sub(z3, yy)
	z3.Sub(z3, zz)
	z3.Mod(z3, p)

	return JacobianPoint{X: x3, Y: y3, Z: z3}
}

// ToAffine reverses the Jacobian transform. The point at infinity maps to
// the affine pair (0, 0).
func (w *Weierstrass) ToAffine(jp JacobianPoint) (*big.Int, *big.Int) {
	if jp.IsInfinity() {
		return new(big.Int), new(big.Int)
	}

	zinv := new(big.Int).ModInverse(jp.Z, w.P)
	return w.affineWithZInv(jp, zinv)
}

// ToAffineBatch converts many Jacobian points to affine form using a single
// field inversion for all nonzero Z coordinates. Points at infinity map to
// (0, 0). Output order matches input order.
func (w *Weierstrass) ToAffineBatch(pts []JacobianPoint) ([]*big.Int, []*big.Int, error) {
	xs := make([]*big.Int, len(pts))
	ys := make([]*big.Int, len(pts))

	zs := make([]*big.Int, 0, len(pts))
	idx := make([]int, 0, len(pts))
	for i, jp := range pts {
		if jp.IsInfinity() {
			xs[i] = new(big.Int)
			ys[i] = new(big.Int)
			continue
		}
		zs = append(zs, jp.Z)
		idx = append(idx, i)
	}

	zinvs, err := BatchModInverse(zs, w.P)
	if err != nil {
		return nil, nil, err
	}

	for k, i := range idx {
		xs[i], ys[i] = w.affineWithZInv(pts[i], zinvs[k])
	}
	return xs, ys, nil
}

func (w *Weierstrass) affineWithZInv(jp JacobianPoint, zinv *big.Int) (*big.Int, *big.Int) {
	zinvsq := new(big.Int).Mul(zinv, zinv)
	zinvsq.Mod(zinvsq, w.P)

	x := new(big.Int).Mul(jp.X, zinvsq)
	x.Mod(x, w.P)

	zinvsq.Mul(zinvsq, zinv)
	y := new(big.Int).Mul(jp.Y, zinvsq)
	y.Mod(y, w.P)

	return x, y
}
