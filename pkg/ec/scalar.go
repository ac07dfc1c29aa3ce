package ec

import (
	"crypto/sha256"
	"io"
	"math/big"

	"golang.org/x/crypto/hkdf"

	"github.com/Caqil/ec-core/internal/security"
	"github.com/Caqil/ec-core/pkg/crypto/rand"
)

// Scalar is a field element modulo the group order N of curve C. The
// internal representative is always the unique value in [0, N); operations
// return fresh values and never mutate their receiver. The zero value is the
// zero scalar.
type Scalar[C Curve] struct {
	v *big.Int
}

// NewScalar creates a scalar from an integer, reduced modulo the group
// order. A nil input yields the zero scalar.
func NewScalar[C Curve](value *big.Int) Scalar[C] {
	if value == nil {
		return Scalar[C]{v: new(big.Int)}
	}
	n := curveOf[C]().Params().N
	return Scalar[C]{v: new(big.Int).Mod(value, n)}
}

// ZeroScalar returns the additive identity.
func ZeroScalar[C Curve]() Scalar[C] {
	return Scalar[C]{v: new(big.Int)}
}

// OneScalar returns the multiplicative identity.
func OneScalar[C Curve]() Scalar[C] {
	return Scalar[C]{v: big.NewInt(1)}
}

// ScalarFromBytesBE creates a scalar from big-endian bytes of any length,
// reduced modulo the group order. It never fails.
func ScalarFromBytesBE[C Curve](b []byte) Scalar[C] {
	return NewScalar[C](new(big.Int).SetBytes(b))
}

// ScalarFromBytesLE creates a scalar from little-endian bytes of any length,
// reduced modulo the group order. It never fails.
func ScalarFromBytesLE[C Curve](b []byte) Scalar[C] {
	rev := make([]byte, len(b))
	for i, c := range b {
		rev[len(b)-1-i] = c
	}
	s := NewScalar[C](new(big.Int).SetBytes(rev))
	security.SecureZero(rev)
	return s
}

// RandomScalar generates a scalar uniformly distributed over [0, N) by
// rejection sampling against the supplied random source (rand.Reader when
// rng is nil). The source is consumed sequentially and must not be shared
// across concurrent calls without external synchronization.
func RandomScalar[C Curve](rng io.Reader) (Scalar[C], error) {
	n := curveOf[C]().Params().N
	v, err := rand.Uniform(rng, n)
	if err != nil {
		return Scalar[C]{}, err
	}
	return Scalar[C]{v: v}, nil
}

// DeriveScalar deterministically derives a scalar from secret key material
// using HKDF-SHA256. The output is expanded 16 bytes past the scalar width
// before reduction, keeping the modulo bias below 2^-128.
func DeriveScalar[C Curve](secret, salt, info []byte) (Scalar[C], error) {
	size := curveOf[C]().Params().ScalarSize()

	buf := make([]byte, size+16)
	if _, err := io.ReadFull(hkdf.New(sha256.New, secret, salt, info), buf); err != nil {
		return Scalar[C]{}, err
	}

	s := ScalarFromBytesBE[C](buf)
	security.SecureZero(buf)
	return s, nil
}

// value returns the internal representative, treating the zero value of the
// type as the zero scalar. Callers must not mutate the result.
func (s Scalar[C]) value() *big.Int {
	if s.v == nil {
		return new(big.Int)
	}
	return s.v
}

// Add computes s + t mod N
func (s Scalar[C]) Add(t Scalar[C]) Scalar[C] {
	n := curveOf[C]().Params().N
	return Scalar[C]{v: security.ConstantTimeModAdd(s.value(), t.value(), n)}
}

// Sub computes s - t mod N
func (s Scalar[C]) Sub(t Scalar[C]) Scalar[C] {
	n := curveOf[C]().Params().N
	return Scalar[C]{v: security.ConstantTimeModSub(s.value(), t.value(), n)}
}

// Mul computes s * t mod N
func (s Scalar[C]) Mul(t Scalar[C]) Scalar[C] {
	n := curveOf[C]().Params().N
	return Scalar[C]{v: security.ConstantTimeModMul(s.value(), t.value(), n)}
}

// Negate computes -s mod N
func (s Scalar[C]) Negate() Scalar[C] {
	n := curveOf[C]().Params().N
	return Scalar[C]{v: security.ConstantTimeModNeg(s.value(), n)}
}

// Invert computes s^-1 mod N. Inverting the zero scalar fails with
// ErrUndefinedResult.
func (s Scalar[C]) Invert() (Scalar[C], error) {
	if s.IsZero() {
		return Scalar[C]{}, ErrUndefinedResult
	}

	n := curveOf[C]().Params().N
	inv := security.ConstantTimeModInv(s.value(), n)
	if inv == nil {
		return Scalar[C]{}, ErrUndefinedResult
	}
	return Scalar[C]{v: inv}, nil
}

// IsZero reports whether s is the zero scalar.
func (s Scalar[C]) IsZero() bool {
	return security.ConstantTimeIsZero(s.value()) == 1
}

// Equal reports whether two scalars are equal. The comparison is not
// constant-time; use CtEqual when either operand is secret.
func (s Scalar[C]) Equal(t Scalar[C]) bool {
	return s.value().Cmp(t.value()) == 0
}

// CtEqual reports whether two scalars are equal in constant time.
func (s Scalar[C]) CtEqual(t Scalar[C]) bool {
	return security.ConstantTimeBigIntEqual(s.value(), t.value()) == 1
}

// BigInt returns a copy of the reduced representative in [0, N).
func (s Scalar[C]) BigInt() *big.Int {
	return new(big.Int).Set(s.value())
}

// Bytes returns the canonical fixed-width big-endian encoding of the scalar
// (width = byte length of N, left-padded with zero bytes).
func (s Scalar[C]) Bytes() []byte {
	buf := make([]byte, curveOf[C]().Params().ScalarSize())
	s.value().FillBytes(buf)
	return buf
}

// String identifies the scalar's curve without revealing its value.
// Scalars are routinely secret; their raw value must never reach logs.
func (s Scalar[C]) String() string {
	return curveOf[C]().Params().Name + " scalar(<redacted>)"
}
