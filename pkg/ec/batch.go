package ec

import (
	"math/big"

	mathutil "github.com/Caqil/ec-core/internal/math"
)

// InvertScalars inverts every scalar in the batch using Montgomery's trick:
// the product of all values is inverted once and the individual inverses
// are recovered with multiplications alone. For protocols that invert many
// scalars at once this replaces len(scalars) field inversions with one.
//
// Fails with ErrUndefinedResult if any input is the zero scalar; no partial
// results are returned.
func InvertScalars[C Curve](scalars []Scalar[C]) ([]Scalar[C], error) {
	n := curveOf[C]().Params().N

	values := make([]*big.Int, len(scalars))
	for i, s := range scalars {
		if s.IsZero() {
			return nil, ErrUndefinedResult
		}
		values[i] = s.value()
	}

	inverses, err := mathutil.BatchModInverse(values, n)
	if err != nil {
		return nil, ErrUndefinedResult
	}

	out := make([]Scalar[C], len(inverses))
	for i, v := range inverses {
		out[i] = Scalar[C]{v: v}
	}
	return out, nil
}
