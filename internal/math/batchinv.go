// Package math provides mathematical operations for cryptographic protocols
package math

import "math/big"

// BatchModInverse computes the modular inverse of every value with a single
// field inversion (Montgomery's trick): the product of all values is inverted
// once, then the individual inverses are unwound from prefix products.
// Cost is one inversion plus 3*(n-1) modular multiplications, which beats n
// independent inversions by a wide margin for cryptographic-sized moduli.
//
// Fails with ErrNoInverse if any value is congruent to zero mod m.
func BatchModInverse(values []*big.Int, m *big.Int) ([]*big.Int, error) {
	if m == nil || m.Sign() <= 0 {
		return nil, ErrInvalidModulus
	}
	if len(values) == 0 {
		return []*big.Int{}, nil
	}

	n := len(values)
	reduced := make([]*big.Int, n)
	prefix := make([]*big.Int, n)

	// prefix[i] = values[0] * ... * values[i] mod m
	acc := big.NewInt(1)
	for i, v := range values {
		if v == nil {
			return nil, ErrNilValue
		}
		r := new(big.Int).Mod(v, m)
		if r.Sign() == 0 {
			return nil, ErrNoInverse
		}
		reduced[i] = r

		acc = new(big.Int).Mul(acc, r)
		acc.Mod(acc, m)
		prefix[i] = acc
	}

	inv := new(big.Int).ModInverse(prefix[n-1], m)
	if inv == nil {
		return nil, ErrNoInverse
	}

	// Unwind: inv holds (values[0]*...*values[i])^-1 at step i.
	inverses := make([]*big.Int, n)
	for i := n - 1; i >= 1; i-- {
		out := new(big.Int).Mul(inv, prefix[i-1])
		out.Mod(out, m)
		inverses[i] = out

		inv.Mul(inv, reduced[i])
		inv.Mod(inv, m)
	}
	inverses[0] = inv

	return inverses, nil
}
