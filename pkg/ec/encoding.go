package ec

import "math/big"

// Wire formats. A scalar always encodes to its canonical fixed width.
// A point encodes to one of three forms, all distinguishable by length and
// leading tag byte alone, so a decoder accepts any of them without knowing
// which form the encoder chose:
//
//	0x00                          identity (1 byte)
//	0x04 || X || Y                uncompressed (1 + 2*FieldSize bytes)
//	(0x02|0x03) || coordinate     compressed (1 + FieldSize bytes)
const (
	identityTag     = 0x00
	evenTag         = 0x02
	oddTag          = 0x03
	uncompressedTag = 0x04
)

// Encode returns the canonical (uncompressed) encoding of the point: a tag
// byte followed by both affine coordinates in fixed-width big-endian form,
// or the single-byte identity sentinel.
func (p Point[C]) Encode() []byte {
	if p.IsIdentity() {
		return []byte{identityTag}
	}

	size := curveOf[C]().Params().FieldSize()
	px, py := p.coords()

	out := make([]byte, 1+2*size)
	out[0] = uncompressedTag
	px.FillBytes(out[1 : 1+size])
	py.FillBytes(out[1+size:])
	return out
}

// EncodeCompressed returns the compact encoding of the point: a parity tag
// byte followed by a single fixed-width coordinate, or the single-byte
// identity sentinel. The omitted coordinate is recovered during decoding by
// solving the curve equation.
func (p Point[C]) EncodeCompressed() []byte {
	if p.IsIdentity() {
		return []byte{identityTag}
	}
	px, py := p.coords()
	return curveOf[C]().CompressPoint(px, py)
}

// MarshalBinary implements encoding.BinaryMarshaler using the canonical
// encoding.
func (p Point[C]) MarshalBinary() ([]byte, error) {
	return p.Encode(), nil
}

// DecodePoint decodes any of the recognized point wire forms, dispatching
// on length and tag byte. Decoded coordinates are validated against the
// curve equation and the prime-order subgroup; rejected bytes fail with a
// *DecodeError. Callers never need to know which form the encoder used.
func DecodePoint[C Curve](data []byte) (Point[C], error) {
	c := curveOf[C]()
	params := c.Params()
	size := params.FieldSize()

	switch {
	case len(data) == 1 && data[0] == identityTag:
		return Identity[C](), nil

	case len(data) == 1+2*size && data[0] == uncompressedTag:
		x := new(big.Int).SetBytes(data[1 : 1+size])
		y := new(big.Int).SetBytes(data[1+size:])
		if x.Cmp(params.P) >= 0 || y.Cmp(params.P) >= 0 {
			return Point[C]{}, newDecodeError("coordinate not reduced modulo the field prime", len(data))
		}
		return validateDecoded[C](x, y, len(data))

	case len(data) == 1+size && (data[0] == evenTag || data[0] == oddTag):
		x, y, err := c.DecompressPoint(data)
		if err != nil {
			return Point[C]{}, err
		}
		return validateDecoded[C](x, y, len(data))

	default:
		return Point[C]{}, newDecodeError("unrecognized length or tag byte", len(data))
	}
}

// validateDecoded applies the on-curve and in-subgroup checks shared by both
// wire forms, folding the identity sentinel coordinates back to the
// distinguished identity value.
func validateDecoded[C Curve](x, y *big.Int, length int) (Point[C], error) {
	c := curveOf[C]()

	ix, iy := c.IdentityPoint()
	if x.Cmp(ix) == 0 && y.Cmp(iy) == 0 {
		return Identity[C](), nil
	}

	if !c.IsOnCurve(x, y) {
		return Point[C]{}, newDecodeError("point not on curve", length)
	}
	if !c.IsInSubgroup(x, y) {
		return Point[C]{}, newDecodeError("point not in prime-order subgroup", length)
	}

	return Point[C]{x: x, y: y}, nil
}

// DecodeScalar decodes the canonical fixed-width big-endian scalar
// encoding, reducing modulo the group order. Any other length fails with a
// *DecodeError.
func DecodeScalar[C Curve](data []byte) (Scalar[C], error) {
	size := curveOf[C]().Params().ScalarSize()
	if len(data) != size {
		return Scalar[C]{}, newDecodeError("scalar encoding has wrong length", len(data))
	}
	return ScalarFromBytesBE[C](data), nil
}
