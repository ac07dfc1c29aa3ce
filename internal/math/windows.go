package math

// Pippenger window selection and scalar digit decomposition.

// WindowWidth returns the bucket window width, in bits, used for a
// multiscalar multiplication over m terms. Wider windows trade more buckets
// (2^w of them) against fewer digit positions; the optimum grows roughly
// logarithmically with m.
func WindowWidth(m int) int {
	switch {
	case m < 4:
		return 2
	case m < 16:
		return 3
	case m < 64:
		return 4
	case m < 256:
		return 5
	case m < 1024:
		return 6
	case m < 4096:
		return 7
	case m < 16384:
		return 8
	case m < 65536:
		return 9
	default:
		return 10
	}
}

// WindowCount returns the number of w-bit digit positions needed to cover a
// scalar of the given bit width.
func WindowCount(scalarBits, w int) int {
	return (scalarBits + w - 1) / w
}

// Digits splits a fixed-width big-endian scalar encoding into w-bit digits,
// least-significant digit first. Every call yields exactly count digits, so
// the output shape does not depend on the scalar value. w must be in
// [1, 31]; WindowWidth only produces values in that range.
func Digits(k []byte, w, count int) []uint32 {
	totalBits := len(k) * 8
	digits := make([]uint32, count)
	for j := 0; j < count; j++ {
		var d uint32
		for b := 0; b < w; b++ {
			bit := j*w + b
			if bit >= totalBits {
				break
			}
			// Bit index counts from the least significant end of the
			// big-endian encoding.
			byteIdx := len(k) - 1 - bit/8
			if (k[byteIdx]>>(uint(bit)%8))&1 == 1 {
				d |= 1 << uint(b)
			}
		}
		digits[j] = d
	}
	return digits
}
