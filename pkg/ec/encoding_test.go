package ec_test

import (
	"bytes"
	"errors"
	"math/big"
	"testing"

	"github.com/Caqil/ec-core/pkg/ec"
	"github.com/Caqil/ec-core/pkg/ec/curves"
)

// TestPointRoundTrip tests both wire forms through a single decoder
func TestPointRoundTrip(t *testing.T) {
	t.Run("secp256k1", testPointRoundTrip[curves.Secp256k1])
	t.Run("p256", testPointRoundTrip[curves.P256])
	t.Run("ed25519", testPointRoundTrip[curves.Edwards25519])
}

func testPointRoundTrip[C ec.Curve](t *testing.T) {
	var c C
	size := c.Params().FieldSize()

	for i := int64(1); i <= 5; i++ {
		p := ec.BaseMul(ec.NewScalar[C](big.NewInt(i)))

		enc := p.Encode()
		if len(enc) != 1+2*size {
			t.Fatalf("Expected canonical length %d, got %d", 1+2*size, len(enc))
		}
		if enc[0] != 0x04 {
			t.Fatalf("Expected canonical tag 0x04, got 0x%02x", enc[0])
		}
		decoded, err := ec.DecodePoint[C](enc)
		if err != nil {
			t.Fatalf("Failed to decode canonical form: %v", err)
		}
		if !decoded.Equal(p) {
			t.Error("Canonical round trip should preserve the point")
		}

		comp := p.EncodeCompressed()
		if len(comp) != 1+size {
			t.Fatalf("Expected compact length %d, got %d", 1+size, len(comp))
		}
		if comp[0] != 0x02 && comp[0] != 0x03 {
			t.Fatalf("Expected compact tag 0x02 or 0x03, got 0x%02x", comp[0])
		}
		decoded, err = ec.DecodePoint[C](comp)
		if err != nil {
			t.Fatalf("Failed to decode compact form: %v", err)
		}
		if !decoded.Equal(p) {
			t.Error("Compact round trip should preserve the point")
		}
	}
}

// TestIdentityEncoding tests the single-byte identity sentinel
func TestIdentityEncoding(t *testing.T) {
	t.Run("secp256k1", testIdentityEncoding[curves.Secp256k1])
	t.Run("p256", testIdentityEncoding[curves.P256])
	t.Run("ed25519", testIdentityEncoding[curves.Edwards25519])
}

func testIdentityEncoding[C ec.Curve](t *testing.T) {
	id := ec.Identity[C]()

	if !bytes.Equal(id.Encode(), []byte{0x00}) {
		t.Error("Canonical identity encoding should be a single zero byte")
	}
	if !bytes.Equal(id.EncodeCompressed(), []byte{0x00}) {
		t.Error("Compact identity encoding should be a single zero byte")
	}

	decoded, err := ec.DecodePoint[C]([]byte{0x00})
	if err != nil {
		t.Fatalf("Failed to decode identity: %v", err)
	}
	if !decoded.IsIdentity() {
		t.Error("Decoded identity should be the identity")
	}
}

// TestDecodePointRejects tests the decoder against malformed input
func TestDecodePointRejects(t *testing.T) {
	t.Run("secp256k1", testDecodePointRejects[curves.Secp256k1])
	t.Run("p256", testDecodePointRejects[curves.P256])
	t.Run("ed25519", testDecodePointRejects[curves.Edwards25519])
}

func testDecodePointRejects[C ec.Curve](t *testing.T) {
	var c C
	params := c.Params()
	size := params.FieldSize()

	g := ec.Generator[C]()

	// Off-curve coordinates in an otherwise well-formed canonical encoding.
	offCurve := make([]byte, 1+2*size)
	offCurve[0] = 0x04
	params.Gx.FillBytes(offCurve[1 : 1+size])
	new(big.Int).Add(params.Gy, big.NewInt(1)).FillBytes(offCurve[1+size:])

	// A coordinate at or above the field prime.
	unreduced := make([]byte, 1+2*size)
	unreduced[0] = 0x04
	params.P.FillBytes(unreduced[1 : 1+size])
	params.Gy.FillBytes(unreduced[1+size:])

	cases := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"bad single byte", []byte{0x01}},
		{"truncated canonical", g.Encode()[:2*size]},
		{"truncated compact", g.EncodeCompressed()[:size]},
		{"wrong tag", append([]byte{0x05}, g.Encode()[1:]...)},
		{"compact tag with canonical length", append([]byte{0x02}, g.Encode()[1:]...)},
		{"canonical tag with compact length", append([]byte{0x04}, g.EncodeCompressed()[1:]...)},
		{"off-curve coordinates", offCurve},
		{"unreduced coordinate", unreduced},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ec.DecodePoint[C](tc.data)
			if err == nil {
				t.Fatal("Expected decode to fail")
			}
			var decErr *ec.DecodeError
			if !errors.As(err, &decErr) {
				t.Fatalf("Expected a DecodeError, got %T: %v", err, err)
			}
			if decErr.Length != len(tc.data) {
				t.Errorf("Expected Length %d in error, got %d", len(tc.data), decErr.Length)
			}
		})
	}
}

// TestDecodeCompressedCorruption tests that a flipped parity bit changes the point
func TestDecodeCompressedCorruption(t *testing.T) {
	t.Run("secp256k1", testDecodeCompressedCorruption[curves.Secp256k1])
	t.Run("p256", testDecodeCompressedCorruption[curves.P256])
	t.Run("ed25519", testDecodeCompressedCorruption[curves.Edwards25519])
}

func testDecodeCompressedCorruption[C ec.Curve](t *testing.T) {
	g := ec.Generator[C]()
	comp := g.EncodeCompressed()

	flipped := make([]byte, len(comp))
	copy(flipped, comp)
	flipped[0] ^= 0x01

	decoded, err := ec.DecodePoint[C](flipped)
	if err != nil {
		// Some curves reject the flipped parity outright, which is fine.
		return
	}
	if decoded.Equal(g) {
		t.Error("Flipped parity bit should not decode to the original point")
	}
	if !decoded.Equal(g.Negate()) {
		t.Error("Flipped parity bit should decode to the negated point")
	}
}

// TestMarshalBinary tests the BinaryMarshaler implementation
func TestMarshalBinary(t *testing.T) {
	g := ec.Generator[curves.P256]()
	enc, err := g.MarshalBinary()
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}
	if !bytes.Equal(enc, g.Encode()) {
		t.Error("MarshalBinary should produce the canonical encoding")
	}
}
