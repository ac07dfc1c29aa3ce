package ec_test

import (
	"testing"

	"github.com/Caqil/ec-core/pkg/ec"
	"github.com/Caqil/ec-core/pkg/ec/curves"
)

// TestInvertScalars tests batch inversion against individual inversion
func TestInvertScalars(t *testing.T) {
	t.Run("secp256k1", testInvertScalars[curves.Secp256k1])
	t.Run("p256", testInvertScalars[curves.P256])
	t.Run("ed25519", testInvertScalars[curves.Edwards25519])
}

func testInvertScalars[C ec.Curve](t *testing.T) {
	scalars := make([]ec.Scalar[C], 8)
	for i := range scalars {
		s, err := ec.RandomScalar[C](nil)
		if err != nil {
			t.Fatalf("Failed to generate scalar: %v", err)
		}
		if s.IsZero() {
			s = ec.OneScalar[C]()
		}
		scalars[i] = s
	}

	inverses, err := ec.InvertScalars(scalars)
	if err != nil {
		t.Fatalf("Failed to invert batch: %v", err)
	}
	if len(inverses) != len(scalars) {
		t.Fatalf("Expected %d inverses, got %d", len(scalars), len(inverses))
	}

	for i := range scalars {
		want, err := scalars[i].Invert()
		if err != nil {
			t.Fatalf("Failed to invert scalar %d: %v", i, err)
		}
		if !inverses[i].Equal(want) {
			t.Errorf("Batch inverse %d disagrees with individual inversion", i)
		}
	}
}

// TestInvertScalarsZero tests that a zero scalar fails the whole batch
func TestInvertScalarsZero(t *testing.T) {
	scalars := []ec.Scalar[curves.Secp256k1]{
		ec.OneScalar[curves.Secp256k1](),
		ec.ZeroScalar[curves.Secp256k1](),
	}
	_, err := ec.InvertScalars(scalars)
	if err != ec.ErrUndefinedResult {
		t.Errorf("Expected ErrUndefinedResult, got %v", err)
	}
}

// TestInvertScalarsEmpty tests the empty batch
func TestInvertScalarsEmpty(t *testing.T) {
	inverses, err := ec.InvertScalars[curves.P256](nil)
	if err != nil {
		t.Fatalf("Failed on empty batch: %v", err)
	}
	if len(inverses) != 0 {
		t.Errorf("Expected no inverses, got %d", len(inverses))
	}
}
