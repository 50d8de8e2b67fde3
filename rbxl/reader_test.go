package rbxl

import "testing"

func TestFoldedInt32RoundTrip(t *testing.T) {
	cases := []int32{0, 1, -1, 2, -2, 1000000, -1000000, 1<<31 - 1, -(1 << 30)}
	for _, v := range cases {
		raw := foldInt32(v)
		got := foldedInt32(raw)
		if got != v {
			t.Errorf("foldedInt32(foldInt32(%d)) = %d, want %d", v, got, v)
		}
	}
}

func TestFoldedInt32Encoding(t *testing.T) {
	// Each value is folded and recovered independently; no accumulation.
	values := []int32{1, 2, -1, 0}
	for _, v := range values {
		if foldedInt32(foldInt32(v)) != v {
			t.Fatalf("value %d did not round-trip through foldInt32/foldedInt32", v)
		}
	}
}

func TestRbxFloatRoundTrip(t *testing.T) {
	cases := []float32{0, 1, -1, 0.5, -0.5, 3.14159, -100.25}
	for _, f := range cases {
		raw := rotateFloat(f)
		got := rbxFloat(raw)
		if got != f {
			t.Errorf("rbxFloat(rotateFloat(%g)) = %g, want %g", f, got, f)
		}
	}
}

func TestBswap32(t *testing.T) {
	if got := bswap32(0x01020304); got != 0x04030201 {
		t.Errorf("bswap32(0x01020304) = %#x, want 0x04030201", got)
	}
}
