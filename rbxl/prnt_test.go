package rbxl

import "testing"

func TestDecodeParent(t *testing.T) {
	// PRNT columns are plain differential sums with no sparse-reset rule, so
	// a zero delta still advances nothing but itself: deltas [0,1,1,1] decode
	// to referents [0,1,2,3].
	childDeltas := []int32{0, 1, 1, 1}
	parentDeltas := []int32{-1, 4, -3, -1}
	wantChildren := []int32{0, 1, 2, 3}
	wantParents := []int32{-1, 3, 0, -1}

	payload := buildPrntPayload(childDeltas, parentDeltas)

	pairs, err := decodeParent(payload, uint32(len(childDeltas)))
	if err != nil {
		t.Fatalf("decodeParent: %v", err)
	}
	if len(pairs) != len(wantChildren) {
		t.Fatalf("got %d pairs, want %d", len(pairs), len(wantChildren))
	}
	for i := range wantChildren {
		if int32(pairs[i].child) != wantChildren[i] {
			t.Errorf("pair %d child = %d, want %d", i, pairs[i].child, wantChildren[i])
		}
		if int32(pairs[i].parent) != wantParents[i] {
			t.Errorf("pair %d parent = %d, want %d", i, pairs[i].parent, wantParents[i])
		}
	}
}

func TestDecodeParentCountMismatch(t *testing.T) {
	payload := buildPrntPayload([]int32{0, 1}, []int32{-1, 0})
	if _, err := decodeParent(payload, 3); err == nil {
		t.Fatal("expected error when pair_count disagrees with object_count")
	}
}

func TestDecodeParentBadVersion(t *testing.T) {
	payload := buildPrntPayload(nil, nil)
	payload[0] = 1 // only version 0 is understood
	if _, err := decodeParent(payload, 0); err == nil {
		t.Fatal("expected error for unsupported PRNT version")
	}
}
