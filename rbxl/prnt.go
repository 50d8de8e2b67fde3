package rbxl

import "github.com/robloxfmt/rbxbin"

// parentPair is one (child, parent) referent edge read from the PRNT chunk.
type parentPair struct {
	child, parent rbxbin.Referent
}

// decodeParent decodes the PRNT chunk's payload (C6). objectCount is the
// file-header object_count; pair_count must equal it.
//
// Grounded on rbxfile's chunkParent.Decode (rbxl/model.go): version byte,
// pair count, two referent columns — generalised here to a differential
// decode with no sparse-reset rule: the reset-on-zero-delta rule applies only
// to Referent-kind properties, not to PRNT's own child/parent columns.
func decodeParent(payload []byte, objectCount uint32) ([]parentPair, error) {
	c := newCursor(payload)

	version, failed := c.u8()
	if failed {
		return nil, c.err()
	}
	if version != 0 {
		return nil, rbxbin.UnsupportedPrntVersionError{Version: version}
	}

	pairCount, failed := c.u32()
	if failed {
		return nil, c.err()
	}
	if pairCount != objectCount {
		return nil, rbxbin.CountMismatchError{What: "PRNT pair_count", Expected: objectCount, Got: pairCount}
	}

	children, err := decodeReferentColumn(c, int(pairCount))
	if err != nil {
		return nil, err
	}
	parents, err := decodeReferentColumn(c, int(pairCount))
	if err != nil {
		return nil, err
	}

	if err := c.err(); err != nil {
		return nil, err
	}

	pairs := make([]parentPair, pairCount)
	for i := range pairs {
		pairs[i] = parentPair{child: children[i], parent: parents[i]}
	}
	return pairs, nil
}

// decodeReferentColumn reads one 4*n-byte de-interleaved, differentially
// accumulated folded-int32 column. Unlike a Referent-kind property, PRNT's
// columns have no sparse-reset rule: every delta advances the running sum.
func decodeReferentColumn(c *cursor, n int) ([]rbxbin.Referent, error) {
	raw, failed := c.bytes(n * 4)
	if failed {
		return nil, c.err()
	}
	if err := deinterleave(raw); err != nil {
		return nil, err
	}
	out := make([]rbxbin.Referent, n)
	var sum int32
	for i := range out {
		sum += foldedInt32(u32At(raw, i))
		out[i] = rbxbin.Referent(sum)
	}
	return out, nil
}
