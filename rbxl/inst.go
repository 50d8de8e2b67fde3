package rbxl

import "github.com/robloxfmt/rbxbin"

// decodeInst decodes an INST chunk's payload into a ClassDef. typeID is this
// class's 0-based index among all class records read so far; the format
// requires the chunk's own type_id field to equal it.
//
// Grounded on rbxfile's chunkInstance.Decode (rbxl/model.go): same field
// order (id, name, [service flag], instance count, referent array), adapted
// to this decoder's differential-referent semantics and its ServiceMarkers
// supplement instead of a boolean IsService/GetService pair.
func decodeInst(payload []byte, typeID uint32) (*rbxbin.ClassDef, error) {
	c := newCursor(payload)

	gotID, failed := c.u32()
	if failed {
		return nil, c.err()
	}
	if gotID != typeID {
		return nil, rbxbin.CountMismatchError{What: "INST type_id", Expected: typeID, Got: gotID}
	}

	nameLen, failed := c.u32()
	if failed {
		return nil, c.err()
	}
	nameBytes, failed := c.bytes(int(nameLen))
	if failed {
		return nil, c.err()
	}

	extraFlag, failed := c.u8()
	if failed {
		return nil, c.err()
	}

	instanceCount, failed := c.u32()
	if failed {
		return nil, c.err()
	}

	raw, failed := c.bytes(int(instanceCount) * 4)
	if failed {
		return nil, c.err()
	}
	if err := deinterleave(raw); err != nil {
		return nil, err
	}

	referents := make([]rbxbin.Referent, instanceCount)
	var sum int32
	for i := range referents {
		word := u32At(raw, i)
		sum += foldedInt32(word)
		referents[i] = rbxbin.Referent(sum)
	}

	def := &rbxbin.ClassDef{
		TypeID:    typeID,
		Name:      string(nameBytes),
		Referents: referents,
	}

	if extraFlag != 0 {
		markers, failed := c.bytes(int(instanceCount))
		if failed {
			return nil, c.err()
		}
		def.ServiceMarkers = markers
	}

	if err := c.err(); err != nil {
		return nil, err
	}
	return def, nil
}

// u32At reads the little-endian u32 at word index i within b (b is assumed
// contiguous after de-interleaving, 4 bytes per word).
func u32At(b []byte, i int) uint32 {
	o := i * 4
	return uint32(b[o]) | uint32(b[o+1])<<8 | uint32(b[o+2])<<16 | uint32(b[o+3])<<24
}
