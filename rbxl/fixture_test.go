package rbxl

import "encoding/binary"

// buildIntColumn lays out deltas as a column of folded, interleaved int32s,
// the on-disk form decodeInst/decodeReferentColumn/decodeInt32Values expect.
func buildIntColumn(deltas []int32) []byte {
	buf := make([]byte, len(deltas)*4)
	for i, d := range deltas {
		binary.LittleEndian.PutUint32(buf[i*4:], foldInt32(d))
	}
	if err := interleaveBytes(buf); err != nil {
		panic(err)
	}
	return buf
}

// buildFloatColumn lays out plain (non-differential) floats as an
// interleaved column, the on-disk form decodeFloat32-family types expect.
func buildFloatColumn(vals []float32) []byte {
	buf := make([]byte, len(vals)*4)
	for i, v := range vals {
		binary.LittleEndian.PutUint32(buf[i*4:], rotateFloat(v))
	}
	if err := interleaveBytes(buf); err != nil {
		panic(err)
	}
	return buf
}

func u32le(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

// frameChunk wraps payload in an uncompressed chunk record: tag,
// compressed_len=0, uncompressed_len, reserved=0, payload.
func frameChunk(tag [4]byte, payload []byte) []byte {
	out := make([]byte, 0, 16+len(payload))
	out = append(out, tag[:]...)
	out = append(out, u32le(0)...)
	out = append(out, u32le(uint32(len(payload)))...)
	out = append(out, u32le(0)...)
	out = append(out, payload...)
	return out
}

// buildInstPayload assembles an INST chunk's payload for a class with the
// given referents (differentially encoded) and no service markers.
func buildInstPayload(typeID uint32, className string, referents []int32) []byte {
	var out []byte
	out = append(out, u32le(typeID)...)
	out = append(out, u32le(uint32(len(className)))...)
	out = append(out, []byte(className)...)
	out = append(out, 0) // extra_flag
	out = append(out, u32le(uint32(len(referents)))...)
	out = append(out, buildIntColumn(referents)...)
	return out
}

// buildPropHeader assembles a PROP chunk's owning-class id, name, and
// value-type tag, without any value bytes.
func buildPropHeader(typeID uint32, name string, kind TypeID) []byte {
	var out []byte
	out = append(out, u32le(typeID)...)
	out = append(out, u32le(uint32(len(name)))...)
	out = append(out, []byte(name)...)
	out = append(out, byte(kind))
	return out
}

// buildPrntPayload assembles a PRNT chunk's payload: version 0, pair count,
// and the two differentially encoded referent columns.
func buildPrntPayload(children, parents []int32) []byte {
	var out []byte
	out = append(out, 0) // version
	out = append(out, u32le(uint32(len(children)))...)
	out = append(out, buildIntColumn(children)...)
	out = append(out, buildIntColumn(parents)...)
	return out
}

// buildFile assembles a minimal binary place/model byte stream from already
// on-disk-formatted chunk records (each produced by frameChunk).
func buildFile(typeCount, objectCount uint32, chunks ...[]byte) []byte {
	var out []byte
	out = append(out, []byte(robloxSig)...)
	out = append(out, []byte(binaryMarker)...)
	out = append(out, []byte(binaryHeader)...)
	out = append(out, u32le(typeCount)...)
	out = append(out, u32le(objectCount)...)
	out = append(out, make([]byte, 8)...) // reserved padding
	for _, c := range chunks {
		out = append(out, c...)
	}
	return out
}
