package rbxl

import (
	"encoding/binary"
	"math"

	"github.com/robloxfmt/rbxbin"
)

// propHeader is a PROP chunk's preamble, read before the owning class (and
// so its instance count) can be resolved.
type propHeader struct {
	owningTypeID uint32
	name         string
	rawKind      TypeID
	rest         []byte
}

// propRecord is a decoded PROP chunk before it has been attached to its
// owning class (the caller appends it to class.Properties).
type propRecord struct {
	owningTypeID uint32
	def          *rbxbin.PropertyDef
	warnings     []rbxbin.Warning
}

// readPropHeader reads a PROP chunk's preamble: owning class id, property
// name, and value-type tag, leaving the remainder of the chunk undecoded
// since decoding it requires the owning class's instance count.
func readPropHeader(payload []byte) (propHeader, error) {
	c := newCursor(payload)

	owningTypeID, failed := c.u32()
	if failed {
		return propHeader{}, c.err()
	}

	nameLen, failed := c.u32()
	if failed {
		return propHeader{}, c.err()
	}
	nameBytes, failed := c.bytes(int(nameLen))
	if failed {
		return propHeader{}, c.err()
	}

	rawKind, failed := c.u8()
	if failed {
		return propHeader{}, c.err()
	}

	rest, failed := c.all()
	if failed {
		return propHeader{}, c.err()
	}
	if err := c.err(); err != nil {
		return propHeader{}, err
	}

	return propHeader{
		owningTypeID: owningTypeID,
		name:         string(nameBytes),
		rawKind:      TypeID(rawKind),
		rest:         rest,
	}, nil
}

// decodeProp decodes a full PROP chunk's payload given n, the owning class's
// instance count (PropertyDef.Values must have exactly n entries).
// sharedStrs resolves a shared-string table index to its payload bytes, for
// the supplemented SharedString kind (see decodeValues).
//
// Grounded on rbxfile's rbxl.ValuesFromBytes dispatch (rbxl/arrays.go):
// same per-kind codec table, generalised to this decoder's ValueKind set and
// its Referent sparse-reset rule.
func decodeProp(payload []byte, n int, sharedStrs [][]byte) (*propRecord, error) {
	hdr, err := readPropHeader(payload)
	if err != nil {
		return nil, err
	}

	values, kind, warnings, err := decodeValues(hdr.rawKind, hdr.rest, n, hdr.name, sharedStrs)
	if err != nil {
		return nil, rbxbin.ValueError{Kind: kind, Cause: err}
	}
	return &propRecord{
		owningTypeID: hdr.owningTypeID,
		warnings:     warnings,
		def: &rbxbin.PropertyDef{
			Name:         hdr.name,
			DeclaredKind: kind,
			Values:       values,
		},
	}, nil
}

func decodeValues(t TypeID, b []byte, n int, propName string, sharedStrs [][]byte) (values []rbxbin.Value, kind rbxbin.ValueKind, warnings []rbxbin.Warning, err error) {
	switch t {
	case TypeString:
		values, err = decodeStringValues(b, n)
		return values, rbxbin.KindString, nil, err

	case TypeBool:
		values, err = decodeBoolValues(b, n)
		return values, rbxbin.KindBool, nil, err

	case TypeInt32:
		values, err = decodeInt32Values(b, n)
		return values, rbxbin.KindInt32, nil, err

	case TypeFloat32:
		values, err = decodeFloat32Values(b, n)
		return values, rbxbin.KindFloat32, nil, err

	case TypeFloat64:
		values, err = decodeFloat64Values(b, n)
		return values, rbxbin.KindFloat64, nil, err

	case TypeUDim2:
		values, err = decodeUDim2Values(b, n)
		return values, rbxbin.KindUDim2, nil, err

	case TypeBrickColor:
		values, err = decodeBrickColorValues(b, n)
		return values, rbxbin.KindBrickColor, nil, err

	case TypeColor3:
		values, err = decodeColor3Values(b, n)
		return values, rbxbin.KindColor3, nil, err

	case TypeVector2:
		values, err = decodeVector2Values(b, n)
		return values, rbxbin.KindVector2, nil, err

	case TypeVector3:
		values, err = decodeVector3Values(b, n)
		return values, rbxbin.KindVector3, nil, err

	case TypeCFrame:
		values, err = decodeCFrameValues(b, n)
		return values, rbxbin.KindCFrame, nil, err

	case TypeToken:
		values, err = decodeTokenValues(b, n)
		return values, rbxbin.KindToken, nil, err

	case TypeReferent:
		values, err = decodeReferentValues(b, n)
		return values, rbxbin.KindReferent, nil, err

	case TypeSharedString:
		values, warnings, err = decodeSharedStringValues(b, n, propName, sharedStrs)
		return values, rbxbin.KindString, warnings, err

	default:
		// The per-instance layout of a reserved kind is unknown, so every
		// value carries the chunk's whole undecoded value region.
		raw := append([]byte(nil), b...)
		values = make([]rbxbin.Value, n)
		for i := range values {
			values[i] = rbxbin.ValueUnknown{RawKind: byte(t), Bytes: raw}
		}
		return values, rbxbin.KindUnknown, []rbxbin.Warning{
			rbxbin.ReservedKindWarning{PropertyName: propName, RawKind: byte(t)},
		}, nil
	}
}

func decodeStringValues(b []byte, n int) ([]rbxbin.Value, error) {
	values := make([]rbxbin.Value, 0, n)
	for len(b) > 0 {
		if len(b) < 4 {
			return nil, rbxbin.ErrUnexpectedEnd
		}
		length := binary.LittleEndian.Uint32(b)
		b = b[4:]
		if len(b) < int(length) {
			return nil, rbxbin.ErrUnexpectedEnd
		}
		s := make([]byte, length)
		copy(s, b[:length])
		b = b[length:]
		values = append(values, rbxbin.ValueString(s))
	}
	return values, nil
}

func decodeBoolValues(b []byte, n int) ([]rbxbin.Value, error) {
	if len(b) != n {
		return nil, rbxbin.CountMismatchError{What: "Bool values", Expected: uint32(n), Got: uint32(len(b))}
	}
	values := make([]rbxbin.Value, n)
	for i, x := range b {
		values[i] = rbxbin.ValueBool(x != 0)
	}
	return values, nil
}

// decodeInt32Values decodes each de-interleaved word independently via
// foldedInt32. Unlike Referent, an Int32 property carries no running sum:
// each instance's value stands on its own.
func decodeInt32Values(b []byte, n int) ([]rbxbin.Value, error) {
	if len(b) != n*4 {
		return nil, rbxbin.BadLengthError{Length: len(b), Divisor: 4}
	}
	if err := deinterleave(b); err != nil {
		return nil, err
	}
	values := make([]rbxbin.Value, n)
	for i := range values {
		values[i] = rbxbin.ValueInt32(foldedInt32(u32At(b, i)))
	}
	return values, nil
}

func decodeFloat32Values(b []byte, n int) ([]rbxbin.Value, error) {
	if len(b) != n*4 {
		return nil, rbxbin.BadLengthError{Length: len(b), Divisor: 4}
	}
	if err := deinterleave(b); err != nil {
		return nil, err
	}
	values := make([]rbxbin.Value, n)
	for i := range values {
		values[i] = rbxbin.ValueFloat32(rbxFloat(u32At(b, i)))
	}
	return values, nil
}

func decodeFloat64Values(b []byte, n int) ([]rbxbin.Value, error) {
	if len(b) != n*8 {
		return nil, rbxbin.BadLengthError{Length: len(b), Divisor: 8}
	}
	values := make([]rbxbin.Value, n)
	for i := range values {
		bits := binary.LittleEndian.Uint64(b[i*8:])
		values[i] = rbxbin.ValueFloat64(math.Float64frombits(bits))
	}
	return values, nil
}

// columns splits b into k equal-length de-interleaved regions, each n*4
// bytes, matching rbxfile's deinterleaveFields applied to a fixed-size
// (4-byte) field list.
func columns(b []byte, n, k int) ([][]byte, error) {
	if len(b) != n*4*k {
		return nil, rbxbin.BadLengthError{Length: len(b), Divisor: 4 * k}
	}
	return splitColumns(b, k)
}

func decodeUDim2Values(b []byte, n int) ([]rbxbin.Value, error) {
	cols, err := columns(b, n, 4)
	if err != nil {
		return nil, err
	}
	scaleX, scaleY, offX, offY := cols[0], cols[1], cols[2], cols[3]
	values := make([]rbxbin.Value, n)
	for i := range values {
		values[i] = rbxbin.ValueUDim2{
			X: rbxbin.ValueUDim{Scale: rbxFloat(u32At(scaleX, i)), Offset: foldedInt32(u32At(offX, i))},
			Y: rbxbin.ValueUDim{Scale: rbxFloat(u32At(scaleY, i)), Offset: foldedInt32(u32At(offY, i))},
		}
	}
	return values, nil
}

func decodeBrickColorValues(b []byte, n int) ([]rbxbin.Value, error) {
	if len(b) != n*4 {
		return nil, rbxbin.BadLengthError{Length: len(b), Divisor: 4}
	}
	if err := deinterleave(b); err != nil {
		return nil, err
	}
	values := make([]rbxbin.Value, n)
	for i := range values {
		values[i] = rbxbin.ValueBrickColor(bswap32(u32At(b, i)))
	}
	return values, nil
}

func decodeColor3Values(b []byte, n int) ([]rbxbin.Value, error) {
	cols, err := columns(b, n, 3)
	if err != nil {
		return nil, err
	}
	r, g, bl := cols[0], cols[1], cols[2]
	values := make([]rbxbin.Value, n)
	for i := range values {
		values[i] = rbxbin.ValueColor3{
			R: rbxFloat(u32At(r, i)),
			G: rbxFloat(u32At(g, i)),
			B: rbxFloat(u32At(bl, i)),
		}
	}
	return values, nil
}

func decodeVector2Values(b []byte, n int) ([]rbxbin.Value, error) {
	cols, err := columns(b, n, 2)
	if err != nil {
		return nil, err
	}
	x, y := cols[0], cols[1]
	values := make([]rbxbin.Value, n)
	for i := range values {
		values[i] = rbxbin.ValueVector2{X: rbxFloat(u32At(x, i)), Y: rbxFloat(u32At(y, i))}
	}
	return values, nil
}

func decodeVector3Values(b []byte, n int) ([]rbxbin.Value, error) {
	cols, err := columns(b, n, 3)
	if err != nil {
		return nil, err
	}
	x, y, z := cols[0], cols[1], cols[2]
	values := make([]rbxbin.Value, n)
	for i := range values {
		values[i] = rbxbin.ValueVector3{X: rbxFloat(u32At(x, i)), Y: rbxFloat(u32At(y, i)), Z: rbxFloat(u32At(z, i))}
	}
	return values, nil
}

// decodeCFrameValues implements the two-part CFrame layout: a tag byte per
// instance (plus 9 explicit floats when the tag is 0x00), followed by three
// de-interleaved position columns covering all N instances.
func decodeCFrameValues(b []byte, n int) ([]rbxbin.Value, error) {
	tags := make([]byte, n)
	rotations := make([][9]float32, n)

	pos := 0
	for i := 0; i < n; i++ {
		if pos >= len(b) {
			return nil, rbxbin.ErrUnexpectedEnd
		}
		tag := b[pos]
		pos++
		tags[i] = tag
		switch {
		case tag == 0x00:
			if len(b)-pos < 36 {
				return nil, rbxbin.ErrUnexpectedEnd
			}
			for j := 0; j < 9; j++ {
				bits := binary.LittleEndian.Uint32(b[pos:])
				rotations[i][j] = math.Float32frombits(bits)
				pos += 4
			}
		case tag >= 0x02 && tag <= 0x23:
			m, ok := shortFormRotation[tag]
			if !ok {
				return nil, rbxbin.BadCFrameTagError{Tag: tag}
			}
			rotations[i] = m
		default:
			return nil, rbxbin.BadCFrameTagError{Tag: tag}
		}
	}

	posCols, err := columns(b[pos:], n, 3)
	if err != nil {
		return nil, err
	}
	x, y, z := posCols[0], posCols[1], posCols[2]

	values := make([]rbxbin.Value, n)
	for i := range values {
		values[i] = rbxbin.ValueCFrame{
			Rotation: rotations[i],
			Position: rbxbin.ValueVector3{X: rbxFloat(u32At(x, i)), Y: rbxFloat(u32At(y, i)), Z: rbxFloat(u32At(z, i))},
		}
	}
	return values, nil
}

func decodeTokenValues(b []byte, n int) ([]rbxbin.Value, error) {
	if len(b) != n*4 {
		return nil, rbxbin.BadLengthError{Length: len(b), Divisor: 4}
	}
	if err := deinterleave(b); err != nil {
		return nil, err
	}
	values := make([]rbxbin.Value, n)
	for i := range values {
		values[i] = rbxbin.ValueToken(bswap32(u32At(b, i)))
	}
	return values, nil
}

// decodeSharedStringValues resolves a SharedString property's indices
// against the file's SSTR table. Each index is a plain little-endian u32,
// de-interleaved but not folded or byte-swapped, since it addresses a table
// rather than encoding a signed quantity.
func decodeSharedStringValues(b []byte, n int, propName string, sharedStrs [][]byte) ([]rbxbin.Value, []rbxbin.Warning, error) {
	if len(b) != n*4 {
		return nil, nil, rbxbin.BadLengthError{Length: len(b), Divisor: 4}
	}
	if err := deinterleave(b); err != nil {
		return nil, nil, err
	}
	values := make([]rbxbin.Value, n)
	var warnings []rbxbin.Warning
	for i := range values {
		idx := u32At(b, i)
		if int(idx) < len(sharedStrs) {
			values[i] = rbxbin.ValueString(sharedStrs[idx])
			continue
		}
		values[i] = rbxbin.ValueString(nil)
		warnings = append(warnings, rbxbin.ReservedKindWarning{
			PropertyName: propName,
			RawKind:      byte(TypeSharedString),
		})
	}
	return values, warnings, nil
}

// decodeReferentValues implements the sparse-reset differential rule: a
// zero delta emits the nil referent and does not advance the running sum,
// so that a run of absent links doesn't shift every subsequent link's base.
func decodeReferentValues(b []byte, n int) ([]rbxbin.Value, error) {
	if len(b) != n*4 {
		return nil, rbxbin.BadLengthError{Length: len(b), Divisor: 4}
	}
	if err := deinterleave(b); err != nil {
		return nil, err
	}
	values := make([]rbxbin.Value, n)
	var sum int32
	for i := range values {
		delta := foldedInt32(u32At(b, i))
		if delta == 0 {
			values[i] = rbxbin.ValueReferent(rbxbin.NilReferent)
			continue
		}
		sum += delta
		values[i] = rbxbin.ValueReferent(sum)
	}
	return values, nil
}
