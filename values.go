package rbxbin

import (
	"fmt"
	"strconv"
)

// ValueKind is the tagged-union discriminant of a Value. The numeric values
// for the first sixteen kinds match the on-disk property type tag (see
// rbxl.TypeID); Object has no on-disk representation — it only ever appears
// after the graph materialiser has rewritten a Referent-kind column.
type ValueKind byte

const (
	KindString ValueKind = iota + 1
	KindBool
	KindInt32
	KindFloat32
	KindFloat64
	_ // 0x6: Vector2int16, reserved (unused on disk for any shipped property)
	KindUDim2
	KindRay
	KindFaces
	KindAxes
	KindBrickColor
	KindColor3
	KindVector2
	KindVector3
	_ // 0xF: Vector3int16, reserved
	KindCFrame
	_ // 0x11: network-quaternion CFrame, reserved
	KindToken
	KindReferent

	// KindObject is the in-memory kind a Referent-kind property is rewritten
	// to once the graph materialiser has resolved it to an Instance pointer.
	// It has no on-disk tag.
	KindObject

	// KindUnknown holds the opaque bytes of a reserved/unrecognised on-disk
	// value-type tag. Decoding such a property succeeds with a Warning.
	KindUnknown
)

func (k ValueKind) String() string {
	switch k {
	case KindString:
		return "String"
	case KindBool:
		return "Bool"
	case KindInt32:
		return "Int32"
	case KindFloat32:
		return "Float32"
	case KindFloat64:
		return "Float64"
	case KindUDim2:
		return "UDim2"
	case KindRay:
		return "Ray"
	case KindFaces:
		return "Faces"
	case KindAxes:
		return "Axes"
	case KindBrickColor:
		return "BrickColor"
	case KindColor3:
		return "Color3"
	case KindVector2:
		return "Vector2"
	case KindVector3:
		return "Vector3"
	case KindCFrame:
		return "CFrame"
	case KindToken:
		return "Token"
	case KindReferent:
		return "Referent"
	case KindObject:
		return "Object"
	case KindUnknown:
		return "Unknown"
	default:
		return "Invalid"
	}
}

// Value is implemented by every concrete property value. Copy returns a deep
// copy so that mutating one Instance's property never affects another.
type Value interface {
	Kind() ValueKind
	String() string
	Copy() Value
}

// ValueString holds raw bytes; the format does not require them to be UTF-8.
type ValueString []byte

func (ValueString) Kind() ValueKind { return KindString }
func (v ValueString) String() string {
	return strconv.Quote(string(v))
}
func (v ValueString) Copy() Value {
	c := make(ValueString, len(v))
	copy(c, v)
	return c
}

type ValueBool bool

func (ValueBool) Kind() ValueKind { return KindBool }
func (v ValueBool) String() string {
	if v {
		return "true"
	}
	return "false"
}
func (v ValueBool) Copy() Value { return v }

type ValueInt32 int32

func (ValueInt32) Kind() ValueKind   { return KindInt32 }
func (v ValueInt32) String() string  { return strconv.FormatInt(int64(v), 10) }
func (v ValueInt32) Copy() Value     { return v }

type ValueFloat32 float32

func (ValueFloat32) Kind() ValueKind  { return KindFloat32 }
func (v ValueFloat32) String() string { return strconv.FormatFloat(float64(v), 'g', -1, 32) }
func (v ValueFloat32) Copy() Value    { return v }

type ValueFloat64 float64

func (ValueFloat64) Kind() ValueKind  { return KindFloat64 }
func (v ValueFloat64) String() string { return strconv.FormatFloat(float64(v), 'g', -1, 64) }
func (v ValueFloat64) Copy() Value    { return v }

// ValueUDim is a scalar offset plus a fractional scale along one axis. It is
// not addressable as its own property kind on disk (UDim2 is, per the
// format's tag table); it exists to compose ValueUDim2.
type ValueUDim struct {
	Scale  float32
	Offset int32
}

func (v ValueUDim) String() string {
	return fmt.Sprintf("%g, %d", v.Scale, v.Offset)
}

type ValueUDim2 struct {
	X, Y ValueUDim
}

func (ValueUDim2) Kind() ValueKind { return KindUDim2 }
func (v ValueUDim2) String() string {
	return fmt.Sprintf("{%s}, {%s}", v.X, v.Y)
}
func (v ValueUDim2) Copy() Value { return v }

// ValueBrickColor is a BrickColor palette code.
type ValueBrickColor uint32

func (ValueBrickColor) Kind() ValueKind  { return KindBrickColor }
func (v ValueBrickColor) String() string { return strconv.FormatUint(uint64(v), 10) }
func (v ValueBrickColor) Copy() Value    { return v }

type ValueColor3 struct {
	R, G, B float32
}

func (ValueColor3) Kind() ValueKind { return KindColor3 }
func (v ValueColor3) String() string {
	return fmt.Sprintf("%g, %g, %g", v.R, v.G, v.B)
}
func (v ValueColor3) Copy() Value { return v }

type ValueVector2 struct {
	X, Y float32
}

func (ValueVector2) Kind() ValueKind { return KindVector2 }
func (v ValueVector2) String() string {
	return fmt.Sprintf("%g, %g", v.X, v.Y)
}
func (v ValueVector2) Copy() Value { return v }

type ValueVector3 struct {
	X, Y, Z float32
}

func (ValueVector3) Kind() ValueKind { return KindVector3 }
func (v ValueVector3) String() string {
	return fmt.Sprintf("%g, %g, %g", v.X, v.Y, v.Z)
}
func (v ValueVector3) Copy() Value { return v }

// ValueCFrame is a coordinate frame: a row-major 3x3 rotation matrix
// (R00..R22) plus a position. Rotation holds nine elements regardless of
// whether the on-disk encoding used the explicit form or a short-form tag.
type ValueCFrame struct {
	Rotation [9]float32
	Position ValueVector3
}

func (ValueCFrame) Kind() ValueKind { return KindCFrame }
func (v ValueCFrame) String() string {
	return fmt.Sprintf("{%g %g %g %g %g %g %g %g %g}, {%s}",
		v.Rotation[0], v.Rotation[1], v.Rotation[2],
		v.Rotation[3], v.Rotation[4], v.Rotation[5],
		v.Rotation[6], v.Rotation[7], v.Rotation[8],
		v.Position)
}
func (v ValueCFrame) Copy() Value { return v }

type ValueToken uint32

func (ValueToken) Kind() ValueKind  { return KindToken }
func (v ValueToken) String() string { return strconv.FormatUint(uint64(v), 10) }
func (v ValueToken) Copy() Value    { return v }

// ValueReferent is the pre-resolution form of an object reference: the raw
// on-disk referent. It never survives graph materialisation — the graph
// materialiser rewrites every ValueReferent in a PropertyDef to a
// ValueObject before a File is returned from Decode.
type ValueReferent Referent

func (ValueReferent) Kind() ValueKind  { return KindReferent }
func (v ValueReferent) String() string { return Referent(v).String() }
func (v ValueReferent) Copy() Value    { return v }

// ValueObject is a non-owning link to another Instance in the same File, or
// nil. It must never outlive the File that produced it.
type ValueObject struct {
	Instance *Instance
}

func (ValueObject) Kind() ValueKind { return KindObject }
func (v ValueObject) String() string {
	if v.Instance == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s<%s>", v.Instance.Class.Name, v.Instance.Referent)
}
func (v ValueObject) Copy() Value { return v }

// ValueUnknown preserves the opaque payload of a reserved/unrecognised
// on-disk value-type tag so that a decode can still succeed with a Warning.
// Bytes is the PROP chunk's whole undecoded value region; every instance of
// the owning class carries the same bytes.
type ValueUnknown struct {
	RawKind byte
	Bytes   []byte
}

func (ValueUnknown) Kind() ValueKind { return KindUnknown }
func (v ValueUnknown) String() string {
	return fmt.Sprintf("<unknown type 0x%02X, %d bytes>", v.RawKind, len(v.Bytes))
}
func (v ValueUnknown) Copy() Value {
	c := make([]byte, len(v.Bytes))
	copy(c, v.Bytes)
	return ValueUnknown{RawKind: v.RawKind, Bytes: c}
}
