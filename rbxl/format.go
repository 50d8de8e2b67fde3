// Package rbxl decodes the Roblox binary place/model container format (the
// `<roblox!` magic) into an *rbxbin.File. It implements components C1-C7 of
// the format: the primitive reader, the column de-interleaver, the chunk
// framer, the INST/PROP/PRNT record decoders, and the graph materialiser.
//
// There is no corresponding encoder: this package only reads the format.
package rbxl

// robloxSig is the common prefix of every Roblox place/model file, binary or
// legacy XML.
const robloxSig = "<roblox"

// binaryMarker follows robloxSig in a binary (non-XML) file.
const binaryMarker = "!"

// binaryHeader is the 8 bytes that follow the "<roblox!" marker. Their
// content is unspecified and varies across files (historically something
// like 89 ff 0d 0a 1a 0a 00 00); only their length matters to checkHeader.
const binaryHeader = "\x89\xff\r\n\x1a\n\x00\x00"

// Chunk tags. Each is the 4 ASCII bytes read directly off the wire, not a
// byte-swapped integer — comparisons are done byte-for-byte.
var (
	tagINST = [4]byte{'I', 'N', 'S', 'T'}
	tagPROP = [4]byte{'P', 'R', 'O', 'P'}
	tagPRNT = [4]byte{'P', 'R', 'N', 'T'}
	tagEND  = [4]byte{'E', 'N', 'D', 0}
	tagMETA = [4]byte{'M', 'E', 'T', 'A'}
	tagSSTR = [4]byte{'S', 'S', 'T', 'R'}
)

// TypeID is the on-disk tag byte identifying a property's value layout.
type TypeID byte

const (
	TypeString        TypeID = 0x01
	TypeBool          TypeID = 0x02
	TypeInt32         TypeID = 0x03
	TypeFloat32       TypeID = 0x04
	TypeFloat64       TypeID = 0x05
	TypeVector2int16  TypeID = 0x06 // reserved, not implemented
	TypeUDim2         TypeID = 0x07
	TypeRay           TypeID = 0x08 // reserved, not implemented
	TypeFaces         TypeID = 0x09 // reserved, not implemented
	TypeAxes          TypeID = 0x0A // reserved, not implemented
	TypeBrickColor    TypeID = 0x0B
	TypeColor3        TypeID = 0x0C
	TypeVector2       TypeID = 0x0D
	TypeVector3       TypeID = 0x0E
	TypeVector3int16  TypeID = 0x0F // reserved, not implemented
	TypeCFrame        TypeID = 0x10
	TypeCFrameQuat    TypeID = 0x11 // reserved, not implemented (network CFrame)
	TypeToken         TypeID = 0x12
	TypeReferent      TypeID = 0x13
	TypeSharedString  TypeID = 0x15 // shared string table index, resolved against an SSTR chunk
)
