package rbxbin

import "fmt"

// ErrBadMagic indicates the file did not begin with the "<roblox!" binary
// signature.
var ErrBadMagic = decodeError("bad magic: not a binary roblox file")

// ErrUnexpectedEnd indicates fewer bytes remained than a read required.
var ErrUnexpectedEnd = decodeError("unexpected end of data")

type decodeError string

func (e decodeError) Error() string { return string(e) }

// WrongTagError is returned when a chunk's 4-byte tag does not match what
// the caller expected. During the PROP-record loop this is not a fatal
// decode error — it is how the decoder learns the PROP loop has ended (see
// Decoder.Decode) — but it is still the concrete type used to signal "not
// what I expected here".
type WrongTagError struct {
	Expected, Got [4]byte
}

func (e WrongTagError) Error() string {
	return fmt.Sprintf("expected chunk tag %q, got %q", e.Expected[:], e.Got[:])
}

// CorruptChunkHeaderError indicates a chunk header's reserved field was
// nonzero.
type CorruptChunkHeaderError struct {
	Reserved uint32
}

func (e CorruptChunkHeaderError) Error() string {
	return fmt.Sprintf("corrupt chunk header: reserved field is %#x, want 0", e.Reserved)
}

// DecompressError wraps an LZ4 decompression failure.
type DecompressError struct {
	Cause error
}

func (e DecompressError) Error() string { return "lz4: " + e.Cause.Error() }
func (e DecompressError) Unwrap() error { return e.Cause }

// BadLengthError indicates a byte region's length was not a valid multiple
// for the operation being performed on it (e.g. column de-interleaving).
type BadLengthError struct {
	Length, Divisor int
}

func (e BadLengthError) Error() string {
	return fmt.Sprintf("length %d is not a multiple of %d", e.Length, e.Divisor)
}

// UnknownClassError indicates a PROP record referenced a class ID
// outside [0, type_count).
type UnknownClassError struct {
	ID uint32
}

func (e UnknownClassError) Error() string {
	return fmt.Sprintf("unknown class id %d", e.ID)
}

// ReferentRangeError indicates a class's referent array named a referent
// outside [0, object_count), which the graph materialiser cannot place in
// the instance arena.
type ReferentRangeError struct {
	Referent    Referent
	ObjectCount uint32
}

func (e ReferentRangeError) Error() string {
	return fmt.Sprintf("referent %s out of range [0, %d)", e.Referent, e.ObjectCount)
}

// BadCFrameTagError indicates a CFrame property's per-instance tag byte was
// neither 0x00 (explicit matrix) nor in [0x02, 0x23] (short form).
type BadCFrameTagError struct {
	Tag byte
}

func (e BadCFrameTagError) Error() string {
	return fmt.Sprintf("bad CFrame rotation tag %#x", e.Tag)
}

// UnsupportedPrntVersionError indicates a PRNT chunk's version byte was not
// the only version this decoder understands (0).
type UnsupportedPrntVersionError struct {
	Version byte
}

func (e UnsupportedPrntVersionError) Error() string {
	return fmt.Sprintf("unsupported PRNT version %d", e.Version)
}

// CountMismatchError indicates two counts that the format requires to agree
// did not.
type CountMismatchError struct {
	What           string
	Expected, Got uint32
}

func (e CountMismatchError) Error() string {
	return fmt.Sprintf("%s: expected %d, got %d", e.What, e.Expected, e.Got)
}

// ChunkError wraps an error with the chunk it occurred in, mirroring how a
// real decode failure is reported: which record, and why.
type ChunkError struct {
	Index int
	Tag   [4]byte
	Cause error
}

func (e ChunkError) Error() string {
	return fmt.Sprintf("chunk #%d %q: %s", e.Index, e.Tag[:], e.Cause.Error())
}

func (e ChunkError) Unwrap() error { return e.Cause }

// ValueError wraps an error produced while decoding a property's values,
// naming the declared kind.
type ValueError struct {
	Kind  ValueKind
	Cause error
}

func (e ValueError) Error() string {
	return fmt.Sprintf("type %s: %s", e.Kind, e.Cause.Error())
}

func (e ValueError) Unwrap() error { return e.Cause }

// Warning is a non-fatal condition observed while decoding. A successful
// Decode may still carry warnings.
type Warning interface {
	error
}

// ReservedKindWarning is recorded when a property's value-type tag is
// reserved/unrecognised. Decoding still succeeds; the property's values are
// ValueUnknown.
type ReservedKindWarning struct {
	ClassName, PropertyName string
	RawKind                 byte
}

func (w ReservedKindWarning) Error() string {
	return fmt.Sprintf("%s.%s: reserved value type 0x%02X, decoded as Unknown", w.ClassName, w.PropertyName, w.RawKind)
}

// SharedStringHashMismatchWarning is recorded when an SSTR table entry's
// stored hash does not match the blake2b digest of its payload.
type SharedStringHashMismatchWarning struct {
	Index int
}

func (w SharedStringHashMismatchWarning) Error() string {
	return fmt.Sprintf("shared string #%d: stored hash does not match blake2b digest of payload", w.Index)
}
