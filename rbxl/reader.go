package rbxl

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/anaminus/parse"
)

// cursor is the primitive reader (C1): fixed-width integer and float reads
// over a moving position, built on top of parse.BinaryReader exactly the way
// rbxfile's rbxl.rawChunk/chunkInstance decoders are (github.com/
// anaminus/parse is the same "small binary cursor" library rbxfile
// depends on for every primitive read).
type cursor struct {
	fr *parse.BinaryReader
}

func newCursor(b []byte) *cursor {
	return &cursor{fr: parse.NewBinaryReader(&byteReader{b})}
}

// byteReader adapts a byte slice to io.Reader without an extra allocation
// for bytes.NewReader's bookkeeping fields we don't need.
type byteReader struct{ b []byte }

func (r *byteReader) Read(p []byte) (int, error) {
	if len(r.b) == 0 {
		return 0, io.EOF
	}
	n := copy(p, r.b)
	r.b = r.b[n:]
	return n, nil
}

func (c *cursor) err() error {
	_, err := c.fr.End()
	return err
}

func (c *cursor) u8() (v uint8, failed bool) {
	failed = c.fr.Number(&v)
	return v, failed
}

func (c *cursor) u32() (v uint32, failed bool) {
	failed = c.fr.Number(&v)
	return v, failed
}

func (c *cursor) u64() (v uint64, failed bool) {
	failed = c.fr.Number(&v)
	return v, failed
}

func (c *cursor) bytes(n int) (b []byte, failed bool) {
	b = make([]byte, n)
	failed = c.fr.Bytes(b)
	return b, failed
}

// all consumes and returns every remaining byte.
func (c *cursor) all() (b []byte, failed bool) {
	return c.fr.All()
}

// bswap32 reverses the four bytes of a u32. The on-disk "folded" integers
// and "rotated-sign" floats are stored big-endian; decoding them means
// byte-swapping to little-endian first.
func bswap32(v uint32) uint32 {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return binary.LittleEndian.Uint32(b[:])
}

// foldedInt32 decodes a zig-zag-folded signed 32-bit integer whose bytes are
// big-endian on disk. The odd (negative) branch uses the zigzag-correct
// `-((v>>1)+1)` form, the same one rbxfile's rbxl.decodeZigzag32 uses,
// modulo the explicit byte-swap this format requires before the zigzag step.
func foldedInt32(raw uint32) int32 {
	v := bswap32(raw)
	if v&1 == 0 {
		return int32(v >> 1)
	}
	return -int32(v>>1) - 1
}

// rbxFloat decodes a "rotated-sign" IEEE-754 float: the sign bit has been
// rotated from the MSB to the LSB on disk (after byte-swapping to
// little-endian), to improve column-compression of the exponent/mantissa
// prefix.
func rbxFloat(raw uint32) float32 {
	v := bswap32(raw)
	bits := (v >> 1) | ((v & 1) << 31)
	return math.Float32frombits(bits)
}

// foldInt32 and rotateFloat are the inverse operations, used only by tests
// to build fixture byte streams. This package implements no encoder.
func foldInt32(v int32) uint32 {
	var z uint32
	if v >= 0 {
		z = uint32(v) << 1
	} else {
		z = (uint32(-v-1) << 1) | 1
	}
	return bswap32(z)
}

func rotateFloat(f float32) uint32 {
	bits := math.Float32bits(f)
	v := (bits << 1) | (bits >> 31)
	return bswap32(v)
}
