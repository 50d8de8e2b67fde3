package rbxl

import (
	"encoding/binary"
	"fmt"

	"github.com/bkaradzic/go-lz4"
	"github.com/robloxfmt/rbxbin"
)

// rawChunk is one on-disk chunk record (C3): a 4-byte tag, a compressed and
// an uncompressed length, a reserved field, and a payload. A zero compressed
// length means the payload that follows is stored literally.
type rawChunk struct {
	tag     [4]byte
	payload []byte
}

// readChunk reads and decompresses the chunk at the start of data, returning
// the number of bytes consumed. It operates on a plain slice with an
// explicit offset, rather than the cursor used inside a chunk's decompressed
// payload, because the caller must be able to read just the 4-byte tag
// without committing to the rest of the frame: a tag mismatch against what
// the caller expected must leave the stream positioned at the tag, since
// that mismatch is how the PROP-record loop learns it has ended rather than
// a decode failure.
//
// This is the same framing rbxfile's rawChunk.Decode reads
// (rbxl/model.go; github.com/bkaradzic/go-lz4 is rbxfile's LZ4
// dependency), minus the XML-fallback and encoder concerns this decoder
// doesn't need.
func readChunk(data []byte) (rawChunk, int, error) {
	var out rawChunk
	if len(data) < 4 {
		return out, 0, rbxbin.ErrUnexpectedEnd
	}
	copy(out.tag[:], data[:4])

	if len(data) < 16 {
		return out, 0, rbxbin.ErrUnexpectedEnd
	}
	compressedLen := binary.LittleEndian.Uint32(data[4:8])
	uncompressedLen := binary.LittleEndian.Uint32(data[8:12])
	reserved := binary.LittleEndian.Uint32(data[12:16])
	if reserved != 0 {
		return out, 0, rbxbin.CorruptChunkHeaderError{Reserved: reserved}
	}

	body := data[16:]
	if compressedLen == 0 {
		if uint32(len(body)) < uncompressedLen {
			return out, 0, rbxbin.ErrUnexpectedEnd
		}
		out.payload = append([]byte(nil), body[:uncompressedLen]...)
		return out, 16 + int(uncompressedLen), nil
	}

	if uint32(len(body)) < compressedLen {
		return out, 0, rbxbin.ErrUnexpectedEnd
	}
	compressed := body[:compressedLen]

	// go-lz4 expects the uncompressed length prefixed onto the compressed
	// block, little-endian, the same convention rbxfile's rawChunk.Decode
	// works around.
	framed := make([]byte, 4+len(compressed))
	binary.LittleEndian.PutUint32(framed, uncompressedLen)
	copy(framed[4:], compressed)

	out.payload = make([]byte, uncompressedLen)
	if _, err := lz4.Decode(out.payload, framed); err != nil {
		return out, 0, rbxbin.DecompressError{Cause: err}
	}
	return out, 16 + int(compressedLen), nil
}

// expectTag reads the chunk at the start of data and confirms its tag
// matches want. On mismatch it returns a WrongTagError and 0 bytes
// consumed, leaving the caller free to retry the same bytes against a
// different expected tag.
func expectTag(data []byte, want [4]byte) (rawChunk, int, error) {
	if len(data) < 4 {
		return rawChunk{}, 0, rbxbin.ErrUnexpectedEnd
	}
	var got [4]byte
	copy(got[:], data[:4])
	if got != want {
		return rawChunk{}, 0, rbxbin.WrongTagError{Expected: want, Got: got}
	}
	return readChunk(data)
}

func (c rawChunk) String() string {
	return fmt.Sprintf("chunk %q (%d bytes)", c.tag[:], len(c.payload))
}
