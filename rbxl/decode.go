package rbxl

import (
	"bytes"
	"encoding/binary"

	"github.com/robloxfmt/rbxbin"
)

// Decoder decodes the binary place/model container format. The zero value
// is ready to use.
//
// Grounded on rbxfile's rbxl.Decoder (rbxl/decoder.go): same shape (a
// small options struct with a Decode entry point), generalised from the
// rbxfile's Mode/NoXML fields — which exist to support the legacy XML
// fallback this decoder doesn't implement (that serialiser is a separate
// concern entirely) — to a single Strict switch.
type Decoder struct {
	// Strict, if true, makes a ReservedKindWarning-class condition (an
	// unrecognised property value-type tag) a fatal error instead of a
	// recorded warning. Chunk-level tag/version/count mismatches are always
	// fatal regardless of Strict.
	Strict bool
}

// Decode parses data and returns the object graph it describes, together
// with any non-fatal warnings observed. A non-nil error means no File is
// returned at all: partial decode state is never handed back to the caller.
func (d Decoder) Decode(data []byte) (*rbxbin.File, []rbxbin.Warning, error) {
	pos, err := checkHeader(data)
	if err != nil {
		return nil, nil, err
	}

	if len(data) < pos+16 {
		return nil, nil, rbxbin.ErrUnexpectedEnd
	}
	typeCount := binary.LittleEndian.Uint32(data[pos : pos+4])
	objectCount := binary.LittleEndian.Uint32(data[pos+4 : pos+8])
	// The next 8 bytes are zero padding; the format leaves their meaning
	// unspecified, so they are skipped rather than validated.
	pos += 16

	var warnings []rbxbin.Warning
	var metadata map[string]string
	var sharedStrs [][]byte
	classes := make([]*rbxbin.ClassDef, 0, typeCount)

	for uint32(len(classes)) < typeCount {
		chunk, n, err := expectTag(data[pos:], tagINST)
		if err != nil {
			return nil, nil, err
		}
		pos += n

		def, err := decodeInst(chunk.payload, uint32(len(classes)))
		if err != nil {
			return nil, nil, rbxbin.ChunkError{Index: len(classes), Tag: chunk.tag, Cause: err}
		}
		classes = append(classes, def)
	}

	byTypeID := make(map[uint32]*rbxbin.ClassDef, len(classes))
	for _, c := range classes {
		byTypeID[c.TypeID] = c
	}

	// index counts the chunks read so far; ChunkError reports it.
	index := len(classes)

propLoop:
	for {
		chunk, n, err := readAnyOf(data[pos:], tagPROP, tagMETA, tagSSTR)
		if err != nil {
			if _, ok := err.(rbxbin.WrongTagError); ok {
				break propLoop
			}
			return nil, nil, err
		}
		pos += n
		chunkIndex := index
		index++

		switch chunk.tag {
		case tagMETA:
			m, err := decodeMeta(chunk.payload)
			if err != nil {
				return nil, nil, rbxbin.ChunkError{Index: chunkIndex, Tag: chunk.tag, Cause: err}
			}
			metadata = m

		case tagSSTR:
			values, ws, err := decodeSstr(chunk.payload)
			if err != nil {
				return nil, nil, rbxbin.ChunkError{Index: chunkIndex, Tag: chunk.tag, Cause: err}
			}
			sharedStrs = values
			warnings = append(warnings, ws...)

		default: // tagPROP
			hdr, err := readPropHeader(chunk.payload)
			if err != nil {
				return nil, nil, rbxbin.ChunkError{Index: chunkIndex, Tag: chunk.tag, Cause: err}
			}
			class, ok := byTypeID[hdr.owningTypeID]
			if !ok {
				return nil, nil, rbxbin.UnknownClassError{ID: hdr.owningTypeID}
			}

			values, kind, propWarnings, err := decodeValues(hdr.rawKind, hdr.rest, len(class.Referents), hdr.name, sharedStrs)
			if err != nil {
				return nil, nil, rbxbin.ChunkError{
					Index: chunkIndex, Tag: chunk.tag,
					Cause: rbxbin.ValueError{Kind: kind, Cause: err},
				}
			}
			if len(values) != len(class.Referents) {
				return nil, nil, rbxbin.CountMismatchError{
					What:     "PROP value count",
					Expected: uint32(len(class.Referents)),
					Got:      uint32(len(values)),
				}
			}
			if d.Strict {
				for _, w := range propWarnings {
					if _, ok := w.(rbxbin.ReservedKindWarning); ok {
						return nil, nil, w
					}
				}
			}
			warnings = append(warnings, propWarnings...)
			class.Properties = append(class.Properties, &rbxbin.PropertyDef{
				Name:         hdr.name,
				DeclaredKind: kind,
				Values:       values,
			})
		}
	}

	chunk, n, err := expectTag(data[pos:], tagPRNT)
	if err != nil {
		return nil, nil, err
	}
	pos += n
	pairs, err := decodeParent(chunk.payload, objectCount)
	if err != nil {
		return nil, nil, rbxbin.ChunkError{Index: index, Tag: chunk.tag, Cause: err}
	}

	if _, n, err := expectTag(data[pos:], tagEND); err != nil {
		return nil, nil, err
	} else {
		pos += n
	}

	file, err := materialise(classes, objectCount, pairs)
	if err != nil {
		return nil, nil, err
	}
	file.Metadata = metadata
	return file, warnings, nil
}

// checkHeader validates the 16-byte "<roblox!" + magic header and returns
// the offset of the type_count field.
func checkHeader(data []byte) (int, error) {
	sigLen := len(robloxSig) + len(binaryMarker)
	if len(data) < sigLen {
		return 0, rbxbin.ErrUnexpectedEnd
	}
	if !bytes.Equal(data[:len(robloxSig)], []byte(robloxSig)) {
		return 0, rbxbin.ErrBadMagic
	}
	if !bytes.Equal(data[len(robloxSig):sigLen], []byte(binaryMarker)) {
		// A legacy XML place/model file; this decoder doesn't implement it
		// (the XML serialiser is an external collaborator, not this
		// decoder's concern).
		return 0, rbxbin.ErrBadMagic
	}

	pos := sigLen
	if len(data) < pos+len(binaryHeader) {
		return 0, rbxbin.ErrUnexpectedEnd
	}
	// These 8 bytes are unspecified and vary across files (historically
	// something like 89 ff 0d 0a 1a 0a 00 00); skip them without comparing.
	return pos + len(binaryHeader), nil
}

// readAnyOf reads the chunk at the start of data, succeeding only if its tag
// is one of want. On a tag that matches none of them, it returns a
// WrongTagError against the first alternative without consuming any bytes.
func readAnyOf(data []byte, want ...[4]byte) (rawChunk, int, error) {
	if len(data) < 4 {
		return rawChunk{}, 0, rbxbin.ErrUnexpectedEnd
	}
	var got [4]byte
	copy(got[:], data[:4])
	for _, w := range want {
		if got == w {
			return readChunk(data)
		}
	}
	return rawChunk{}, 0, rbxbin.WrongTagError{Expected: want[0], Got: got}
}
