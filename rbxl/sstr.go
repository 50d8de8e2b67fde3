package rbxl

import (
	"crypto/subtle"

	"golang.org/x/crypto/blake2b"

	"github.com/robloxfmt/rbxbin"
)

// sharedStringHashSize is the width of the SSTR table's stored digest. The
// real format's hash is 16 bytes (MD5-sized); blake2b supports a
// configurable digest size, so this decoder verifies with blake2b truncated
// to that width rather than leaving the stored hash unchecked.
const sharedStringHashSize = 16

// decodeMeta decodes a META chunk's payload (supplement: File.Metadata).
// Grounded on rbxfile's chunkMeta.Decode (rbxl/model.go): a count
// followed by that many {key, value} string pairs.
func decodeMeta(payload []byte) (map[string]string, error) {
	c := newCursor(payload)

	count, failed := c.u32()
	if failed {
		return nil, c.err()
	}

	out := make(map[string]string, count)
	for i := uint32(0); i < count; i++ {
		key, err := readLenPrefixed(c)
		if err != nil {
			return nil, err
		}
		value, err := readLenPrefixed(c)
		if err != nil {
			return nil, err
		}
		out[string(key)] = string(value)
	}
	if err := c.err(); err != nil {
		return nil, err
	}
	return out, nil
}

// decodeSstr decodes an SSTR chunk's payload (supplement: the shared-string
// table referenced by SharedString properties). Grounded on rbxfile's
// chunkSharedStrings.Decode (rbxl/model.go): a version u32, a count, then
// that many {hash, value} entries; each stored hash is verified against the
// blake2b digest of its payload and a mismatch is reported as a warning
// rather than a fatal error, since the table remains usable either way.
func decodeSstr(payload []byte) ([][]byte, []rbxbin.Warning, error) {
	c := newCursor(payload)

	if _, failed := c.u32(); failed { // version, unvalidated
		return nil, nil, c.err()
	}

	count, failed := c.u32()
	if failed {
		return nil, nil, c.err()
	}

	values := make([][]byte, count)
	var warnings []rbxbin.Warning
	for i := uint32(0); i < count; i++ {
		hash, failed := c.bytes(sharedStringHashSize)
		if failed {
			return nil, nil, c.err()
		}
		value, err := readLenPrefixed(c)
		if err != nil {
			return nil, nil, err
		}
		values[i] = value

		digest := blake2b.Sum512(value)
		if subtle.ConstantTimeCompare(hash, digest[:sharedStringHashSize]) != 1 {
			warnings = append(warnings, rbxbin.SharedStringHashMismatchWarning{Index: int(i)})
		}
	}
	if err := c.err(); err != nil {
		return nil, nil, err
	}
	return values, warnings, nil
}

func readLenPrefixed(c *cursor) ([]byte, error) {
	length, failed := c.u32()
	if failed {
		return nil, c.err()
	}
	b, failed := c.bytes(int(length))
	if failed {
		return nil, c.err()
	}
	return b, nil
}
