package rbxl

import (
	"crypto/sha256"
	"testing"

	"golang.org/x/crypto/blake2b"

	"github.com/robloxfmt/rbxbin"
)

func buildSstrPayload(values [][]byte, corruptIndex int) []byte {
	var out []byte
	out = append(out, u32le(0)...) // version, unvalidated
	out = append(out, u32le(uint32(len(values)))...)
	for i, v := range values {
		digest := blake2b.Sum512(v)
		hash := append([]byte(nil), digest[:sharedStringHashSize]...)
		if i == corruptIndex {
			bad := sha256.Sum256(v)
			hash = bad[:sharedStringHashSize]
		}
		out = append(out, hash...)
		out = append(out, u32le(uint32(len(v)))...)
		out = append(out, v...)
	}
	return out
}

func TestDecodeSstr(t *testing.T) {
	values := [][]byte{[]byte("hello"), []byte("world")}
	payload := buildSstrPayload(values, -1)

	got, warnings, err := decodeSstr(payload)
	if err != nil {
		t.Fatalf("decodeSstr: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("got %d warnings, want 0", len(warnings))
	}
	for i, v := range values {
		if string(got[i]) != string(v) {
			t.Errorf("value %d = %q, want %q", i, got[i], v)
		}
	}
}

func TestDecodeSstrHashMismatch(t *testing.T) {
	values := [][]byte{[]byte("hello"), []byte("world")}
	payload := buildSstrPayload(values, 1)

	_, warnings, err := decodeSstr(payload)
	if err != nil {
		t.Fatalf("decodeSstr: %v", err)
	}
	if len(warnings) != 1 {
		t.Fatalf("got %d warnings, want 1", len(warnings))
	}
	if w, ok := warnings[0].(rbxbin.SharedStringHashMismatchWarning); !ok || w.Index != 1 {
		t.Errorf("warning = %#v, want SharedStringHashMismatchWarning{Index: 1}", warnings[0])
	}
}

func TestDecodeMeta(t *testing.T) {
	var payload []byte
	payload = append(payload, u32le(1)...)
	payload = append(payload, u32le(uint32(len("ExplicitAutoJoints")))...)
	payload = append(payload, []byte("ExplicitAutoJoints")...)
	payload = append(payload, u32le(uint32(len("true")))...)
	payload = append(payload, []byte("true")...)

	got, err := decodeMeta(payload)
	if err != nil {
		t.Fatalf("decodeMeta: %v", err)
	}
	if got["ExplicitAutoJoints"] != "true" {
		t.Errorf("got %v, want ExplicitAutoJoints=true", got)
	}
}
