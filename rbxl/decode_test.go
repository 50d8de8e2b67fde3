package rbxl

import "testing"

func TestDecodeMinimalFile(t *testing.T) {
	prnt := frameChunk(tagPRNT, buildPrntPayload(nil, nil))
	end := frameChunk(tagEND, []byte("</roblox>"))
	data := buildFile(0, 0, prnt, end)

	var d Decoder
	file, warnings, err := d.Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("got %d warnings, want 0", len(warnings))
	}
	if len(file.Classes) != 0 || len(file.Instances) != 0 {
		t.Errorf("expected an empty file, got %d classes, %d instances", len(file.Classes), len(file.Instances))
	}
}

func TestDecodeTwoInstanceParentLink(t *testing.T) {
	// Two instances of the same class, referents 0 and 1; instance 1 is
	// parented to instance 0.
	inst := frameChunk(tagINST, buildInstPayload(0, "Part", []int32{0, 1}))
	prnt := frameChunk(tagPRNT, buildPrntPayload([]int32{0, 1}, []int32{-1, 1}))
	end := frameChunk(tagEND, []byte("</roblox>"))
	data := buildFile(1, 2, inst, prnt, end)

	var d Decoder
	file, _, err := d.Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(file.Instances) != 2 {
		t.Fatalf("got %d instances, want 2", len(file.Instances))
	}
	root := file.Instances[0]
	child := file.Instances[1]
	if root.Parent() != nil {
		t.Errorf("root.Parent() = %v, want nil", root.Parent())
	}
	if child.Parent() != root {
		t.Errorf("child.Parent() = %v, want root", child.Parent())
	}
}

func TestDecodeStringPropertyRoundTrip(t *testing.T) {
	inst := frameChunk(tagINST, buildInstPayload(0, "Part", []int32{0}))

	var nameValues []byte
	nameValues = append(nameValues, u32le(4)...)
	nameValues = append(nameValues, []byte("Base")...)
	prop := frameChunk(tagPROP, append(buildPropHeader(0, "Name", TypeString), nameValues...))

	prnt := frameChunk(tagPRNT, buildPrntPayload([]int32{0}, []int32{-1}))
	end := frameChunk(tagEND, []byte("</roblox>"))
	data := buildFile(1, 1, inst, prop, prnt, end)

	var d Decoder
	file, _, err := d.Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	v, ok := file.Instances[0].Property("Name")
	if !ok {
		t.Fatal("expected a Name property")
	}
	if got := v.String(); got != `"Base"` {
		t.Errorf("Name = %s, want \"Base\"", got)
	}
}

func TestDecodeBadMagic(t *testing.T) {
	var d Decoder
	if _, _, err := d.Decode([]byte("not a roblox file")); err == nil {
		t.Fatal("expected error for bad magic")
	}
}

func TestDecodeReservedKindStrict(t *testing.T) {
	inst := frameChunk(tagINST, buildInstPayload(0, "Part", []int32{0}))
	prop := frameChunk(tagPROP, append(buildPropHeader(0, "Weird", TypeID(0x7E)), 1))
	prnt := frameChunk(tagPRNT, buildPrntPayload([]int32{0}, []int32{-1}))
	end := frameChunk(tagEND, []byte("</roblox>"))
	data := buildFile(1, 1, inst, prop, prnt, end)

	strict := Decoder{Strict: true}
	if _, _, err := strict.Decode(data); err == nil {
		t.Fatal("expected a fatal error in strict mode for a reserved value type")
	}

	lenient := Decoder{}
	file, warnings, err := lenient.Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(warnings) != 1 {
		t.Errorf("got %d warnings, want 1", len(warnings))
	}
	if _, ok := file.Instances[0].Property("Weird"); !ok {
		t.Error("expected the reserved property to still be attached with Unknown values")
	}
}
