package rbxbin

import "testing"

func TestValueStringCopyIsIndependent(t *testing.T) {
	orig := ValueString([]byte("hello"))
	copied := orig.Copy().(ValueString)
	copied[0] = 'H'
	if orig[0] == 'H' {
		t.Error("Copy() shares storage with the original ValueString")
	}
}

func TestValueKindString(t *testing.T) {
	cases := map[ValueKind]string{
		KindString: "String",
		KindObject: "Object",
		KindUnknown: "Unknown",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", k, got, want)
		}
	}
	if got := ValueKind(0).String(); got != "Invalid" {
		t.Errorf("ValueKind(0).String() = %q, want Invalid", got)
	}
}

func TestValueObjectStringNil(t *testing.T) {
	var v ValueObject
	if got := v.String(); got != "<nil>" {
		t.Errorf("ValueObject{}.String() = %q, want <nil>", got)
	}
}

func TestValueUnknownCopyIsIndependent(t *testing.T) {
	orig := ValueUnknown{RawKind: 0x7F, Bytes: []byte{1, 2, 3}}
	copied := orig.Copy().(ValueUnknown)
	copied.Bytes[0] = 9
	if orig.Bytes[0] == 9 {
		t.Error("Copy() shares storage with the original ValueUnknown")
	}
}

func TestValueReferentKind(t *testing.T) {
	v := ValueReferent(5)
	if v.Kind() != KindReferent {
		t.Errorf("Kind() = %s, want Referent", v.Kind())
	}
	if v.String() != "5" {
		t.Errorf("String() = %q, want 5", v.String())
	}
}
