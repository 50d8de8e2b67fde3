package rbxbin

import "testing"

func TestReferentIsNil(t *testing.T) {
	if !NilReferent.IsNil() {
		t.Error("NilReferent.IsNil() = false, want true")
	}
	if Referent(0).IsNil() {
		t.Error("Referent(0).IsNil() = true, want false")
	}
}

func TestReferentString(t *testing.T) {
	if got := NilReferent.String(); got != "<nil>" {
		t.Errorf("NilReferent.String() = %q, want <nil>", got)
	}
	if got := Referent(42).String(); got != "42" {
		t.Errorf("Referent(42).String() = %q, want 42", got)
	}
}
