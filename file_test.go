package rbxbin

import "testing"

func TestInstancePropertyLookup(t *testing.T) {
	def := &PropertyDef{Name: "Value", DeclaredKind: KindInt32}
	inst := &Instance{
		Class:    &ClassDef{Name: "IntValue"},
		Referent: 0,
		Properties: []PropertyEntry{
			{Def: def, Value: ValueInt32(42)},
		},
	}

	v, ok := inst.Property("Value")
	if !ok {
		t.Fatal("expected to find the Value property")
	}
	if v.(ValueInt32) != 42 {
		t.Errorf("Value = %v, want 42", v)
	}

	if _, ok := inst.Property("Missing"); ok {
		t.Error("Property(\"Missing\") returned ok=true for an absent property")
	}
}

func TestInstanceParent(t *testing.T) {
	root := &Instance{Class: &ClassDef{Name: "Workspace"}, Referent: 0}
	root.Properties = []PropertyEntry{
		{Def: &PropertyDef{Name: "Parent", DeclaredKind: KindObject}, Value: ValueObject{}},
	}
	child := &Instance{Class: &ClassDef{Name: "Part"}, Referent: 1}
	child.Properties = []PropertyEntry{
		{Def: &PropertyDef{Name: "Parent", DeclaredKind: KindObject}, Value: ValueObject{Instance: root}},
	}

	if root.Parent() != nil {
		t.Errorf("root.Parent() = %v, want nil", root.Parent())
	}
	if child.Parent() != root {
		t.Errorf("child.Parent() = %v, want root", child.Parent())
	}
}

func TestFileInstanceByReferent(t *testing.T) {
	inst := &Instance{Referent: 0}
	f := &File{Instances: []*Instance{inst}}

	if f.InstanceByReferent(0) != inst {
		t.Error("InstanceByReferent(0) did not return the expected instance")
	}
	if f.InstanceByReferent(NilReferent) != nil {
		t.Error("InstanceByReferent(NilReferent) should return nil")
	}
	if f.InstanceByReferent(5) != nil {
		t.Error("InstanceByReferent(5) should return nil for an out-of-range referent")
	}
}
