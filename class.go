package rbxbin

// ClassDef describes one class record read from an INST chunk: a ClassName,
// the referents of every instance of that class (in on-disk order), and the
// properties that were read for it from PROP chunks, in the order they
// arrived.
type ClassDef struct {
	// TypeID is the class's 0-based index among all class records in the
	// file. It must equal this ClassDef's position in File.Classes.
	TypeID uint32

	// Name is the class's ClassName, e.g. "Part" or "Model". Not guaranteed
	// to be valid UTF-8.
	Name string

	// Referents holds one referent per instance of this class, in the order
	// they appeared in the INST chunk's referent array.
	Referents []Referent

	// ServiceMarkers holds the per-instance tag byte that follows the
	// referent array when the INST chunk's extra_flag is set. Index i
	// corresponds to Referents[i]. Nil when extra_flag was zero. A nonzero
	// byte marks the corresponding instance as a service (resolved via
	// game:GetService rather than Instance.new by a Roblox client); this
	// decoder surfaces the raw bytes rather than discarding them.
	ServiceMarkers []byte

	// Properties is the ordered list of property columns read for this
	// class. Order is the order PROP records for this class arrived in the
	// file, and is observable by callers.
	Properties []*PropertyDef
}

// PropertyDef is one property column: a name, its declared kind, and one
// value per instance of the owning class, in the same order as
// ClassDef.Referents.
type PropertyDef struct {
	Name string

	// DeclaredKind is the kind Values are expected to hold. It starts as the
	// on-disk tag's kind and, for Referent-kind columns, is rewritten to
	// KindObject once the graph materialiser resolves every value in the
	// column.
	DeclaredKind ValueKind

	// Values holds one Value per instance of the owning class. Before
	// materialisation this is owned by the PropertyDef; after
	// materialisation ownership has conceptually moved to the Instances (the
	// slice is still reachable here for diagnostic purposes, but callers
	// should treat Instance.Properties as authoritative).
	Values []Value
}
