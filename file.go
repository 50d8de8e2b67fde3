package rbxbin

// PropertyEntry pairs a property column with the value a particular
// Instance holds for it. Instance.Properties holds these in the order the
// owning class's PROP records arrived, with the synthesised Parent property
// last.
type PropertyEntry struct {
	Def   *PropertyDef
	Value Value
}

// Instance is one decoded object: its class, its on-disk referent, and its
// resolved property values (every Referent-kind value has been rewritten to
// an Object-kind value pointing within the same File).
type Instance struct {
	Class     *ClassDef
	Referent  Referent
	Properties []PropertyEntry
}

// Property looks up a property by name. Ok is false if the instance carries
// no property with that name.
func (inst *Instance) Property(name string) (v Value, ok bool) {
	for _, p := range inst.Properties {
		if p.Def.Name == name {
			return p.Value, true
		}
	}
	return nil, false
}

// Parent returns the instance this instance is parented to, or nil if it has
// no parent. Every Instance carries a synthesised "Parent" property; Parent
// is a convenience accessor for it.
func (inst *Instance) Parent() *Instance {
	v, ok := inst.Property("Parent")
	if !ok {
		return nil
	}
	obj, ok := v.(ValueObject)
	if !ok {
		return nil
	}
	return obj.Instance
}

// File is the fully decoded object graph: every class record and every
// instance, addressable by referent.
type File struct {
	// Classes holds one ClassDef per class record, in declaration order.
	Classes []*ClassDef

	// Instances is addressable by referent: Instances[r] is the instance
	// whose on-disk referent is r, for r in [0, len(Instances)). There is no
	// entry for NilReferent.
	Instances []*Instance

	// Metadata holds key/value pairs decoded from META chunks, if any were
	// present.
	Metadata map[string]string
}

// InstanceByReferent resolves a referent to an Instance. Returns nil if r is
// nil or out of range.
func (f *File) InstanceByReferent(r Referent) *Instance {
	if r.IsNil() || int(r) < 0 || int(r) >= len(f.Instances) {
		return nil
	}
	return f.Instances[r]
}
