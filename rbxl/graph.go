package rbxl

import "github.com/robloxfmt/rbxbin"

// materialise implements C7: it allocates the instance array, scatters each
// class's property columns onto its instances, rewrites Referent-kind
// values into Object-kind values, and synthesises a Parent property from
// the PRNT pair list.
//
// There is no equivalent single pass in rbxfile's own decoder: its
// codec.Decode builds rbxfile.Instance trees directly as it walks PROP
// records, rather than populating a flat referent-addressed array. This
// decoder instead allocates an arena of instances up front so that a
// property can reference an instance declared later in the file.
func materialise(classes []*rbxbin.ClassDef, objectCount uint32, pairs []parentPair) (*rbxbin.File, error) {
	instances := make([]*rbxbin.Instance, objectCount)

	// Pass 1: allocate every instance first, so that pass 2 can resolve a
	// Referent-kind property pointing at an instance from a class declared
	// later in the file (instances are addressed by referent, not by
	// declaration order).
	for _, class := range classes {
		for _, r := range class.Referents {
			if r < 0 || int(r) >= len(instances) {
				return nil, rbxbin.ReferentRangeError{Referent: r, ObjectCount: objectCount}
			}
			instances[r] = &rbxbin.Instance{
				Class:      class,
				Referent:   r,
				Properties: make([]rbxbin.PropertyEntry, 0, len(class.Properties)+1),
			}
		}
	}

	// Pass 2: scatter each class's property columns onto its instances,
	// rewriting Referent-kind values into Object-kind values.
	for _, class := range classes {
		for j, r := range class.Referents {
			inst := instances[r]
			for _, prop := range class.Properties {
				v := prop.Values[j]
				if prop.DeclaredKind == rbxbin.KindReferent {
					v = resolveReferent(v, instances)
				}
				inst.Properties = append(inst.Properties, rbxbin.PropertyEntry{Def: prop, Value: v})
			}
		}
	}

	for _, class := range classes {
		for _, prop := range class.Properties {
			if prop.DeclaredKind == rbxbin.KindReferent {
				prop.DeclaredKind = rbxbin.KindObject
			}
		}
	}

	parentOf := make(map[rbxbin.Referent]rbxbin.Referent, len(pairs))
	for _, p := range pairs {
		parentOf[p.child] = p.parent
	}
	parentDef := &rbxbin.PropertyDef{Name: "Parent", DeclaredKind: rbxbin.KindObject}
	for _, inst := range instances {
		if inst == nil {
			continue
		}
		parentRef, ok := parentOf[inst.Referent]
		var parentValue rbxbin.Value = rbxbin.ValueObject{}
		if ok && parentRef >= 0 && int(parentRef) < len(instances) {
			parentValue = rbxbin.ValueObject{Instance: instances[parentRef]}
		}
		inst.Properties = append(inst.Properties, rbxbin.PropertyEntry{Def: parentDef, Value: parentValue})
	}

	return &rbxbin.File{
		Classes:   classes,
		Instances: instances,
	}, nil
}

// resolveReferent rewrites a pre-resolution ValueReferent into a ValueObject
// pointing within instances, or a null ValueObject for the nil referent or
// any referent outside [0, len(instances)).
func resolveReferent(v rbxbin.Value, instances []*rbxbin.Instance) rbxbin.Value {
	ref, ok := v.(rbxbin.ValueReferent)
	if !ok {
		return v
	}
	r := rbxbin.Referent(ref)
	if r < 0 || int(r) >= len(instances) {
		return rbxbin.ValueObject{}
	}
	return rbxbin.ValueObject{Instance: instances[r]}
}
