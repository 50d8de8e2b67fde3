package rbxbin

import "strconv"

// Referent is a stable identifier for an Instance, unique within a File.
// NilReferent denotes the absence of an object.
type Referent int32

// NilReferent is the sentinel referent meaning "no object".
const NilReferent Referent = -1

// IsNil reports whether r is the nil referent.
func (r Referent) IsNil() bool {
	return r == NilReferent
}

func (r Referent) String() string {
	if r.IsNil() {
		return "<nil>"
	}
	return strconv.FormatInt(int64(r), 10)
}
