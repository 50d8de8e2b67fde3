package rbxl

import "math"

// negZero is IEEE-754 negative zero, used so the short-form rotation table
// below matches the on-disk matrices bit for bit rather than merely
// numerically.
var negZero = float32(math.Copysign(0, -1))

// shortFormRotation maps a CFrame's per-instance rotation tag (0x02-0x23) to
// the 3x3 row-major matrix it stands for. Ported from the lookup table
// rbxfile's rbxl.cframeSpecialMatrix derives (via matrixFromID) from the
// orientation ID scheme Roblox uses to special-case the 24 axis-aligned
// rotations; unassigned tags in [0x02, 0x23] are not valid orientations and
// decode as BadCFrameTagError.
var shortFormRotation = map[byte][9]float32{
	0x02: {+1, +0, +0, +0, +1, +0, +0, +0, +1},
	0x03: {+1, +0, +0, +0, +0, -1, +0, +1, +0},
	0x05: {+1, +0, +0, +0, -1, +0, +0, +0, -1},
	0x06: {+1, +0, negZero, +0, +0, +1, +0, -1, +0},
	0x07: {+0, +1, +0, +1, +0, +0, +0, +0, -1},
	0x09: {+0, +0, +1, +1, +0, +0, +0, +1, +0},
	0x0A: {+0, -1, +0, +1, +0, negZero, +0, +0, +1},
	0x0C: {+0, +0, -1, +1, +0, +0, +0, -1, +0},
	0x0D: {+0, +1, +0, +0, +0, +1, +1, +0, +0},
	0x0E: {+0, +0, -1, +0, +1, +0, +1, +0, +0},
	0x10: {+0, -1, +0, +0, +0, -1, +1, +0, +0},
	0x11: {+0, +0, +1, +0, -1, +0, +1, +0, negZero},
	0x14: {-1, +0, +0, +0, +1, +0, +0, +0, -1},
	0x15: {-1, +0, +0, +0, +0, +1, +0, +1, negZero},
	0x17: {-1, +0, +0, +0, -1, +0, +0, +0, +1},
	0x18: {-1, +0, negZero, +0, +0, -1, +0, -1, negZero},
	0x19: {+0, +1, negZero, -1, +0, +0, +0, +0, +1},
	0x1B: {+0, +0, -1, -1, +0, +0, +0, +1, +0},
	0x1C: {+0, -1, negZero, -1, +0, negZero, +0, +0, -1},
	0x1E: {+0, +0, +1, -1, +0, +0, +0, -1, +0},
	0x1F: {+0, +1, +0, +0, +0, -1, -1, +0, +0},
	0x20: {+0, +0, +1, +0, +1, negZero, -1, +0, +0},
	0x22: {+0, -1, +0, +0, +0, +1, -1, +0, +0},
	0x23: {+0, +0, -1, +0, -1, negZero, -1, +0, negZero},
}
