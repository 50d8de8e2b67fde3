// Package rbxbin implements the in-memory object model produced by decoding
// a Roblox binary place/model file (the `<roblox!` container format).
//
// The model is built by the rbxl subpackage's Decoder; this package only
// describes the shape of the result: classes, instances, typed properties,
// and the resolved parent/child relation. It defines no decoding logic of
// its own.
package rbxbin
