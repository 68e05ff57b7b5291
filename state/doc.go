// Package state defines the immutable values a link tree projects over.
//
// # Overview
//
// A state value is one of:
//
//   - nil, standing for an absent (undefined) or null value
//   - a scalar: bool, string, any Go numeric type, or any other opaque Go value
//   - a *Seq: an ordered sequence of state values
//   - a *Rec: a string keyed record of state values, iterated in insertion order
//
// Nodes are never modified after construction. Every "write" method (With, Without,
// Append, Remove, Merge) returns a new node that shares every untouched child with the
// receiver, and returns the receiver itself when the write would not change anything.
// That last rule is what lets a lens satisfy GetPut by identity rather than just by
// structural equality, and it keeps link identities stable across no-op writes.
//
// # Building values
//
//	todos := state.SeqOf(
//		state.RecordOf("id", 1, "title", "write docs", "done", false),
//		state.RecordOf("id", 2, "title", "ship it", "done", false),
//	)
//
// Plain Go values (for example the output of encoding/json into an any) are converted with
// From, which deep converts []any and map[string]any. Raw Go maps have no order, so From
// sorts their keys.
//
// # Identity and equality
//
// Same reports identity: node pointer equality, or == for comparable scalars. Equal reports
// structural equality, comparing numbers by value and ignoring record key order.
// Fingerprint computes a stable xxhash digest consistent with Equal.
//
// # Codecs
//
// Nodes implement json.Marshaler, yaml.Marshaler and msgpack.CustomEncoder. ParseJSON,
// ParseYAML and UnmarshalMsgpack decode bytes back into nodes, keeping record key order.
package state
