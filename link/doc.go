// Package link builds navigable read/write handles over immutable state trees.
//
// # Overview
//
// A root link pairs a state value with an Updater, the function that replaces the whole
// value. Navigating from a link derives a child link for a nested part of the value; the
// child's writes are put back through a lens and forwarded up until they reach the root
// updater, which produces a new root value.
//
//	u := link.NewUpdater(func(m link.Mutator) { root = m(root) })
//	todos := link.New(root, u).Prop("todos")
//	todos.Item(0).Prop("done").Set(true)
//
// The original value is never modified. Observing the write means building a new root
// link from the new value.
//
// # Capabilities
//
// Every link supports Value, Set, Update and Apply. The remaining operations depend on the
// shape of the value, decided once when the link is built:
//
//   - *state.Seq: Len, Item, Items, Find, FindIndex, ApplyItems and MapItems
//   - *state.Rec: Prop, Props and Keys
//   - anything else is a scalar
//
// Plain []any, other slices and arrays, and maps with string keys are converted with
// state.From when a root is built and whenever a write stores them, so they get the
// sequence and record capabilities too. []byte stays a scalar.
//
// Calling an operation of the wrong shape is not an error. Items returns an empty slice,
// Props an empty map, and Item, Find and Prop return nil. All methods accept a nil
// receiver, so chains such as link.Prop("a").Item(3).Prop("b").Set(x) degrade to a no-op
// instead of panicking. A *Link stored inside a state value is a scalar like any other
// opaque value.
//
// # Identity
//
// With WithMemo, deriving the same child twice from the same value, updater and lens
// returns the same *Link:
//
//	memo, _ := link.NewMemo(cache.DefaultConfig())
//	root := link.New(value, u, link.WithMemo(memo))
//	root.Prop("x") == root.Prop("x")          // true
//	root.Props()["x"] == root.Prop("x")       // true
//
// After a write, the new root usually comes with a new updater, so every child is derived
// again even when its part of the value did not change. Identity across root values is
// not guaranteed.
//
// # Find
//
// Find pins the returned link to the index of the first match. The predicate is not
// evaluated again on write.
package link
