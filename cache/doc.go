// Package cache memoizes derived links by identity.
//
// # Overview
//
// Deriving a child link from the same parent value, through the same updater, with the
// same lens must return the same *Link, so that consumers comparing by reference (render
// skipping, memoized callbacks) see a stable object. This package exports:
//
//   - Memo: the memo interface consulted by the link package on every derivation
//   - New: the default implementation, a weak identity table
//   - Nop: a pass-through used when memoization is disabled
//
// # Basic Usage
//
// The link package builds its own memo type; most callers only pick a configuration:
//
//	memo, err := link.NewMemo(cache.DefaultConfig())
//	root := link.New(value, updater, link.WithMemo(memo))
//
// # Keys
//
// A key is the triple (value, updater, lens):
//
//   - Sequences and records: node identity, held through a weak pointer
//   - Scalars: equality. Each distinct scalar is boxed once in a process wide intern table
//     and the box is held weakly
//   - Updaters and lenses: pointer identity, held weakly
//
// Incomparable opaque scalars (byte slices, funcs or structs holding them) and NaN cannot
// be keyed. Lookups for them always build and store nothing.
//
// # Lifetime
//
// There is no invalidation API. Results are held weakly and each entry is dropped when its
// result is garbage collected. Old state values are never retained by the memo.
//
// The scalar intern table only grows. Its size is bounded by the number of distinct scalar
// values ever used as keys, which InternedScalars reports.
//
// # Concurrency
//
// Memos are safe for concurrent use. The build function runs outside any lock.
package cache
