// Package lens provides composable get/put pairs over immutable state values.
//
// A Lens focuses on one part of a larger value. Get reads the part; Put takes the whole
// value and a function rewriting the part, and returns a new whole value without touching
// the original. Every lens is expected to satisfy three laws, with equality meaning
// state.Equal:
//
//	GetPut: Put(b, func(any) any { return Get(b) }) == b
//	PutGet: Get(Put(b, fn)) == fn(Get(b))
//	PutPut: Put(Put(b, f), g) == Put(b, func(c any) any { return g(f(c)) })
//
// The laws are not checked at runtime. A user lens that breaks them does not fail; it
// silently produces wrong round trips.
//
// Lenses are compared by pointer. The built-ins keyed by an index or a name are interned,
// so ArrayItem(2) == ArrayItem(2) for the life of the process; that identity is what lets
// the link cache recognise a repeated derivation.
package lens

import (
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/goliatone/go-state-link/state"
)

// Lens is a pure getter/updater pair.
type Lens struct {
	id   uint64
	name string
	get  func(base any) any
	put  func(base any, fn func(any) any) any
}

var created atomic.Uint64

// newLens assigns ids at run time. That keeps every lens on the heap, even one built in a
// package level var, which the link cache requires since it holds lenses weakly.
func newLens(name string, get func(base any) any, put func(base any, fn func(any) any) any) *Lens {
	return &Lens{id: created.Add(1), name: name, get: get, put: put}
}

// New creates a lens. The name is used to build readable link paths. A nil get or put
// behaves like the identity lens on that side.
func New(name string, get func(base any) any, put func(base any, fn func(any) any) any) *Lens {
	if get == nil {
		get = func(base any) any { return base }
	}
	if put == nil {
		put = func(base any, fn func(any) any) any { return fn(base) }
	}
	return newLens(name, get, put)
}

// ID returns a process unique number for this lens.
func (l *Lens) ID() uint64 {
	return l.id
}

func (l *Lens) String() string {
	return "lens(" + l.name + ")#" + strconv.FormatUint(l.id, 10)
}

// Name returns the path segment this lens contributes.
func (l *Lens) Name() string {
	return l.name
}

// Get reads the focused part of base.
func (l *Lens) Get(base any) any {
	return l.get(base)
}

// Put rewrites the focused part of base with fn and returns the new whole value.
func (l *Lens) Put(base any, fn func(any) any) any {
	return l.put(base, fn)
}

// Set replaces the focused part of base with v.
func (l *Lens) Set(base, v any) any {
	return l.put(base, func(any) any { return v })
}

// Compose returns a lens focusing through outer and then inner. Applying the result to a
// link is equivalent to applying outer and then inner. It returns nil if either is nil.
func Compose(outer, inner *Lens) *Lens {
	if outer == nil || inner == nil {
		return nil
	}
	return newLens(outer.name+inner.name,
		func(base any) any {
			return inner.get(outer.get(base))
		},
		func(base any, fn func(any) any) any {
			return outer.put(base, func(mid any) any {
				return inner.put(mid, fn)
			})
		},
	)
}

var identity = sync.OnceValue(func() *Lens {
	return newLens("",
		func(base any) any { return base },
		func(base any, fn func(any) any) any { return fn(base) },
	)
})

// Identity returns the lens that focuses on the whole value. It is a singleton.
func Identity() *Lens {
	return identity()
}

var partial = sync.OnceValue(func() *Lens {
	return newLens("|partial",
		func(base any) any { return base },
		func(base any, fn func(any) any) any {
			next := fn(base)
			prev, okPrev := base.(*state.Rec)
			patch, okPatch := next.(*state.Rec)
			if !okPatch || !okPrev {
				return next
			}
			return prev.Merge(patch)
		},
	)
})

// Partial returns a lens whose writes are shallow merged onto the prior record, so an
// updater may return only the fields it changes. A non-record result replaces the value.
// It is a singleton.
func Partial() *Lens {
	return partial()
}

// OnChange returns a lens that routes every write through handler. handler receives the
// prospective new value and the previous one and returns the value actually written.
// Each call allocates a new lens; keep a reference to reuse it.
func OnChange(handler func(next, prev any) any) *Lens {
	return newLens("|onChange",
		func(base any) any { return base },
		func(base any, fn func(any) any) any {
			return handler(fn(base), base)
		},
	)
}
