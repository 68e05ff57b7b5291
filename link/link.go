package link

import (
	"fmt"

	"github.com/goliatone/go-state-link/cache"
	"github.com/goliatone/go-state-link/lens"
	"github.com/goliatone/go-state-link/state"
)

// Link is a read/write handle over one value of a state tree.
//
// A link is a snapshot: Value never changes. Writes go through the updater and surface
// as a new root value, from which new links are derived.
type Link struct {
	value  any
	name   string
	update *Updater
	memo   cache.Memo[Updater, lens.Lens, Link]

	// at most one is set, chosen from the shape of value when the link is built
	seq *sequenceOps
	rec *recordOps
}

// New creates a root link over value. Writes are handed to updater. Plain Go slices and
// string keyed maps are converted with state.From first, so they navigate as sequences and
// records.
//
// With a memo, the root itself is memoized under (value, updater, lens.Identity()), so
// two calls with the same value and updater return the same *Link. The name is not part
// of the key: the first name wins.
func New(value any, updater *Updater, opts ...Option) *Link {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	value = state.From(value)
	return cache.Derive(o.memo, value, updater, lens.Identity(), func() *Link {
		return build(value, o.name, updater, o.memo)
	})
}

func build(value any, name string, updater *Updater, memo cache.Memo[Updater, lens.Lens, Link]) *Link {
	l := &Link{
		value:  value,
		name:   name,
		update: updater,
		memo:   memo,
	}

	switch v := value.(type) {
	case *state.Seq:
		l.seq = &sequenceOps{items: v}
	case *state.Rec:
		l.rec = &recordOps{fields: v}
	}
	return l
}

// Value returns the snapshot this link was built from.
func (l *Link) Value() any {
	if l == nil {
		return nil
	}
	return l.value
}

// Name returns the path of this link from its root, built from the root name and lens
// names, for example "app.todos[2].title".
func (l *Link) Name() string {
	if l == nil {
		return ""
	}
	return l.name
}

// Shape reports which capability set this link carries.
func (l *Link) Shape() state.Shape {
	switch {
	case l == nil:
		return state.ShapeScalar
	case l.seq != nil:
		return state.ShapeSequence
	case l.rec != nil:
		return state.ShapeRecord
	default:
		return state.ShapeScalar
	}
}

// Updater returns the updater writes are sent to.
func (l *Link) Updater() *Updater {
	if l == nil {
		return nil
	}
	return l.update
}

// Set replaces the value.
func (l *Link) Set(v any) {
	l.Update(func(any) any { return v })
}

// Update rewrites the value with fn. The current value passed to fn is the one the
// updater resolves at write time, not necessarily Value(). The result goes through
// state.From, so a plain []any or map[string]any is stored as a node.
func (l *Link) Update(fn func(current any) any) {
	if l == nil || fn == nil {
		return
	}
	l.update.Update(func(current any) any {
		return state.From(fn(current))
	})
}

// Apply derives the link focused by ln. Writes to the child are put back through ln and
// forwarded to this link's updater.
func (l *Link) Apply(ln *lens.Lens) *Link {
	if l == nil || ln == nil {
		return nil
	}

	return cache.Derive(l.memo, l.value, l.update, ln, func() *Link {
		parent := l.update
		child := NewUpdater(func(m Mutator) {
			parent.Update(func(base any) any {
				return ln.Put(state.From(base), m)
			})
		})
		return build(ln.Get(l.value), l.name+ln.Name(), child, l.memo)
	})
}

func (l *Link) String() string {
	if l == nil {
		return "<nil link>"
	}
	name := l.name
	if name == "" {
		name = "$"
	}
	return fmt.Sprintf("%s=%v", name, l.value)
}

// ValueAs returns the link value as T.
func ValueAs[T any](l *Link) (T, bool) {
	v, ok := l.Value().(T)
	return v, ok
}
