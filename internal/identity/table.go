package identity

import (
	"context"
	"log/slog"
	"runtime"
	"sync/atomic"
	"weak"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/goliatone/go-state-link/state"
)

// key identifies one derivation. Every axis is held through a weak pointer: weak pointers
// compare equal exactly when they were made from the same object, and keep doing so after
// that object is gone, so a key never aliases a later object reusing the same address.
type key[U, L any] struct {
	value   any // weak.Pointer[state.Seq], weak.Pointer[state.Rec] or weak.Pointer[box]
	updater weak.Pointer[U]
	lens    weak.Pointer[L]
}

// entry holds its result weakly. Go has no ephemerons: a strongly held result that
// references its own keys (a derived link references its parent updater and its lens)
// would pin those keys forever.
type entry[V any] struct {
	result weak.Pointer[V]
}

type reclaimed[U, L, V any] struct {
	key   key[U, L]
	entry *entry[V]
}

// Stats is a point in time view of a Table.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Reclaimed uint64
	Entries   int
}

// Table memoizes results by (value, updater, lens) identity.
//
// Results must keep their updater and lens reachable. Given that, an entry can only
// become useless once its result is unreachable, so a single cleanup attached to the
// result is enough to drop it, and the table never holds more entries than there are
// live results.
type Table[U, L, V any] struct {
	entries *xsync.MapOf[key[U, L], *entry[V]]
	logger  *slog.Logger

	hits      atomic.Uint64
	misses    atomic.Uint64
	reclaimed atomic.Uint64
}

// NewTable creates a weak identity table.
func NewTable[U, L, V any](cfg Config) (*Table[U, L, V], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var options []func(*xsync.MapConfig)
	if cfg.Presize > 0 {
		options = append(options, xsync.WithPresize(cfg.Presize))
	}

	return &Table[U, L, V]{
		entries: xsync.NewMapOf[key[U, L], *entry[V]](options...),
		logger:  logger,
	}, nil
}

// GetOrCreate returns the live result stored for (value, updater, lens), or calls build and
// stores its result. Values that cannot be keyed (incomparable opaque scalars), nil
// updaters and nil lenses are never stored: build runs on every call.
//
// build runs outside any table lock and may itself call GetOrCreate.
func (t *Table[U, L, V]) GetOrCreate(value any, updater *U, lens *L, build func() *V) *V {
	vk, ok := valueKey(value)
	if !ok || updater == nil || lens == nil {
		t.misses.Add(1)
		return build()
	}
	k := key[U, L]{value: vk, updater: weak.Make(updater), lens: weak.Make(lens)}

	if e, ok := t.entries.Load(k); ok {
		if v := e.result.Value(); v != nil {
			t.hits.Add(1)
			return v
		}
	}

	fresh := build()
	if fresh == nil {
		t.misses.Add(1)
		return nil
	}

	var (
		out     *V
		created *entry[V]
	)
	t.entries.Compute(k, func(cur *entry[V], loaded bool) (*entry[V], bool) {
		if loaded {
			if v := cur.result.Value(); v != nil {
				// lost a race with another builder
				out = v
				return cur, false
			}
		}
		out = fresh
		created = &entry[V]{result: weak.Make(fresh)}
		return created, false
	})

	if created == nil {
		t.hits.Add(1)
		return out
	}

	t.misses.Add(1)
	runtime.AddCleanup(out, t.reclaim, reclaimed[U, L, V]{key: k, entry: created})

	if t.logger.Enabled(context.Background(), slog.LevelDebug) {
		t.logger.Debug("identity cache miss",
			"shape", state.ShapeOf(value).String(),
			"entries", t.entries.Size(),
		)
	}
	return out
}

// reclaim drops an entry once its result has been collected, unless the slot was
// already refilled with a newer entry.
func (t *Table[U, L, V]) reclaim(r reclaimed[U, L, V]) {
	removed := false
	t.entries.Compute(r.key, func(cur *entry[V], loaded bool) (*entry[V], bool) {
		if !loaded {
			return nil, true
		}
		if cur == r.entry {
			removed = true
			return nil, true
		}
		return cur, false
	})

	if removed {
		t.reclaimed.Add(1)
		t.logger.Debug("identity cache entry reclaimed", "entries", t.entries.Size())
	}
}

// Len returns the number of stored entries, live or awaiting reclamation.
func (t *Table[U, L, V]) Len() int {
	return t.entries.Size()
}

// Stats returns hit/miss/reclaim counters and the current entry count.
func (t *Table[U, L, V]) Stats() Stats {
	return Stats{
		Hits:      t.hits.Load(),
		Misses:    t.misses.Load(),
		Reclaimed: t.reclaimed.Load(),
		Entries:   t.entries.Size(),
	}
}

// valueKey maps a state value to its key axis: nodes by weak pointer, scalars by the weak
// pointer of their interned box.
func valueKey(v any) (any, bool) {
	switch n := v.(type) {
	case *state.Seq:
		return weak.Make(n), true
	case *state.Rec:
		return weak.Make(n), true
	}
	b, ok := intern(v)
	if !ok {
		return nil, false
	}
	return weak.Make(b), true
}
