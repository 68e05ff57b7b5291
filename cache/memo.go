package cache

import (
	"sync/atomic"

	"github.com/goliatone/go-state-link/internal/identity"
)

// Memo memoizes derived results by the identity of a (value, updater, lens) triple.
//
// Values are compared by node identity for sequences and records and by equality for
// scalars; updaters and lenses by pointer. Entries are never invalidated: they disappear
// on their own once nothing can observe them.
type Memo[U, L, V any] interface {
	GetOrCreate(value any, updater *U, lens *L, build func() *V) *V
	Stats() Stats
}

// Stats reports memo activity. Reclaimed counts entries dropped after their result was
// garbage collected.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Reclaimed uint64
	Entries   int
}

// Derive looks up the triple in memo, building on a miss. A nil memo always builds.
func Derive[U, L, V any](memo Memo[U, L, V], value any, updater *U, lens *L, build func() *V) *V {
	if memo == nil {
		return build()
	}
	return memo.GetOrCreate(value, updater, lens, build)
}

// InternedScalars reports how many distinct scalars have been boxed for use as keys.
// The table backing it never shrinks.
func InternedScalars() int {
	return identity.InternedScalars()
}

type weakMemo[U, L, V any] struct {
	table *identity.Table[U, L, V]
}

func (m *weakMemo[U, L, V]) GetOrCreate(value any, updater *U, lens *L, build func() *V) *V {
	return m.table.GetOrCreate(value, updater, lens, build)
}

func (m *weakMemo[U, L, V]) Stats() Stats {
	s := m.table.Stats()
	return Stats{
		Hits:      s.Hits,
		Misses:    s.Misses,
		Reclaimed: s.Reclaimed,
		Entries:   s.Entries,
	}
}

// Nop returns a Memo that never stores anything: every lookup builds.
func Nop[U, L, V any]() Memo[U, L, V] {
	return &nopMemo[U, L, V]{}
}

type nopMemo[U, L, V any] struct {
	misses atomic.Uint64
}

func (m *nopMemo[U, L, V]) GetOrCreate(_ any, _ *U, _ *L, build func() *V) *V {
	m.misses.Add(1)
	return build()
}

func (m *nopMemo[U, L, V]) Stats() Stats {
	return Stats{Misses: m.misses.Load()}
}
