package link

import (
	"strconv"
	"sync/atomic"
)

// Mutator computes a new value from the current one.
type Mutator func(current any) any

// Updater applies mutators to the value it manages. Its identity is its pointer: two
// updaters wrapping the same function are still distinct cache keys.
type Updater struct {
	id    uint64
	apply func(Mutator)
}

var updaters atomic.Uint64

// NewUpdater wraps apply. The id is assigned at run time so the updater always lives on
// the heap, where the memo can point at it weakly.
func NewUpdater(apply func(Mutator)) *Updater {
	return &Updater{id: updaters.Add(1), apply: apply}
}

// Update hands m to the wrapped function. A nil updater or mutator is a no-op.
func (u *Updater) Update(m Mutator) {
	if u == nil || u.apply == nil || m == nil {
		return
	}
	u.apply(m)
}

// ID returns a process unique number for this updater.
func (u *Updater) ID() uint64 {
	if u == nil {
		return 0
	}
	return u.id
}

func (u *Updater) String() string {
	return "updater#" + strconv.FormatUint(u.ID(), 10)
}
