package host

import (
	"github.com/goliatone/go-state-link/link"
	"github.com/goliatone/go-state-link/state"
)

// RootUpdater adapts a setter into an updater. Mutators always receive value, the value
// the pair was obtained with, and the result is handed to setter. Both pass through
// state.From, so plain slices and maps reach mutators and the setter as nodes.
func RootUpdater(value any, setter func(any)) *link.Updater {
	value = state.From(value)
	return link.NewUpdater(func(m link.Mutator) {
		if setter == nil {
			return
		}
		setter(state.From(m(value)))
	})
}

// Bind builds the root link for a (value, setter) pair. value may be any shape; plain
// slices and string keyed maps are converted to nodes.
func Bind(value any, setter func(any), opts ...link.Option) *link.Link {
	value = state.From(value)
	return link.New(value, RootUpdater(value, setter), opts...)
}
