package link

import (
	"github.com/goliatone/go-state-link/cache"
	"github.com/goliatone/go-state-link/lens"
)

// Option configures a root link.
type Option func(*options)

type options struct {
	name string
	memo cache.Memo[Updater, lens.Lens, Link]
}

// WithName prefixes every path derived from the root.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithMemo makes the root and every link derived from it go through memo, which is
// what gives repeated derivations a stable identity. A nil memo disables memoization.
func WithMemo(memo cache.Memo[Updater, lens.Lens, Link]) Option {
	return func(o *options) {
		o.memo = memo
	}
}

// NewMemo builds a memo for links.
func NewMemo(cfg cache.Config) (cache.Memo[Updater, lens.Lens, Link], error) {
	return cache.New[Updater, lens.Lens, Link](cfg)
}
