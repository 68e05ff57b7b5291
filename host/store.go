package host

import (
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/goliatone/go-state-link/cache"
	"github.com/goliatone/go-state-link/lens"
	"github.com/goliatone/go-state-link/link"
	"github.com/goliatone/go-state-link/state"
)

// Listener is called after every commit with the new value and its version.
type Listener func(value any, version uint64)

// Option configures a Store.
type Option func(*Store)

// WithMemo sets the memo root links are derived through. Stores share nothing by
// default: each one gets its own memo.
func WithMemo(memo cache.Memo[link.Updater, lens.Lens, link.Link]) Option {
	return func(s *Store) {
		s.memo = memo
		s.memoSet = true
	}
}

// WithLogger sets the logger. Nil falls back to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithName sets the root name of every link the store hands out.
func WithName(name string) Option {
	return func(s *Store) {
		s.name = name
	}
}

// WithDedup skips commits whose value is structurally equal to the current one.
func WithDedup() Option {
	return func(s *Store) {
		s.dedup = true
	}
}

type subscription struct {
	id string
	fn Listener
}

type event struct {
	value   any
	version uint64
}

// Store holds a root value and hands out links over it.
type Store struct {
	id      string
	name    string
	logger  *slog.Logger
	memo    cache.Memo[link.Updater, lens.Lens, link.Link]
	memoSet bool
	dedup   bool

	mu          sync.Mutex
	value       any
	version     uint64
	fingerprint uint64
	updater     *link.Updater
	subs        []subscription
	pending     []event
	notifying   bool
}

// NewStore creates a store holding initial, converted with state.From.
func NewStore(initial any, opts ...Option) *Store {
	s := &Store{
		id:    uuid.NewString(),
		value: state.From(initial),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = slog.Default()
	}
	s.logger = s.logger.With("storeID", s.id)

	if !s.memoSet {
		cfg := cache.DefaultConfig()
		cfg.Logger = s.logger
		memo, err := link.NewMemo(cfg)
		if err != nil {
			s.logger.Error("memo disabled", "error", err)
		}
		s.memo = memo
	}

	if s.dedup {
		s.fingerprint = state.Fingerprint(s.value)
	}
	return s
}

// ID returns the unique id of this store.
func (s *Store) ID() string {
	return s.id
}

// Get returns the current value.
func (s *Store) Get() any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Version returns the number of commits so far.
func (s *Store) Version() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

// Set replaces the value. Like the initial value, v goes through state.From.
func (s *Store) Set(v any) {
	s.write(func(any) any { return v }, 0, false)
}

// Update replaces the value with m applied to the current one.
func (s *Store) Update(m link.Mutator) {
	if m == nil {
		return
	}
	s.write(m, 0, false)
}

// Hook returns the current value and a setter, the pair a UI state hook provides.
func (s *Store) Hook() (any, func(any)) {
	return s.Get(), s.Set
}

// Link returns the root link over the current value. Between two commits it returns the
// same *Link, and derived links keep their identity too.
func (s *Store) Link() *link.Link {
	s.mu.Lock()
	value := s.value
	if s.updater == nil {
		from := s.version
		s.updater = link.NewUpdater(func(m link.Mutator) {
			s.write(m, from, true)
		})
	}
	u := s.updater
	s.mu.Unlock()

	return link.New(value, u, link.WithMemo(s.memo), link.WithName(s.name))
}

// Subscribe registers fn for commits and returns a function removing it.
func (s *Store) Subscribe(fn Listener) func() {
	if fn == nil {
		return func() {}
	}

	id := uuid.NewString()
	s.mu.Lock()
	s.subs = append(s.subs, subscription{id: id, fn: fn})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.subs = slices.DeleteFunc(s.subs, func(sub subscription) bool {
			return sub.id == id
		})
	}
}

// write runs m outside the lock, then commits its result. pinned writes come from a link
// handed out at version from.
func (s *Store) write(m link.Mutator, from uint64, pinned bool) {
	s.mu.Lock()
	current, version := s.value, s.version
	s.mu.Unlock()

	if pinned && from != version {
		s.logger.Warn("stale write applied to live value",
			"fromVersion", from,
			"version", version,
		)
	}

	next := state.From(m(current))

	s.mu.Lock()
	if s.version != version {
		s.logger.Warn("concurrent commit overwritten",
			"version", version,
			"currentVersion", s.version,
		)
	}

	if state.Same(next, s.value) {
		s.mu.Unlock()
		return
	}

	var fp uint64
	if s.dedup {
		fp = state.Fingerprint(next)
		if fp == s.fingerprint && state.Equal(next, s.value) {
			s.mu.Unlock()
			s.logger.Debug("commit skipped, value unchanged", "version", version)
			return
		}
	}

	s.value = next
	s.version++
	s.fingerprint = fp
	s.updater = nil
	s.pending = append(s.pending, event{value: next, version: s.version})
	s.logger.Debug("commit", "version", s.version, "shape", state.ShapeOf(next).String())

	if s.notifying {
		s.mu.Unlock()
		return
	}
	s.notifying = true
	s.mu.Unlock()

	s.drain()
}

// drain delivers pending events in commit order, one round of listeners per event.
// Events queued by listeners are picked up by the same loop.
func (s *Store) drain() {
	done := false
	defer func() {
		// a panicking listener must not leave the store believing it is still notifying
		if !done {
			s.mu.Lock()
			s.notifying = false
			s.mu.Unlock()
		}
	}()

	for {
		s.mu.Lock()
		if len(s.pending) == 0 {
			s.notifying = false
			s.mu.Unlock()
			done = true
			return
		}
		ev := s.pending[0]
		s.pending = s.pending[1:]
		subs := slices.Clone(s.subs)
		s.mu.Unlock()

		for _, sub := range subs {
			sub.fn(ev.value, ev.version)
		}
	}
}
