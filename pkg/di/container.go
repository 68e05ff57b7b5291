package di

import (
	"log/slog"

	"github.com/goliatone/go-state-link/cache"
	"github.com/goliatone/go-state-link/host"
	"github.com/goliatone/go-state-link/lens"
	"github.com/goliatone/go-state-link/link"
)

// Container provides dependency injection for link related components.
// It manages the singleton memo and logger shared by every store and bound link it
// creates, so links handed out by different stores are memoized in one place.
type Container struct {
	memo   cache.Memo[link.Updater, lens.Lens, link.Link]
	logger *slog.Logger
	config cache.Config
}

// NewContainer creates a new DI container with the provided memo configuration.
// A nil config Logger falls back to slog.Default().
func NewContainer(config cache.Config) (*Container, error) {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	config.Logger = logger

	memo, err := link.NewMemo(config)
	if err != nil {
		return nil, err
	}

	return &Container{
		memo:   memo,
		logger: logger,
		config: config,
	}, nil
}

// NewContainerWithDefaults creates a new DI container using default configuration.
// This is a convenience constructor for typical use cases where custom configuration
// is not required.
func NewContainerWithDefaults() (*Container, error) {
	return NewContainer(cache.DefaultConfig())
}

// Memo returns the singleton memo instance.
func (c *Container) Memo() cache.Memo[link.Updater, lens.Lens, link.Link] {
	return c.memo
}

// Logger returns the logger handed to stores.
func (c *Container) Logger() *slog.Logger {
	return c.logger
}

// Config returns a copy of the memo configuration used by this container.
// This is useful for debugging and monitoring purposes.
func (c *Container) Config() cache.Config {
	return c.config
}

// NewStore creates a store wired to the container memo and logger. Options given here
// are applied after the container defaults and may override them.
func (c *Container) NewStore(initial any, opts ...host.Option) *host.Store {
	base := []host.Option{host.WithMemo(c.memo), host.WithLogger(c.logger)}
	return host.NewStore(initial, append(base, opts...)...)
}

// Bind builds a root link for a (value, setter) pair, memoized through the container.
func (c *Container) Bind(value any, setter func(any), opts ...link.Option) *link.Link {
	return host.Bind(value, setter, append([]link.Option{link.WithMemo(c.memo)}, opts...)...)
}

// Link builds a root link over value and updater, memoized through the container.
func (c *Container) Link(value any, updater *link.Updater, opts ...link.Option) *link.Link {
	return link.New(value, updater, append([]link.Option{link.WithMemo(c.memo)}, opts...)...)
}
