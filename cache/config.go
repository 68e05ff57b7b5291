package cache

import (
	"log/slog"

	"github.com/goliatone/go-state-link/internal/identity"
)

// Config exposes memo configuration options for consumers of the cache package.
type Config struct {
	// Disabled turns the memo into a pass-through. Links still work; re-deriving the
	// same child just yields a new *Link every time.
	Disabled bool
	Presize  int
	Logger   *slog.Logger
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() Config {
	return convertFromInternal(identity.DefaultConfig())
}

// Validate checks whether the configuration values are valid.
func (c Config) Validate() error {
	return c.toInternal().Validate()
}

// New constructs the default weak identity memo using the provided configuration.
func New[U, L, V any](cfg Config) (Memo[U, L, V], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Disabled {
		return Nop[U, L, V](), nil
	}

	table, err := identity.NewTable[U, L, V](cfg.toInternal())
	if err != nil {
		return nil, err
	}
	return &weakMemo[U, L, V]{table: table}, nil
}

func (c Config) toInternal() identity.Config {
	return identity.Config{
		Presize: c.Presize,
		Logger:  c.Logger,
	}
}

func convertFromInternal(cfg identity.Config) Config {
	return Config{
		Presize: cfg.Presize,
		Logger:  cfg.Logger,
	}
}
