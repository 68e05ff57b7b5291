package di

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/goliatone/go-state-link/cache"
	"github.com/goliatone/go-state-link/host"
	"github.com/goliatone/go-state-link/link"
	"github.com/goliatone/go-state-link/state"
)

func TestNewContainer(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	config := cache.Config{
		Presize: 64,
		Logger:  logger,
	}

	container, err := NewContainer(config)
	if err != nil {
		t.Fatalf("NewContainer() failed: %v", err)
	}

	if container == nil {
		t.Fatal("NewContainer() returned nil container")
	}

	// Verify that dependencies are properly initialized
	if container.Memo() == nil {
		t.Error("Container should have a non-nil memo")
	}

	if container.Logger() != logger {
		t.Error("Container should use the configured logger")
	}

	// Verify config is stored correctly
	storedConfig := container.Config()
	if storedConfig.Presize != config.Presize {
		t.Errorf("Expected presize %d, got %d", config.Presize, storedConfig.Presize)
	}
}

func TestNewContainerWithDefaults(t *testing.T) {
	container, err := NewContainerWithDefaults()
	if err != nil {
		t.Fatalf("NewContainerWithDefaults() failed: %v", err)
	}

	if container == nil {
		t.Fatal("NewContainerWithDefaults() returned nil container")
	}

	// Verify that default configuration is used
	config := container.Config()
	defaultConfig := cache.DefaultConfig()

	if config.Presize != defaultConfig.Presize {
		t.Errorf("Expected default presize %d, got %d", defaultConfig.Presize, config.Presize)
	}

	if container.Logger() == nil {
		t.Error("Expected logger to fall back to slog.Default()")
	}
}

func TestNewContainer_InvalidConfig(t *testing.T) {
	invalidConfig := cache.Config{
		Presize: -1, // Invalid: must be non-negative
	}

	_, err := NewContainer(invalidConfig)
	if err == nil {
		t.Error("NewContainer() should fail with invalid config")
	}

	if err != nil && !strings.Contains(err.Error(), "Presize") {
		t.Errorf("expected error to name the field, got %q", err.Error())
	}
}

func TestNewContainer_Disabled(t *testing.T) {
	container, err := NewContainer(cache.Config{Disabled: true})
	if err != nil {
		t.Fatalf("NewContainer() failed: %v", err)
	}

	value := state.RecordOf("x", 1)
	u := link.NewUpdater(func(link.Mutator) {})

	if container.Link(value, u) == container.Link(value, u) {
		t.Error("a disabled memo should not give links identity")
	}
}

func TestContainerSingletonBehavior(t *testing.T) {
	container, err := NewContainerWithDefaults()
	if err != nil {
		t.Fatalf("NewContainerWithDefaults() failed: %v", err)
	}

	// Call getters multiple times to ensure they return the same instances
	memo1 := container.Memo()
	memo2 := container.Memo()

	if memo1 != memo2 {
		t.Error("Memo() should return the same instance (singleton behavior)")
	}

	value := state.RecordOf("x", 1)
	u := link.NewUpdater(func(link.Mutator) {})

	if container.Link(value, u) != container.Link(value, u) {
		t.Error("Link() should memoize through the container memo")
	}
}

func TestContainerNewStore(t *testing.T) {
	container, err := NewContainerWithDefaults()
	if err != nil {
		t.Fatalf("NewContainerWithDefaults() failed: %v", err)
	}

	store := container.NewStore(map[string]any{"title": "draft"}, host.WithName("doc"))
	root := store.Link()

	if root.Name() != "doc" {
		t.Errorf("expected store options to apply, got name %q", root.Name())
	}

	before := container.Memo().Stats().Entries
	title := root.Prop("title")
	if after := container.Memo().Stats().Entries; after != before+1 {
		t.Errorf("expected the store to derive through the container memo, entries %d -> %d", before, after)
	}

	title.Set("final")
	if got := store.Get().(*state.Rec).Value("title"); got != "final" {
		t.Errorf("expected title to be final, got %v", got)
	}
}

func TestContainerBind(t *testing.T) {
	container, err := NewContainerWithDefaults()
	if err != nil {
		t.Fatalf("NewContainerWithDefaults() failed: %v", err)
	}

	value := state.SeqOf("a", "b")
	var got any
	root := container.Bind(value, func(v any) { got = v }, link.WithName("list"))

	if root.Item(0) != root.Item(0) {
		t.Error("expected bound links to be memoized")
	}

	root.Item(1).Set("B")
	if !state.Equal(state.SeqOf("a", "B"), got) {
		t.Errorf("expected [a B], got %v", got)
	}
}
