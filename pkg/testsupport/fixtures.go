package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-state-link/state"
)

// LoadFixture loads test data from a fixture file.
// The path is relative to the test package directory.
func LoadFixture(t testing.TB, path string) []byte {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to load fixture from %s: %v", path, err)
	}

	return data
}

// ParseState decodes a state value, choosing the codec by file extension:
// .json, or .yaml/.yml. Record key order follows the document.
func ParseState(path string, data []byte) (any, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return state.ParseJSON(data)
	case ".yaml", ".yml":
		return state.ParseYAML(data)
	default:
		return nil, &FixtureError{Path: path, Message: "unknown fixture extension"}
	}
}

// LoadState loads a JSON or YAML fixture as a state value.
func LoadState(t testing.TB, path string) any {
	t.Helper()

	v, err := ParseState(path, LoadFixture(t, path))
	if err != nil {
		t.Fatalf("failed to parse state fixture %s: %v", path, err)
	}

	return v
}

// LoadGolden loads expected test output from a golden file.
// The path is relative to the test package directory.
func LoadGolden(t testing.TB, path string) []byte {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to load golden file from %s: %v", path, err)
	}

	return data
}

// WriteGolden writes test output to a golden file.
// This should typically only be called when updating golden files.
// The path is relative to the test package directory.
func WriteGolden(t testing.TB, path string, data []byte) {
	t.Helper()

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create directory %s: %v", dir, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write golden file to %s: %v", path, err)
	}
}

// RenderState encodes a state value as indented JSON with a trailing newline, the format
// golden files are stored in.
func RenderState(t testing.TB, v any) []byte {
	t.Helper()

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		t.Fatalf("failed to render state: %v", err)
	}

	return append(data, '\n')
}

// CompareWithGolden compares actual data with expected data from a golden file.
// If the golden file doesn't exist, it creates one with the actual data.
func CompareWithGolden(t testing.TB, path string, actual []byte) {
	t.Helper()

	expected, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Logf("Golden file %s does not exist, creating it", path)
			WriteGolden(t, path, actual)
			return
		}
		t.Fatalf("failed to read golden file %s: %v", path, err)
	}

	if string(actual) != string(expected) {
		t.Errorf("output mismatch for %s:\nExpected:\n%s\nActual:\n%s", path, expected, actual)
	}
}

// CompareStateWithGolden renders v and compares it with a golden file.
func CompareStateWithGolden(t testing.TB, path string, v any) {
	t.Helper()
	CompareWithGolden(t, path, RenderState(t, v))
}

// AssertStateEqual fails the test when want and got are not structurally equal,
// printing both as JSON.
func AssertStateEqual(t testing.TB, want, got any) {
	t.Helper()

	if state.Equal(want, got) {
		return
	}
	t.Errorf("state mismatch:\nExpected:\n%s\nActual:\n%s", RenderState(t, want), RenderState(t, got))
}

// FixturePath constructs a path to a fixture file relative to the testdata directory.
func FixturePath(filename string) string {
	return filepath.Join("testdata", filename)
}

// GoldenPath constructs a path to a golden file relative to the testdata directory.
func GoldenPath(filename string) string {
	return filepath.Join("testdata", "golden", filename)
}

// FixtureError reports a fixture that cannot be decoded.
type FixtureError struct {
	Path    string
	Message string
}

// Error implements the error interface.
func (e *FixtureError) Error() string {
	return "fixture error in " + e.Path + ": " + e.Message
}
