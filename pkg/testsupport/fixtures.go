// Package testsupport provides fixture loaders, golden helpers, and a
// recording block collaborator shared by the package tests.
package testsupport

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-blockgen/pkg/blockdef"
)

// MustLoadDefinitions parses a JSON definition fixture.
func MustLoadDefinitions(t *testing.T, path string) []blockdef.Definition {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("load fixture: %v", err)
	}
	defs, err := blockdef.ParseDefinitions(data)
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return defs
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any, opts ...cmp.Option) string {
	return cmp.Diff(want, got, opts...)
}

// TextComparer compares blockdef.Text values by deferredness and resolved
// output, since the accessor function itself is not comparable.
var TextComparer = cmp.Comparer(func(a, b blockdef.Text) bool {
	return a.Deferred() == b.Deferred() && a.Resolve() == b.Resolve()
})

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
