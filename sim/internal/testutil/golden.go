// Package testutil provides shared test infrastructure for the scheduler
// simulator. It consolidates golden scenario path resolution and line-level
// assertion helpers used by the sim package tree's tests.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// ScenarioPath resolves a file under the repo root testdata/ directory.
// The path is resolved relative to this source file, so tests find their
// fixtures no matter which package directory the test binary runs from.
func ScenarioPath(t *testing.T, name string) string {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// Navigate from sim/internal/testutil/ to repo root testdata/
	return filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", name)
}

// LoadGoldenReport reads testdata/<name> and returns its lines without
// trailing newlines.
func LoadGoldenReport(t *testing.T, name string) []string {
	t.Helper()

	data, err := os.ReadFile(ScenarioPath(t, name))
	if err != nil {
		t.Fatalf("Failed to read golden report: %v", err)
	}
	text := strings.TrimSuffix(string(data), "\n")
	return strings.Split(text, "\n")
}

// AssertLinesEqual compares report lines one by one and reports the first
// divergence with its 1-based line number.
func AssertLinesEqual(t *testing.T, want, got []string) {
	t.Helper()
	n := len(want)
	if len(got) < n {
		n = len(got)
	}
	for i := 0; i < n; i++ {
		if want[i] != got[i] {
			t.Fatalf("line %d: got %q, want %q", i+1, got[i], want[i])
		}
	}
	if len(want) != len(got) {
		t.Fatalf("line count: got %d, want %d", len(got), len(want))
	}
}
