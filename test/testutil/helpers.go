// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"
)

// ProjectRoot returns the repository root directory.
func ProjectRoot(t *testing.T) string {
	t.Helper()

	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// testutil is in test/testutil
	return filepath.Join(filepath.Dir(currentFile), "..", "..")
}

// FixturePath returns the path of a file under docs/response-mock.
func FixturePath(t *testing.T, filename string) string {
	t.Helper()
	return filepath.Join(ProjectRoot(t), "docs", "response-mock", filename)
}

// LoadMockJSON loads a JSON file from the docs/response-mock directory.
func LoadMockJSON(t *testing.T, filename string) []byte {
	t.Helper()

	data, err := os.ReadFile(FixturePath(t, filename))
	if err != nil {
		t.Fatalf("Failed to load mock file %s: %v", filename, err)
	}
	return data
}

// WriteFixture writes content to a fresh file in a temp dir and returns its path.
func WriteFixture(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "flights.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
	return path
}

// MustParseDate parses a date string in YYYY-MM-DD format.
// It fails the test if parsing fails.
func MustParseDate(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", dateStr, err)
	}
	return parsed
}

// Dates returns n consecutive YYYY-MM-DD dates starting at start.
func Dates(t *testing.T, start string, n int) []string {
	t.Helper()
	first := MustParseDate(t, start)
	out := make([]string, n)
	for i := range out {
		out[i] = first.AddDate(0, 0, i).Format("2006-01-02")
	}
	return out
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}

// IntPtr returns a pointer to an int.
func IntPtr(i int) *int {
	return &i
}
