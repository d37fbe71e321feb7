// Package testutil provides test helpers for CLI and config tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// EnvVars lists every environment variable rcg reads.
var EnvVars = []string{
	"RCG_CONFIG",
	"RCG_KIND",
	"RCG_PLATFORM",
	"RCG_LANGUAGE",
	"RCG_PROPS",
	"RCG_UPPER_CASE",
	"RCG_SMOKE",
	"RCG_TIMESTAMPS",
}

// ClearEnv unsets every RCG_* variable for the duration of the test.
// The previous values are restored on cleanup.
func ClearEnv(t *testing.T) {
	t.Helper()
	for _, env := range EnvVars {
		// Setenv registers the restore; Unsetenv makes the variable absent
		// rather than empty.
		t.Setenv(env, "")
		if err := os.Unsetenv(env); err != nil {
			t.Fatalf("failed to unset %s: %v", env, err)
		}
	}
}

// IsolateHome points HOME at a fresh temp dir and clears RCG_* variables,
// so the default config path resolves inside the test. It returns the home.
func IsolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	ClearEnv(t)
	return home
}

// WriteConfig writes content to ~/.rcg/config.yaml under home.
func WriteConfig(t *testing.T, home, content string) string {
	t.Helper()
	return WriteFile(t, filepath.Join(home, ".rcg"), "config.yaml", content)
}

// WriteFile creates a file with the given content in the specified directory.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}
