// Package testutil provides helpers for running minisig64 in isolation.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// SetupTestEnv clears every environment variable minisig64 reads so a
// developer's shell cannot leak a config file or debug logging into tests.
func SetupTestEnv(t *testing.T) {
	t.Helper()

	t.Setenv("MINISIG64_CONFIG", "")
	t.Setenv("MINISIG64_DEBUG", "")
	t.Setenv("NO_COLOR", "1")
}

// WriteConfig writes luaCode to a config file in a temp directory and
// returns its path.
func WriteConfig(t *testing.T, luaCode string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "minisig64.lua")
	if err := os.WriteFile(path, []byte(luaCode), 0o600); err != nil {
		t.Fatalf("failed to write config %s: %v", path, err)
	}
	return path
}
