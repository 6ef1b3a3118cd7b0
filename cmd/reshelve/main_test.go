package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// newTestConfigFile writes a config pointing every path at the test's temp
// space and returns its location. API keys stay empty so commands never reach
// the network.
func newTestConfigFile(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	content := fmt.Sprintf(`[paths]
log_dir = %q
cache_dir = %q

[logging]
level = "error"
`, filepath.Join(base, "logs"), filepath.Join(base, "cache"))

	path := filepath.Join(base, "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("TMDB_API_KEY", "")
	t.Setenv("TVDB_API_KEY", "")
	return path
}

func runCLI(t *testing.T, configPath string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if configPath != "" {
		args = append([]string{"--config", configPath}, args...)
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeMediaFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !bytes.Contains([]byte(haystack), []byte(needle)) {
		t.Fatalf("output missing %q:\n%s", needle, haystack)
	}
}
