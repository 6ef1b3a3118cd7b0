package testsupport

import (
	"path/filepath"
	"testing"

	"reshelve/internal/config"
	"reshelve/internal/identity/cache"
)

// MustOpenCache opens a lookup cache for tests and registers cleanup.
func MustOpenCache(t testing.TB, cfg *config.Config) *cache.Store {
	t.Helper()

	store, err := cache.Open(filepath.Join(cfg.Paths.CacheDir, "lookups.db"))
	if err != nil {
		t.Fatalf("cache.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}
