package renamer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"reshelve/internal/identity"
	"reshelve/internal/media/probe"
	"reshelve/internal/quality"
	"reshelve/internal/testsupport"
)

type stubLookup struct {
	result identity.Result
	found  bool
}

func (s *stubLookup) Lookup(ctx context.Context, kind identity.Kind, title string, year int) (identity.Result, bool) {
	return s.result, s.found
}

func newTestRenamer(t *testing.T, lookup identity.Lookup, dryRun bool) *Renamer {
	t.Helper()
	return New(Options{
		MoviePattern: "{title} ({year})",
		TVPattern:    "{title} - S{season:02d}E{episode:02d} - {episode_title}",
		Extensions:   []string{".mkv", ".mp4"},
		Lookup:       lookup,
		DryRun:       dryRun,
	})
}

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestProcessDirectoryRenamesMovie(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "heat.1995.mkv"))

	r := newTestRenamer(t, nil, false)
	results := r.ProcessDirectory(context.Background(), dir)
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if !results[0].Success {
		t.Fatalf("rename failed: %s", results[0].Error)
	}
	want := filepath.Join(dir, "Heat (1995).mkv")
	if results[0].NewPath != want {
		t.Errorf("new path = %q, want %q", results[0].NewPath, want)
	}
	if _, err := os.Stat(want); err != nil {
		t.Errorf("renamed file missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "heat.1995.mkv")); !os.IsNotExist(err) {
		t.Error("original file still present")
	}
}

func TestProcessDirectoryRenamesEpisode(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "breaking.bad.s01e02.cat.mkv"))

	r := newTestRenamer(t, nil, false)
	results := r.ProcessDirectory(context.Background(), dir)
	if len(results) != 1 || !results[0].Success {
		t.Fatalf("results = %+v", results)
	}
	want := filepath.Join(dir, "Breaking Bad - S01E02 - cat.mkv")
	if results[0].NewPath != want {
		t.Errorf("new path = %q, want %q", results[0].NewPath, want)
	}
}

func TestProcessDirectoryUsesIdentityLookup(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "heat.1995.mkv"))

	lookup := &stubLookup{result: identity.Result{Title: "Heat", Year: 1995}, found: true}
	r := newTestRenamer(t, lookup, false)
	results := r.ProcessDirectory(context.Background(), dir)
	if len(results) != 1 || !results[0].Success {
		t.Fatalf("results = %+v", results)
	}
	if got := filepath.Base(results[0].NewPath); got != "Heat (1995).mkv" {
		t.Errorf("new name = %q", got)
	}
}

func TestRenameRefusesExistingTarget(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "heat.1995.mkv"))
	writeFile(t, filepath.Join(dir, "Heat (1995).mkv"))

	r := newTestRenamer(t, nil, false)
	results := r.ProcessDirectory(context.Background(), dir)

	var failed *Result
	for i := range results {
		if !results[i].Success {
			failed = &results[i]
		}
	}
	if failed == nil {
		t.Fatalf("expected a collision failure, results = %+v", results)
	}
	if _, err := os.Stat(filepath.Join(dir, "heat.1995.mkv")); err != nil {
		t.Errorf("source must survive a refused rename: %v", err)
	}
}

func TestRenameDryRunLeavesFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "heat.1995.mkv"))

	r := newTestRenamer(t, nil, true)
	results := r.ProcessDirectory(context.Background(), dir)
	if len(results) != 1 || !results[0].Success {
		t.Fatalf("results = %+v", results)
	}
	if _, err := os.Stat(filepath.Join(dir, "heat.1995.mkv")); err != nil {
		t.Errorf("dry run moved the file: %v", err)
	}
	if _, err := os.Stat(results[0].NewPath); !os.IsNotExist(err) {
		t.Error("dry run created the target")
	}
}

func TestRenameUnclassifiableFile(t *testing.T) {
	r := newTestRenamer(t, nil, false)
	result := r.Rename(Media{Path: "/library/random.mkv", Kind: "unknown"})
	if result.Success {
		t.Error("expected failure for an unclassifiable file")
	}
	if result.Error != "Could not generate filename" {
		t.Errorf("error = %q", result.Error)
	}
}

func TestRenameSurvivesProbeFailure(t *testing.T) {
	// The stubbed ffprobe produces no stream data, so classification falls
	// back to the name alone and the rename still succeeds.
	testsupport.NewConfig(t, testsupport.WithStubbedBinaries())
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "heat.1995.mkv"))

	r := New(Options{
		MoviePattern: "{title} ({year})",
		Extensions:   []string{".mkv"},
		Classifier:   quality.NewClassifier(probe.NewInspector("ffprobe"), nil),
	})
	results := r.ProcessDirectory(context.Background(), dir)
	if len(results) != 1 || !results[0].Success {
		t.Fatalf("results = %+v", results)
	}
	if got := filepath.Base(results[0].NewPath); got != "Heat (1995).mkv" {
		t.Errorf("new name = %q", got)
	}
}

func TestRenameAlreadyCanonicalIsANoop(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Heat (1995).mkv")
	writeFile(t, path)

	r := newTestRenamer(t, nil, false)
	results := r.ProcessDirectory(context.Background(), dir)
	if len(results) != 1 || !results[0].Success {
		t.Fatalf("results = %+v", results)
	}
	if results[0].NewPath != path {
		t.Errorf("new path = %q, want unchanged %q", results[0].NewPath, path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("file missing after noop rename: %v", err)
	}
}
