package services_test

import (
	"errors"
	"strings"
	"testing"

	"reshelve/internal/services"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("boom")
	err := services.Wrap(services.ErrExternalTool, "consolidating", "merge", "failed", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"consolidating", "merge", "failed"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestWrapNilMarkerDefaultsToTransient(t *testing.T) {
	err := services.Wrap(nil, "scanning", "", "", nil)
	if !errors.Is(err, services.ErrTransient) {
		t.Fatalf("expected transient marker, got %v", err)
	}
}

func TestIsRecoverable(t *testing.T) {
	if services.IsRecoverable(services.Wrap(services.ErrConfiguration, "engine", "lock", "bad root", nil)) {
		t.Fatal("configuration errors must not be recoverable")
	}
	if !services.IsRecoverable(services.Wrap(services.ErrNotFound, "enhance", "lookup", "no match", nil)) {
		t.Fatal("lookup misses are recoverable")
	}
	if !services.IsRecoverable(nil) {
		t.Fatal("nil error is recoverable")
	}
}
