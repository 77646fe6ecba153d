package inputhook

import (
	"context"
	"errors"
	"runtime"
	"testing"
)

// TestRunner_DefaultsPassive verifies a new runner starts in passive mode without a hook.
func TestRunner_DefaultsPassive(t *testing.T) {
	r := New(Options{})
	if r.Capturing() {
		t.Fatalf("expected passive mode by default")
	}
	if r.Running() {
		t.Fatalf("expected no hook by default")
	}
}

// TestRunner_StopWithoutStart verifies Stop reports ErrNotRunning.
func TestRunner_StopWithoutStart(t *testing.T) {
	r := New(Options{})
	if err := r.Stop(context.Background()); !errors.Is(err, ErrNotRunning) {
		t.Fatalf("expected ErrNotRunning, got %v", err)
	}
}

// TestRunner_StartUnsupported verifies Start surfaces the failure instead of silently doing nothing.
func TestRunner_StartUnsupported(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("installs a real hook on Windows")
	}
	r := New(Options{})
	if err := r.Start(); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
	if r.Running() {
		t.Fatalf("failed start must not leave the runner running")
	}
	if err := r.Start(); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected a retry to fail the same way, got %v", err)
	}
}

// TestRunner_DefaultIsShared verifies Default returns the same runner every time.
func TestRunner_DefaultIsShared(t *testing.T) {
	if Default() != Default() {
		t.Fatalf("expected a single process-wide runner")
	}
}
