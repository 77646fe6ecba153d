package wininput

import (
	"errors"
	"testing"
)

type recordingInjector struct {
	calls []string
	fail  string
}

func (r *recordingInjector) do(name string) error {
	r.calls = append(r.calls, name)
	if name == r.fail {
		return errors.New(name + " failed")
	}
	return nil
}

func (r *recordingInjector) MoveAbs(x, y int) error { return r.do("MoveAbs") }
func (r *recordingInjector) LeftDown() error        { return r.do("LeftDown") }
func (r *recordingInjector) LeftUp() error          { return r.do("LeftUp") }
func (r *recordingInjector) RightDown() error       { return r.do("RightDown") }
func (r *recordingInjector) RightUp() error         { return r.do("RightUp") }
func (r *recordingInjector) ClickAt(x, y int) error { return r.do("ClickAt") }
func (r *recordingInjector) Wheel(delta int) error  { return r.do("Wheel") }
func (r *recordingInjector) HWheel(delta int) error { return r.do("HWheel") }

// TestClick_RightButton verifies the right button path presses then releases.
func TestClick_RightButton(t *testing.T) {
	inj := &recordingInjector{}
	if err := Click(inj, ButtonRight); err != nil {
		t.Fatalf("Click failed: %v", err)
	}
	if len(inj.calls) != 2 || inj.calls[0] != "RightDown" || inj.calls[1] != "RightUp" {
		t.Fatalf("unexpected calls: %v", inj.calls)
	}
}

// TestClick_StopsOnDownError verifies a failed press skips the release.
func TestClick_StopsOnDownError(t *testing.T) {
	inj := &recordingInjector{fail: "LeftDown"}
	if err := Click(inj, ButtonLeft); err == nil {
		t.Fatalf("expected error")
	}
	if len(inj.calls) != 1 {
		t.Fatalf("expected only the press, got %v", inj.calls)
	}
}

// TestScaleAbsolute_Edges verifies the first and last pixel map to the range ends.
func TestScaleAbsolute_Edges(t *testing.T) {
	if got := scaleAbsolute(-1280, -1280, 3200); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	if got := scaleAbsolute(1919, -1280, 3200); got != 65535 {
		t.Fatalf("expected 65535, got %d", got)
	}
}
