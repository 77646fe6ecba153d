package edge

import (
	"errors"
	"sync"
	"testing"

	"github.com/frudas24/pointerhook/internal/inputhook"
	"github.com/frudas24/pointerhook/internal/monitor"
	"github.com/frudas24/pointerhook/internal/testutil"
)

type eventLog struct {
	mu     sync.Mutex
	events []Event
}

func (l *eventLog) sink(ev Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, ev)
}

func (l *eventLog) all() []Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Event, len(l.events))
	copy(out, l.events)
	return out
}

func twoMonitors() []monitor.Monitor {
	return []monitor.Monitor{
		{Index: 1, X: 0, Y: 0, W: 1920, H: 1080, Primary: true},
		{Index: 2, X: 1920, Y: 0, W: 1280, H: 1024},
	}
}

func newTestSwitcher(side Side) (*Switcher, *inputhook.Runner, *testutil.FakeCursor, *eventLog) {
	runner := inputhook.New(inputhook.Options{})
	cursor := &testutil.FakeCursor{}
	events := &eventLog{}
	s := NewSwitcher(side, 0, runner, cursor, events.sink)
	s.SetMonitors(twoMonitors())
	return s, runner, cursor, events
}

// TestParseSide verifies accepted and rejected side names.
func TestParseSide(t *testing.T) {
	if side, err := ParseSide(" Right "); err != nil || side != SideRight {
		t.Fatalf("expected right, got %q err=%v", side, err)
	}
	if side, err := ParseSide(""); err != nil || side != SideNone {
		t.Fatalf("expected none for empty, got %q err=%v", side, err)
	}
	if _, err := ParseSide("diagonal"); err == nil {
		t.Fatalf("expected error for unknown side")
	}
}

// TestSwitcher_RightEdgeEntersCapture verifies touching the outer right edge starts capture
// and parks the cursor on the first captured move.
func TestSwitcher_RightEdgeEntersCapture(t *testing.T) {
	s, runner, cursor, events := newTestSwitcher(SideRight)

	s.Handle(inputhook.EventMove, 1919, 500)
	if runner.Capturing() {
		t.Fatalf("inner monitor boundary must not trigger capture")
	}

	s.Handle(inputhook.EventMove, 3199, 500)
	if !runner.Capturing() {
		t.Fatalf("expected capture after touching the right edge")
	}
	if _, ok := cursor.LastMove(); ok {
		t.Fatalf("the triggering move passes through, so parking must wait")
	}

	s.Handle(inputhook.EventMove, 3201, 500)
	park, ok := cursor.LastMove()
	if !ok || park != (testutil.Point{X: 2560, Y: 512}) {
		t.Fatalf("expected park at (2560,512), got ok=%v %+v", ok, park)
	}
	got := events.all()
	if len(got) != 2 || got[0] != (Event{Type: EvEnter, X: 3199, Y: 500}) {
		t.Fatalf("unexpected events: %+v", got)
	}
	if got[1] != (Event{Type: EvMove, X: 3201, Y: 500, DX: 2}) {
		t.Fatalf("first captured move must be measured from the entry point: %+v", got[1])
	}
}

// TestSwitcher_CapturedMovesBecomeDeltas verifies captured moves are reported relative to the park point
// and carry the accumulated position.
func TestSwitcher_CapturedMovesBecomeDeltas(t *testing.T) {
	s, _, _, events := newTestSwitcher(SideRight)
	s.Handle(inputhook.EventMove, 3199, 500)

	s.Handle(inputhook.EventMove, 3199, 504)
	s.Handle(inputhook.EventMove, 2565, 510)
	s.Handle(inputhook.EventMove, 2560, 512)
	s.Handle(inputhook.EventDown, 2560, 512)
	s.Handle(inputhook.EventUp, 2560, 512)

	got := events.all()
	want := []Event{
		{Type: EvEnter, X: 3199, Y: 500},
		{Type: EvMove, X: 3199, Y: 504, DY: 4},
		{Type: EvMove, X: 3204, Y: 502, DX: 5, DY: -2},
		{Type: EvDown, X: 3204, Y: 502},
		{Type: EvUp, X: 3204, Y: 502},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d events, got %+v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("event %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

// TestSwitcher_ReleaseReturnsInsideEdge verifies release stops capture and nudges the cursor off the edge.
func TestSwitcher_ReleaseReturnsInsideEdge(t *testing.T) {
	s, runner, cursor, events := newTestSwitcher(SideRight)
	s.Handle(inputhook.EventMove, 3199, 500)

	s.Release()
	if runner.Capturing() {
		t.Fatalf("expected capture off after release")
	}
	last, _ := cursor.LastMove()
	if last != (testutil.Point{X: 3197, Y: 500}) {
		t.Fatalf("expected return point (3197,500), got %+v", last)
	}
	got := events.all()
	if got[len(got)-1].Type != EvLeave {
		t.Fatalf("expected leave event, got %+v", got)
	}

	s.Handle(inputhook.EventMove, 3197, 500)
	if runner.Capturing() {
		t.Fatalf("return point must not re-trigger capture")
	}
}

// TestSwitcher_PassiveButtonsIgnored verifies button events never start capture.
func TestSwitcher_PassiveButtonsIgnored(t *testing.T) {
	s, runner, _, events := newTestSwitcher(SideLeft)
	s.Handle(inputhook.EventDown, 0, 10)
	if runner.Capturing() || len(events.all()) != 0 {
		t.Fatalf("expected no capture or events from a passive press")
	}
	s.Handle(inputhook.EventMove, 0, 10)
	if !runner.Capturing() {
		t.Fatalf("expected left edge move to trigger capture")
	}
}

// TestSwitcher_SideNoneNeverTriggers verifies auto-capture is off without a side.
func TestSwitcher_SideNoneNeverTriggers(t *testing.T) {
	s, runner, _, _ := newTestSwitcher(SideNone)
	s.Handle(inputhook.EventMove, 3199, 0)
	s.Handle(inputhook.EventMove, 0, 0)
	if runner.Capturing() {
		t.Fatalf("expected no automatic capture")
	}
}

// TestSwitcher_ManualCapture verifies Capture parks at the monitor under the cursor.
func TestSwitcher_ManualCapture(t *testing.T) {
	s, runner, cursor, _ := newTestSwitcher(SideNone)
	cursor.X, cursor.Y, cursor.HasXY = 100, 100, true

	if err := s.Capture(); err != nil {
		t.Fatalf("Capture failed: %v", err)
	}
	if !runner.Capturing() {
		t.Fatalf("expected capture on")
	}
	last, _ := cursor.LastMove()
	if last != (testutil.Point{X: 960, Y: 540}) {
		t.Fatalf("expected park at primary center, got %+v", last)
	}

	s.Release()
	last, _ = cursor.LastMove()
	if last != (testutil.Point{X: 100, Y: 100}) {
		t.Fatalf("expected return to (100,100), got %+v", last)
	}
}

// TestSwitcher_CaptureWithoutMonitors verifies geometry is required.
func TestSwitcher_CaptureWithoutMonitors(t *testing.T) {
	s := NewSwitcher(SideRight, 0, inputhook.New(inputhook.Options{}), &testutil.FakeCursor{}, nil)
	if err := s.Capture(); !errors.Is(err, ErrNoMonitors) {
		t.Fatalf("expected ErrNoMonitors, got %v", err)
	}
}

// TestSwitcher_MarginWidensEdge verifies the margin lets near-edge moves trigger capture.
func TestSwitcher_MarginWidensEdge(t *testing.T) {
	runner := inputhook.New(inputhook.Options{})
	s := NewSwitcher(SideBottom, 3, runner, &testutil.FakeCursor{}, nil)
	s.SetMonitors([]monitor.Monitor{{Index: 1, W: 800, H: 600, Primary: true}})

	s.Handle(inputhook.EventMove, 400, 595)
	if runner.Capturing() {
		t.Fatalf("expected no capture outside the margin")
	}
	s.Handle(inputhook.EventMove, 400, 596)
	if !runner.Capturing() {
		t.Fatalf("expected capture inside the margin")
	}
}
