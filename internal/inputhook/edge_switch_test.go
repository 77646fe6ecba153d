package inputhook_test

import (
	"sync"
	"testing"

	"github.com/frudas24/pointerhook/internal/edge"
	"github.com/frudas24/pointerhook/internal/inputhook"
	"github.com/frudas24/pointerhook/internal/monitor"
)

const wmMouseMove = 0x0200

// osCursor models the system cursor: explicit SetCursorPos calls move it, and so does
// every move event the hook lets through.
type osCursor struct {
	mu   sync.Mutex
	x, y int
}

func (c *osCursor) SetCursorPos(x, y int32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.x, c.y = int(x), int(y)
}

func (c *osCursor) CursorPos() (int, int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.x, c.y, true
}

// move runs one WM_MOUSEMOVE through the runner and applies it when not swallowed.
func (c *osCursor) move(r *inputhook.Runner, x, y int32) bool {
	ev := inputhook.RawMouseEvent{Pt: inputhook.Point{X: x, Y: y}}
	swallowed := r.Translate(0, wmMouseMove, &ev)
	if !swallowed {
		c.SetCursorPos(x, y)
	}
	return swallowed
}

// TestEdgeSwitch_TriggerMoveDoesNotUndoPark verifies the cursor ends up parked after an
// edge-triggered capture even though the triggering move itself passes through.
func TestEdgeSwitch_TriggerMoveDoesNotUndoPark(t *testing.T) {
	runner := inputhook.New(inputhook.Options{})
	cursor := &osCursor{}
	var (
		mu     sync.Mutex
		events []edge.Event
	)
	sw := edge.NewSwitcher(edge.SideRight, 0, runner, cursor, func(ev edge.Event) {
		mu.Lock()
		defer mu.Unlock()
		events = append(events, ev)
	})
	sw.SetMonitors([]monitor.Monitor{
		{Index: 1, W: 1920, H: 1080, Primary: true},
		{Index: 2, X: 1920, W: 1280, H: 1024},
	})
	runner.SetHandler(sw.Handle)

	if cursor.move(runner, 3199, 500) {
		t.Fatalf("the triggering move must pass through")
	}
	if !runner.Capturing() {
		t.Fatalf("expected capture after reaching the right edge")
	}

	if !cursor.move(runner, 3204, 503) {
		t.Fatalf("expected captured move to be swallowed")
	}
	if x, y, _ := cursor.CursorPos(); x != 2560 || y != 512 {
		t.Fatalf("expected cursor parked at (2560,512), got (%d,%d)", x, y)
	}

	if !cursor.move(runner, 2561, 512) {
		t.Fatalf("expected captured move to be swallowed")
	}

	mu.Lock()
	defer mu.Unlock()
	want := []edge.Event{
		{Type: edge.EvEnter, X: 3199, Y: 500},
		{Type: edge.EvMove, X: 3204, Y: 503, DX: 5, DY: 3},
		{Type: edge.EvMove, X: 3205, Y: 503, DX: 1},
	}
	if len(events) != len(want) {
		t.Fatalf("expected %d events, got %+v", len(want), events)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Fatalf("event %d: expected %+v, got %+v", i, want[i], events[i])
		}
	}
}
