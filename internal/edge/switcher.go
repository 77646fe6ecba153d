package edge

import (
	"errors"
	"log"
	"sync/atomic"

	"github.com/frudas24/pointerhook/internal/inputhook"
	"github.com/frudas24/pointerhook/internal/monitor"
)

// ErrNoMonitors is returned when capture is requested before any geometry is known.
var ErrNoMonitors = errors.New("edge: no monitors configured")

// Capturer toggles the hook's capture mode.
type Capturer interface {
	SetCapturing(capturing bool)
	Capturing() bool
}

// Cursor positions and reports the system cursor.
type Cursor interface {
	SetCursorPos(x, y int32)
	CursorPos() (x, y int, ok bool)
}

// layout is an immutable snapshot of the desktop geometry.
type layout struct {
	monitors []monitor.Monitor
	virtual  monitor.Rect
}

// anchor records where a capture started and where the cursor is parked.
type anchor struct {
	entryX, entryY int
	parkX, parkY   int
	side           Side

	// parkPending is set when capture started from inside the hook callback. The
	// triggering move still passes through and lands the cursor on the entry point,
	// so parking happens on the first captured move instead.
	parkPending atomic.Bool

	// posX/posY follow the pointer without the park offset: the entry point plus every delta.
	posX, posY atomic.Int64
}

func newAnchor(x, y, parkX, parkY int, side Side) *anchor {
	a := &anchor{entryX: x, entryY: y, parkX: parkX, parkY: parkY, side: side}
	a.posX.Store(int64(x))
	a.posY.Store(int64(y))
	return a
}

func (a *anchor) pos() (int, int) {
	return int(a.posX.Load()), int(a.posY.Load())
}

// Switcher turns passive moves at a desktop edge into capture sessions and
// captured moves into deltas for the remote device.
type Switcher struct {
	side   Side
	margin int

	capturer Capturer
	cursor   Cursor
	sink     Sink

	layout atomic.Pointer[layout]
	anchor atomic.Pointer[anchor]
}

// NewSwitcher wires a switcher. A nil sink drops events.
func NewSwitcher(side Side, margin int, capturer Capturer, cursor Cursor, sink Sink) *Switcher {
	if margin < 0 {
		margin = 0
	}
	if sink == nil {
		sink = func(Event) {}
	}
	return &Switcher{
		side:     side,
		margin:   margin,
		capturer: capturer,
		cursor:   cursor,
		sink:     sink,
	}
}

// SetMonitors replaces the desktop geometry.
func (s *Switcher) SetMonitors(list []monitor.Monitor) {
	cp := make([]monitor.Monitor, len(list))
	copy(cp, list)
	s.layout.Store(&layout{monitors: cp, virtual: monitor.VirtualBounds(cp)})
}

// VirtualBounds returns the rect spanning every known monitor.
func (s *Switcher) VirtualBounds() monitor.Rect {
	l := s.layout.Load()
	if l == nil {
		return monitor.Rect{}
	}
	return l.virtual
}

// Capturing reports whether a capture session is active.
func (s *Switcher) Capturing() bool {
	return s.capturer.Capturing()
}

// Handle is the inputhook.Handler for the switcher.
func (s *Switcher) Handle(kind inputhook.EventKind, x, y int32) {
	px, py := int(x), int(y)
	if !s.capturer.Capturing() {
		if kind == inputhook.EventMove {
			s.checkEdge(px, py)
		}
		return
	}
	a := s.anchor.Load()
	if a == nil {
		return
	}

	switch kind {
	case inputhook.EventMove:
		fromX, fromY := a.parkX, a.parkY
		if a.parkPending.CompareAndSwap(true, false) {
			fromX, fromY = a.entryX, a.entryY
			s.cursor.SetCursorPos(int32(a.parkX), int32(a.parkY))
		}
		dx, dy := px-fromX, py-fromY
		if dx == 0 && dy == 0 {
			return
		}
		posX := int(a.posX.Add(int64(dx)))
		posY := int(a.posY.Add(int64(dy)))
		s.sink(Event{Type: EvMove, X: posX, Y: posY, DX: dx, DY: dy})
	case inputhook.EventDown:
		posX, posY := a.pos()
		s.sink(Event{Type: EvDown, X: posX, Y: posY})
	case inputhook.EventUp:
		posX, posY := a.pos()
		s.sink(Event{Type: EvUp, X: posX, Y: posY})
	}
}

// Capture starts a capture session at the current cursor position.
func (s *Switcher) Capture() error {
	l := s.layout.Load()
	if l == nil || len(l.monitors) == 0 {
		return ErrNoMonitors
	}
	x, y, ok := s.cursor.CursorPos()
	if !ok {
		m, _ := monitor.Primary(l.monitors)
		x, y = m.Bounds().Center()
	}
	s.enter(l, x, y, SideNone, false)
	return nil
}

// Release ends the capture session and returns the cursor near where it left.
func (s *Switcher) Release() {
	a := s.anchor.Swap(nil)
	s.capturer.SetCapturing(false)
	if a == nil {
		return
	}
	x, y := s.returnPoint(a)
	s.cursor.SetCursorPos(int32(x), int32(y))
	log.Printf("edge: capture released at (%d,%d)", x, y)
	s.sink(Event{Type: EvLeave, X: x, Y: y})
}

// checkEdge enters capture when a passive move touches the configured edge.
func (s *Switcher) checkEdge(x, y int) {
	if s.side == SideNone {
		return
	}
	l := s.layout.Load()
	if l == nil || l.virtual.Empty() {
		return
	}
	x, y = l.virtual.Clamp(x, y)
	m, ok := monitor.MonitorAt(l.monitors, x, y)
	if !ok || !atEdge(s.side, s.margin, m.Bounds(), l.virtual, x, y) {
		return
	}
	s.enter(l, x, y, s.side, true)
}

// enter turns capture on and parks the cursor at the center of the monitor under (x,y),
// either now or, when deferPark is set, on the first captured move.
func (s *Switcher) enter(l *layout, x, y int, side Side, deferPark bool) {
	m, ok := monitor.MonitorAt(l.monitors, x, y)
	if !ok {
		m, _ = monitor.Primary(l.monitors)
	}
	parkX, parkY := m.Bounds().Center()
	a := newAnchor(x, y, parkX, parkY, side)
	a.parkPending.Store(deferPark)
	s.anchor.Store(a)
	s.capturer.SetCapturing(true)
	if !deferPark {
		s.cursor.SetCursorPos(int32(parkX), int32(parkY))
	}
	log.Printf("edge: capture entered at (%d,%d) side=%s", x, y, side)
	s.sink(Event{Type: EvEnter, X: x, Y: y})
}

// returnPoint places the cursor back at the entry point, nudged away from the trigger edge.
func (s *Switcher) returnPoint(a *anchor) (int, int) {
	x, y := a.entryX, a.entryY
	step := s.margin + 2
	switch a.side {
	case SideLeft:
		x += step
	case SideRight:
		x -= step
	case SideTop:
		y += step
	case SideBottom:
		y -= step
	}
	if l := s.layout.Load(); l != nil {
		x, y = l.virtual.Clamp(x, y)
	}
	return x, y
}

// atEdge reports whether (x,y) lies within margin of the side of m that is also the desktop edge.
func atEdge(side Side, margin int, m, virtual monitor.Rect, x, y int) bool {
	switch side {
	case SideLeft:
		return m.X == virtual.X && x <= m.X+margin
	case SideRight:
		return m.X+m.W == virtual.X+virtual.W && x >= m.X+m.W-1-margin
	case SideTop:
		return m.Y == virtual.Y && y <= m.Y+margin
	case SideBottom:
		return m.Y+m.H == virtual.Y+virtual.H && y >= m.Y+m.H-1-margin
	default:
		return false
	}
}
