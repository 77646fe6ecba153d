package testutil

import "sync"

// Point is a recorded cursor position.
type Point struct {
	X int32
	Y int32
}

// FakeCursor tracks cursor moves in memory.
type FakeCursor struct {
	mu    sync.Mutex
	X     int
	Y     int
	HasXY bool
	Moves []Point
}

// SetCursorPos records the move and updates the reported position.
func (f *FakeCursor) SetCursorPos(x, y int32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Moves = append(f.Moves, Point{X: x, Y: y})
	f.X, f.Y, f.HasXY = int(x), int(y), true
}

// CursorPos returns the last known position.
func (f *FakeCursor) CursorPos() (int, int, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.X, f.Y, f.HasXY
}

// LastMove returns the most recent SetCursorPos call.
func (f *FakeCursor) LastMove() (Point, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.Moves) == 0 {
		return Point{}, false
	}
	return f.Moves[len(f.Moves)-1], true
}
