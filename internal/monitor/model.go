// Package monitor describes display geometry and enumeration.
package monitor

// Rect is a screen rectangle using top-left origin and size.
type Rect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// Empty reports whether the rect has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether a point lies inside the rect. Right and bottom edges are exclusive.
func (r Rect) Contains(x, y int) bool {
	if r.Empty() {
		return false
	}
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Clamp bounds (x,y) to the last pixel inside the rect.
func (r Rect) Clamp(x, y int) (int, int) {
	if r.Empty() {
		return x, y
	}
	x = clampInt(x, r.X, r.X+r.W-1)
	y = clampInt(y, r.Y, r.Y+r.H-1)
	return x, y
}

// Center returns the center point of the rect.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Union returns the smallest rect covering both rects.
func (r Rect) Union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	minX := minInt(r.X, o.X)
	minY := minInt(r.Y, o.Y)
	maxX := maxInt(r.X+r.W, o.X+o.W)
	maxY := maxInt(r.Y+r.H, o.Y+o.H)
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Monitor describes a display, its bounds and its work area.
type Monitor struct {
	Index   int  `json:"index"`
	X       int  `json:"x"`
	Y       int  `json:"y"`
	W       int  `json:"w"`
	H       int  `json:"h"`
	Work    Rect `json:"work"`
	Primary bool `json:"primary"`
}

// Bounds returns the full monitor rect.
func (m Monitor) Bounds() Rect {
	return Rect{X: m.X, Y: m.Y, W: m.W, H: m.H}
}

// GetMonitorByIndex returns the monitor matching the 1-based index.
func GetMonitorByIndex(list []Monitor, idx int) (Monitor, bool) {
	for _, m := range list {
		if m.Index == idx {
			return m, true
		}
	}
	return Monitor{}, false
}

// MonitorAt returns the monitor containing the point.
func MonitorAt(list []Monitor, x, y int) (Monitor, bool) {
	for _, m := range list {
		if m.Bounds().Contains(x, y) {
			return m, true
		}
	}
	return Monitor{}, false
}

// Primary returns the primary monitor, falling back to the first one.
func Primary(list []Monitor) (Monitor, bool) {
	for _, m := range list {
		if m.Primary {
			return m, true
		}
	}
	if len(list) == 0 {
		return Monitor{}, false
	}
	return list[0], true
}

// VirtualBounds returns the rect spanning every monitor.
func VirtualBounds(list []Monitor) Rect {
	var out Rect
	for _, m := range list {
		out = out.Union(m.Bounds())
	}
	return out
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
