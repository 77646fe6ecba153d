//go:build windows

package inputhook

import "github.com/lxn/win"

// SetCursorPos moves the system cursor to absolute screen coordinates.
// Out-of-range values are handed to the OS as-is; failure is silent.
func SetCursorPos(x, y int32) {
	win.SetCursorPos(x, y)
}

// CursorPos reports the current system cursor position.
func CursorPos() (x, y int, ok bool) {
	var pt win.POINT
	if !win.GetCursorPos(&pt) {
		return 0, 0, false
	}
	return int(pt.X), int(pt.Y), true
}
