//go:build !windows

package inputhook

// SetCursorPos is a no-op on non-Windows platforms.
func SetCursorPos(x, y int32) {
	_ = x
	_ = y
}

// CursorPos always reports failure on non-Windows platforms.
func CursorPos() (x, y int, ok bool) {
	return 0, 0, false
}
