package inputhook

// SystemCursor exposes the process cursor functions as a value for callers that take an interface.
type SystemCursor struct{}

// SetCursorPos moves the system cursor.
func (SystemCursor) SetCursorPos(x, y int32) {
	SetCursorPos(x, y)
}

// CursorPos reports the system cursor position.
func (SystemCursor) CursorPos() (int, int, bool) {
	return CursorPos()
}
