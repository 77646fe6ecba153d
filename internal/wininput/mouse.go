//go:build windows

package wininput

import "github.com/lxn/win"

// MoveAbs moves the cursor to an absolute virtual-desktop coordinate.
func (w *WinInjector) MoveAbs(x, y int) error {
	dx, dy := mapAbsolute(x, y)
	flags := uint32(win.MOUSEEVENTF_MOVE | win.MOUSEEVENTF_ABSOLUTE | win.MOUSEEVENTF_VIRTUALDESK)
	return sendMouseInput(flags, dx, dy, 0)
}

// LeftDown presses the left mouse button.
func (w *WinInjector) LeftDown() error {
	return sendMouseInput(win.MOUSEEVENTF_LEFTDOWN, 0, 0, 0)
}

// LeftUp releases the left mouse button.
func (w *WinInjector) LeftUp() error {
	return sendMouseInput(win.MOUSEEVENTF_LEFTUP, 0, 0, 0)
}

// RightDown presses the right mouse button.
func (w *WinInjector) RightDown() error {
	return sendMouseInput(win.MOUSEEVENTF_RIGHTDOWN, 0, 0, 0)
}

// RightUp releases the right mouse button.
func (w *WinInjector) RightUp() error {
	return sendMouseInput(win.MOUSEEVENTF_RIGHTUP, 0, 0, 0)
}

// ClickAt moves the cursor and performs a left click.
func (w *WinInjector) ClickAt(x, y int) error {
	if err := w.MoveAbs(x, y); err != nil {
		return err
	}
	return Click(w, ButtonLeft)
}

// Wheel scrolls vertically by delta (120 per notch).
func (w *WinInjector) Wheel(delta int) error {
	return sendMouseInput(win.MOUSEEVENTF_WHEEL, 0, 0, uint32(int32(delta)))
}

// HWheel scrolls horizontally by delta (120 per notch).
func (w *WinInjector) HWheel(delta int) error {
	return sendMouseInput(win.MOUSEEVENTF_HWHEEL, 0, 0, uint32(int32(delta)))
}

// mapAbsolute converts virtual-desktop coordinates to the 0..65535 SendInput range.
func mapAbsolute(x, y int) (int32, int32) {
	vx := win.GetSystemMetrics(win.SM_XVIRTUALSCREEN)
	vy := win.GetSystemMetrics(win.SM_YVIRTUALSCREEN)
	vw := win.GetSystemMetrics(win.SM_CXVIRTUALSCREEN)
	vh := win.GetSystemMetrics(win.SM_CYVIRTUALSCREEN)
	return scaleAbsolute(x, int(vx), int(vw)), scaleAbsolute(y, int(vy), int(vh))
}
