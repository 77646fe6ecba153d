package inputhook

import "unsafe"

// Raw window messages delivered as wParam to a WH_MOUSE_LL hook.
const (
	msgMouseMove   = 0x0200
	msgLButtonDown = 0x0201
	msgLButtonUp   = 0x0202
	msgRButtonDown = 0x0204
	msgRButtonUp   = 0x0205
)

// flagInjected is LLMHF_INJECTED.
const flagInjected = 0x00000001

// Point is an absolute screen coordinate.
type Point struct {
	X int32
	Y int32
}

// RawMouseEvent mirrors MSLLHOOKSTRUCT field for field.
// Values are only ever viewed in place for the duration of one hook call.
type RawMouseEvent struct {
	Pt        Point
	MouseData uint32
	Flags     uint32
	Time      uint32
	ExtraInfo uintptr
}

// Layout checks: these fail to compile if the mirror drifts from the OS structure.
var (
	_ = [1]struct{}{}[unsafe.Offsetof(RawMouseEvent{}.MouseData)-8]
	_ = [1]struct{}{}[unsafe.Offsetof(RawMouseEvent{}.Flags)-12]
	_ = [1]struct{}{}[unsafe.Offsetof(RawMouseEvent{}.Time)-16]
)

// Injected reports whether the event was synthesized by SendInput or mouse_event.
func (e *RawMouseEvent) Injected() bool {
	return e.Flags&flagInjected != 0
}
