package inputhook

import "log"

// translate decides the fate of one raw event and reports whether it must be swallowed.
// It never blocks on anything but the handler itself.
func (r *Runner) translate(code int32, msg uint32, ev *RawMouseEvent) bool {
	if code < 0 {
		return false
	}
	if r.ignoreInjected.Load() && ev.Injected() {
		return false
	}
	x, y := ev.Pt.X, ev.Pt.Y

	if !r.capturing.Load() {
		if msg == msgMouseMove {
			r.deliver(EventMove, x, y)
		}
		return false
	}

	if kind := kindOf(msg); kind != EventUnknown {
		r.deliver(kind, x, y)
	} else if debugEnabled() {
		log.Printf("hook: swallowed untranslated msg=%#x", msg)
	}
	return true
}

// kindOf maps a raw mouse message to the event kind sent across the boundary.
func kindOf(msg uint32) EventKind {
	switch msg {
	case msgMouseMove:
		return EventMove
	case msgLButtonDown, msgRButtonDown:
		return EventDown
	case msgLButtonUp, msgRButtonUp:
		return EventUp
	default:
		return EventUnknown
	}
}

func (r *Runner) deliver(kind EventKind, x, y int32) {
	h := r.handler.Load()
	if h == nil {
		return
	}
	(*h)(kind, x, y)
}
