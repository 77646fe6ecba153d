// Package inputhook intercepts global mouse input and redirects it to a registered handler.
package inputhook

// EventKind identifies a translated pointer event. The numeric values cross the FFI boundary.
type EventKind int32

const (
	// EventUnknown marks a raw message the translator does not forward. It is never delivered.
	EventUnknown EventKind = -1
	// EventMove reports pointer movement.
	EventMove EventKind = 0
	// EventDown reports a primary or secondary button press.
	EventDown EventKind = 1
	// EventUp reports a primary or secondary button release.
	EventUp EventKind = 2
)

// String returns the wire name of the event kind.
func (k EventKind) String() string {
	switch k {
	case EventMove:
		return "move"
	case EventDown:
		return "down"
	case EventUp:
		return "up"
	default:
		return "unknown"
	}
}

// Handler receives translated events on the hook thread.
// It runs inline in the system-wide input path and must return quickly.
type Handler func(kind EventKind, x, y int32)
