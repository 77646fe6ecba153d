package edge

// EventType identifies an outbound pointer event.
type EventType string

const (
	// EvEnter reports that capture started; X/Y hold the entry point.
	EvEnter EventType = "enter"
	// EvMove reports relative motion while capturing. DX/DY hold the step and X/Y the
	// position reached from the entry point, ignoring where the cursor is parked.
	EvMove EventType = "move"
	// EvDown reports a button press while capturing, at the latest move position.
	EvDown EventType = "down"
	// EvUp reports a button release while capturing, at the latest move position.
	EvUp EventType = "up"
	// EvLeave reports that capture ended; X/Y hold the cursor's return point.
	EvLeave EventType = "leave"
)

// Event is a pointer event for the remote consumer.
type Event struct {
	Type EventType
	X    int
	Y    int
	DX   int
	DY   int
}

// Sink receives events. It is called on the hook thread and must not block.
type Sink func(Event)
