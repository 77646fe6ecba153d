// Package bridge relays hook events to the remote consumer and applies its commands.
package bridge

import "github.com/frudas24/pointerhook/internal/edge"

// Message is a control websocket payload, used in both directions.
type Message struct {
	T          string `json:"t"`
	X          *int   `json:"x,omitempty"`
	Y          *int   `json:"y,omitempty"`
	DX         int    `json:"dx,omitempty"`
	DY         int    `json:"dy,omitempty"`
	Button     string `json:"button,omitempty"`
	Delta      int    `json:"delta,omitempty"`
	Horizontal bool   `json:"horizontal,omitempty"`
	Enabled    *bool  `json:"enabled,omitempty"`
	Capturing  *bool  `json:"capturing,omitempty"`
	Dropped    uint64 `json:"dropped,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Inbound command types.
const (
	CmdCapture      = "capture"
	CmdRelease      = "release"
	CmdCursor       = "cursor"
	CmdCursorRel    = "cursorRel"
	CmdClick        = "click"
	CmdWheel        = "wheel"
	CmdInputEnabled = "inputEnabled"
	CmdState        = "state"
	CmdPing         = "ping"
)

// Outbound-only message types.
const (
	MsgPong  = "pong"
	MsgError = "error"
)

// eventFrame is the outbound form of an edge event. Positions are always present,
// deltas only on moves.
type eventFrame struct {
	T  string `json:"t"`
	X  int    `json:"x"`
	Y  int    `json:"y"`
	DX int    `json:"dx,omitempty"`
	DY int    `json:"dy,omitempty"`
}

// eventMessage converts an edge event into its wire form.
func eventMessage(ev edge.Event) eventFrame {
	return eventFrame{T: string(ev.Type), X: ev.X, Y: ev.Y, DX: ev.DX, DY: ev.DY}
}

// point returns the command position when both coordinates are present.
func (m Message) point() (int, int, bool) {
	if m.X == nil || m.Y == nil {
		return 0, 0, false
	}
	return *m.X, *m.Y, true
}

// stateMessage reports the capture flag and the drop counter.
func stateMessage(capturing bool, dropped uint64) Message {
	return Message{T: CmdState, Capturing: &capturing, Dropped: dropped}
}

// errorMessage reports a command failure without closing the connection.
func errorMessage(err error) Message {
	return Message{T: MsgError, Error: err.Error()}
}
