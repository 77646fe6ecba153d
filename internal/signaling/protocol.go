// Package signaling negotiates the pointer data channel over a websocket.
//
// The server offers first: on connect it sends an offer that already carries the
// pointer channel, the remote answers, and both sides trickle ICE candidates.
package signaling

import "github.com/pion/webrtc/v3"

// Message types.
const (
	MsgOffer  = "offer"
	MsgAnswer = "answer"
	MsgICE    = "ice"
	MsgBye    = "bye"
	MsgError  = "error"
)

// Message is a websocket signaling payload.
type Message struct {
	T         string                   `json:"t"`
	SDP       string                   `json:"sdp,omitempty"`
	Candidate *webrtc.ICECandidateInit `json:"candidate,omitempty"`
	Error     string                   `json:"error,omitempty"`
}
