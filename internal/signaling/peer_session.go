package signaling

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pion/webrtc/v3"
)

const writeTimeout = time.Second

var (
	errBye      = errors.New("signaling: remote said bye")
	errEmptySDP = errors.New("signaling: empty answer")
)

// peerSession is one signaling socket and the peer it negotiates.
type peerSession struct {
	id   string
	conn *websocket.Conn
	peer *webrtc.PeerConnection

	writeMu sync.Mutex

	mu        sync.Mutex
	remoteSet bool
	pending   []webrtc.ICECandidateInit
}

// offer sets and returns the local offer.
func (p *peerSession) offer() (string, error) {
	offer, err := p.peer.CreateOffer(nil)
	if err != nil {
		return "", fmt.Errorf("create offer: %w", err)
	}
	if err := p.peer.SetLocalDescription(offer); err != nil {
		return "", fmt.Errorf("set local description: %w", err)
	}
	return offer.SDP, nil
}

// answer applies the remote answer and flushes candidates that arrived before it.
func (p *peerSession) answer(sdp string) error {
	if sdp == "" {
		return errEmptySDP
	}
	if err := p.peer.SetRemoteDescription(webrtc.SessionDescription{
		Type: webrtc.SDPTypeAnswer,
		SDP:  sdp,
	}); err != nil {
		return fmt.Errorf("set remote description: %w", err)
	}

	p.mu.Lock()
	p.remoteSet = true
	pending := p.pending
	p.pending = nil
	p.mu.Unlock()

	for _, c := range pending {
		if err := p.peer.AddICECandidate(c); err != nil {
			return fmt.Errorf("add queued candidate: %w", err)
		}
	}
	return nil
}

// candidate adds a remote candidate, holding it until the answer is applied.
func (p *peerSession) candidate(c *webrtc.ICECandidateInit) error {
	if c == nil {
		return nil
	}
	p.mu.Lock()
	if !p.remoteSet {
		p.pending = append(p.pending, *c)
		p.mu.Unlock()
		return nil
	}
	p.mu.Unlock()
	return p.peer.AddICECandidate(*c)
}

// handle applies one inbound message. errBye ends the session cleanly.
func (p *peerSession) handle(msg Message) error {
	switch msg.T {
	case MsgAnswer:
		return p.answer(msg.SDP)
	case MsgICE:
		return p.candidate(msg.Candidate)
	case MsgBye:
		return errBye
	default:
		return nil
	}
}

func (p *peerSession) send(msg Message) error {
	p.writeMu.Lock()
	defer p.writeMu.Unlock()
	_ = p.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return p.conn.WriteJSON(msg)
}

// close ends the socket only. The peer belongs to its factory and outlives signaling.
func (p *peerSession) close() {
	_ = p.conn.Close()
}
