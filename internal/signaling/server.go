package signaling

import (
	"errors"
	"log"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/pion/webrtc/v3"
)

// PeerFactory creates the peer for a new signaling session. *rtc.Channel implements it.
type PeerFactory interface {
	NewPeer() (*webrtc.PeerConnection, error)
}

// Server runs signaling sessions over websocket. A new session replaces the active one,
// so a reconnecting device takes over from its stale socket.
type Server struct {
	mu       sync.Mutex
	upgrader websocket.Upgrader
	peers    PeerFactory
	authFn   func() bool
	active   *peerSession
}

// NewServer creates a signaling server. authFn gates the upgrade; nil allows everyone.
func NewServer(peers PeerFactory, authFn func() bool) *Server {
	return &Server{
		peers:  peers,
		authFn: authFn,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// ServeHTTP upgrades the request, sends the offer and processes answer/ice/bye.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if s.authFn != nil && !s.authFn() {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	ps := &peerSession{id: uuid.NewString(), conn: conn}
	peer, err := s.peers.NewPeer()
	if err != nil {
		log.Printf("signaling: id=%s new peer: %v", ps.id, err)
		_ = ps.send(Message{T: MsgError, Error: err.Error()})
		ps.close()
		return
	}
	ps.peer = peer
	s.activate(ps)
	defer s.deactivate(ps)

	peer.OnICECandidate(func(c *webrtc.ICECandidate) {
		if c == nil {
			return
		}
		init := c.ToJSON()
		_ = ps.send(Message{T: MsgICE, Candidate: &init})
	})

	sdp, err := ps.offer()
	if err != nil {
		log.Printf("signaling: id=%s %v", ps.id, err)
		_ = ps.send(Message{T: MsgError, Error: err.Error()})
		return
	}
	if err := ps.send(Message{T: MsgOffer, SDP: sdp}); err != nil {
		return
	}
	log.Printf("signaling: session started id=%s remote=%s", ps.id, r.RemoteAddr)

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}
		err := ps.handle(msg)
		if errors.Is(err, errBye) {
			log.Printf("signaling: session ended id=%s", ps.id)
			return
		}
		if err != nil {
			log.Printf("signaling: id=%s %s: %v", ps.id, msg.T, err)
			_ = ps.send(Message{T: MsgError, Error: err.Error()})
			return
		}
	}
}

// activate makes ps the active session and closes the one it replaces.
func (s *Server) activate(ps *peerSession) {
	s.mu.Lock()
	prev := s.active
	s.active = ps
	s.mu.Unlock()
	if prev != nil {
		log.Printf("signaling: session replaced id=%s by id=%s", prev.id, ps.id)
		prev.close()
	}
}

// deactivate clears ps if it is still active and closes it.
func (s *Server) deactivate(ps *peerSession) {
	s.mu.Lock()
	if s.active == ps {
		s.active = nil
	}
	s.mu.Unlock()
	ps.close()
}
