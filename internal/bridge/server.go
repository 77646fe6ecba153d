package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/frudas24/pointerhook/internal/edge"
	"github.com/frudas24/pointerhook/internal/monitor"
	"github.com/frudas24/pointerhook/internal/session"
	"github.com/frudas24/pointerhook/internal/wininput"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const writeTimeout = time.Second

// Controller starts and ends capture sessions. *edge.Switcher implements it.
type Controller interface {
	Capture() error
	Release()
	Capturing() bool
	VirtualBounds() monitor.Rect
}

// Mirror is a secondary transport that receives every outbound message.
type Mirror interface {
	Send(data []byte) error
}

// Server handles the control websocket for the remote consumer.
type Server struct {
	mu       sync.Mutex
	writeMu  sync.Mutex
	upgrader websocket.Upgrader
	session  *session.Session
	control  Controller
	injector wininput.Injector
	cursor   edge.Cursor
	queue    *Queue
	conn     *websocket.Conn
	connID   string
	mirror   Mirror
}

// NewServer creates a control websocket server draining queue.
func NewServer(sess *session.Session, control Controller, injector wininput.Injector, cursor edge.Cursor, queue *Queue) *Server {
	if queue == nil {
		queue = NewQueue(0)
	}
	return &Server{
		session:  sess,
		control:  control,
		injector: injector,
		cursor:   cursor,
		queue:    queue,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// SetMirror attaches a secondary transport; nil detaches it.
func (s *Server) SetMirror(m Mirror) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mirror = m
}

// Dropped returns the number of events lost to a full queue.
func (s *Server) Dropped() uint64 {
	return s.queue.Dropped()
}

// Run drains the event queue until ctx is done.
func (s *Server) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-s.queue.ch:
			s.broadcast(eventMessage(ev))
		}
	}
}

// ServeHTTP upgrades the connection and processes control messages.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !s.session.IsAuthenticated() {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	id, err := s.acceptConn(conn)
	if err != nil {
		rejectConn(conn, err.Error())
		return
	}
	defer s.cleanupConn(conn)
	log.Printf("bridge: consumer connected id=%s remote=%s", id, r.RemoteAddr)

	if err := s.sendTo(conn, s.state()); err != nil {
		return
	}
	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}
		reply, err := s.handleMessage(msg)
		if err != nil {
			log.Printf("bridge: consumer id=%s: %v", id, err)
			return
		}
		if reply != nil {
			if err := s.sendTo(conn, *reply); err != nil {
				return
			}
		}
	}
}

// HandleData applies a command that arrived on the mirror transport and answers there.
func (s *Server) HandleData(data []byte) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		if debugEnabled() {
			log.Printf("bridge: bad mirror payload: %v", err)
		}
		return
	}
	reply, err := s.handleMessage(msg)
	if err != nil {
		log.Printf("bridge: mirror command %s: %v", msg.T, err)
		return
	}
	if reply == nil {
		return
	}
	s.mu.Lock()
	mirror := s.mirror
	s.mu.Unlock()
	if mirror == nil {
		return
	}
	if payload, err := json.Marshal(reply); err == nil {
		_ = mirror.Send(payload)
	}
}

// acceptConn ensures only one active control connection exists.
func (s *Server) acceptConn(conn *websocket.Conn) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn != nil {
		return "", fmt.Errorf("control connection already active")
	}
	s.conn = conn
	s.connID = uuid.NewString()
	s.session.SetConsumer(s.connID)
	return s.connID, nil
}

// cleanupConn clears the active connection and ends any capture it left behind.
func (s *Server) cleanupConn(conn *websocket.Conn) {
	s.mu.Lock()
	active := s.conn == conn
	id := s.connID
	if active {
		s.conn = nil
		s.connID = ""
		s.session.SetConsumer("")
	}
	s.mu.Unlock()
	_ = conn.Close()
	if !active {
		return
	}
	if s.control.Capturing() {
		s.control.Release()
	}
	log.Printf("bridge: consumer disconnected id=%s", id)
}

// rejectConn sends a policy violation close and closes the socket.
func rejectConn(conn *websocket.Conn, reason string) {
	message := websocket.FormatCloseMessage(websocket.ClosePolicyViolation, reason)
	_ = conn.WriteControl(websocket.CloseMessage, message, time.Now().Add(writeTimeout))
	_ = conn.Close()
}

// handleMessage dispatches a single control message and returns an optional reply.
func (s *Server) handleMessage(msg Message) (*Message, error) {
	if debugEnabled() {
		log.Printf("bridge: recv %s", msg.T)
	}
	switch msg.T {
	case CmdCapture:
		if msg.Enabled != nil && !*msg.Enabled {
			s.control.Release()
			return s.reply(s.state()), nil
		}
		if err := s.control.Capture(); err != nil {
			return s.reply(errorMessage(err)), nil
		}
		return s.reply(s.state()), nil
	case CmdRelease:
		s.control.Release()
		return s.reply(s.state()), nil
	case CmdCursor:
		if x, y, ok := msg.point(); ok {
			s.cursor.SetCursorPos(int32(x), int32(y))
		}
		return nil, nil
	case CmdCursorRel:
		s.moveRelative(msg.DX, msg.DY)
		return nil, nil
	case CmdClick:
		return nil, s.handleClick(msg)
	case CmdWheel:
		return nil, s.handleWheel(msg.Delta, msg.Horizontal)
	case CmdInputEnabled:
		if msg.Enabled != nil {
			s.session.SetInputEnabled(*msg.Enabled)
		}
		return nil, nil
	case CmdState:
		return s.reply(s.state()), nil
	case CmdPing:
		return s.reply(Message{T: MsgPong}), nil
	default:
		return nil, nil
	}
}

// moveRelative nudges the cursor within the virtual desktop. Ignored while capturing,
// since the switcher owns the cursor then.
func (s *Server) moveRelative(dx, dy int) {
	if s.control.Capturing() {
		return
	}
	x, y, ok := s.cursor.CursorPos()
	if !ok {
		return
	}
	x, y = s.control.VirtualBounds().Clamp(x+dx, y+dy)
	s.cursor.SetCursorPos(int32(x), int32(y))
}

// handleClick replays a button click when remote input is enabled. With x/y the
// cursor is moved there first.
func (s *Server) handleClick(msg Message) error {
	if !s.session.InputEnabled() {
		return nil
	}
	b := wininput.Button(msg.Button)
	switch b {
	case "":
		b = wininput.ButtonLeft
	case wininput.ButtonLeft, wininput.ButtonRight:
	default:
		return nil
	}

	x, y, at := msg.point()
	var err error
	switch {
	case at && b == wininput.ButtonLeft:
		err = s.injector.ClickAt(x, y)
	case at:
		if err = s.injector.MoveAbs(x, y); err == nil {
			err = wininput.Click(s.injector, b)
		}
	default:
		err = wininput.Click(s.injector, b)
	}
	if err != nil && !errors.Is(err, wininput.ErrUnsupported) {
		return err
	}
	return nil
}

// handleWheel replays a wheel step when remote input is enabled.
func (s *Server) handleWheel(delta int, horizontal bool) error {
	if !s.session.InputEnabled() || delta == 0 {
		return nil
	}
	var err error
	if horizontal {
		err = s.injector.HWheel(delta)
	} else {
		err = s.injector.Wheel(delta)
	}
	if err != nil && !errors.Is(err, wininput.ErrUnsupported) {
		return err
	}
	return nil
}

// state builds the current state message.
func (s *Server) state() Message {
	return stateMessage(s.control.Capturing(), s.queue.Dropped())
}

func (s *Server) reply(msg Message) *Message {
	return &msg
}

// broadcast writes an outbound event to the consumer socket and the mirror.
func (s *Server) broadcast(frame eventFrame) {
	payload, err := json.Marshal(frame)
	if err != nil {
		return
	}
	s.mu.Lock()
	conn := s.conn
	mirror := s.mirror
	s.mu.Unlock()

	if conn != nil {
		if err := s.write(conn, payload); err != nil && debugEnabled() {
			log.Printf("bridge: write %s: %v", frame.T, err)
		}
	}
	if mirror != nil {
		if err := mirror.Send(payload); err != nil && debugEnabled() {
			log.Printf("bridge: mirror %s: %v", frame.T, err)
		}
	}
}

// sendTo writes a message to conn if it is still the active connection.
func (s *Server) sendTo(conn *websocket.Conn, msg Message) error {
	s.mu.Lock()
	active := s.conn
	s.mu.Unlock()
	if active != conn {
		return fmt.Errorf("connection not active")
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return s.write(conn, payload)
}

func (s *Server) write(conn *websocket.Conn, payload []byte) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return conn.WriteMessage(websocket.TextMessage, payload)
}
