// Package rtc carries pointer events over a WebRTC data channel.
package rtc

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/pion/interceptor"
	"github.com/pion/webrtc/v3"
)

// Label is the data channel label the remote consumer opens.
const Label = "pointer"

// ErrNotOpen is returned by Send while no pointer channel is open.
var ErrNotOpen = errors.New("rtc: data channel not open")

// Channel manages the peer connection and the pointer data channel.
type Channel struct {
	mu     sync.Mutex
	api    *webrtc.API
	config webrtc.Configuration
	peer   *webrtc.PeerConnection
	dc     *webrtc.DataChannel

	onMessage func([]byte)
	onState   func(open bool)
}

// NewChannel initializes the WebRTC API with default codecs/interceptors and the given STUN servers.
func NewChannel(stunURLs []string) (*Channel, error) {
	media := &webrtc.MediaEngine{}
	if err := media.RegisterDefaultCodecs(); err != nil {
		return nil, fmt.Errorf("register codecs: %w", err)
	}

	interceptors := &interceptor.Registry{}
	if err := webrtc.RegisterDefaultInterceptors(media, interceptors); err != nil {
		return nil, fmt.Errorf("register interceptors: %w", err)
	}

	api := webrtc.NewAPI(
		webrtc.WithMediaEngine(media),
		webrtc.WithInterceptorRegistry(interceptors),
	)

	var config webrtc.Configuration
	if len(stunURLs) > 0 {
		config.ICEServers = []webrtc.ICEServer{{URLs: stunURLs}}
	}
	return &Channel{api: api, config: config}, nil
}

// SetHandlers registers callbacks for inbound data and open/close transitions.
// They apply to peers created afterwards.
func (c *Channel) SetHandlers(onMessage func([]byte), onState func(open bool)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onMessage = onMessage
	c.onState = onState
}

// NewPeer creates a new peer connection, closing any previous one. The peer carries an
// unordered, zero-retransmit pointer channel, so the offer it creates negotiates it;
// a pointer channel opened by the remote side is accepted as well.
func (c *Channel) NewPeer() (*webrtc.PeerConnection, error) {
	c.closePeer()

	c.mu.Lock()
	defer c.mu.Unlock()
	peer, err := c.api.NewPeerConnection(c.config)
	if err != nil {
		return nil, err
	}

	ordered := false
	var retransmits uint16
	dc, err := peer.CreateDataChannel(Label, &webrtc.DataChannelInit{
		Ordered:        &ordered,
		MaxRetransmits: &retransmits,
	})
	if err != nil {
		_ = peer.Close()
		return nil, fmt.Errorf("create %s channel: %w", Label, err)
	}
	c.attach(peer, dc)

	peer.OnDataChannel(func(dc *webrtc.DataChannel) {
		if dc.Label() != Label {
			log.Printf("rtc: ignoring data channel %q", dc.Label())
			return
		}
		c.attach(peer, dc)
	})
	peer.OnConnectionStateChange(func(state webrtc.PeerConnectionState) {
		if debugEnabled() {
			log.Printf("rtc: peer state %s", state)
		}
		if state == webrtc.PeerConnectionStateFailed || state == webrtc.PeerConnectionStateClosed {
			c.detach(peer)
		}
	})

	c.peer = peer
	return peer, nil
}

// Send writes data to the open pointer channel.
func (c *Channel) Send(data []byte) error {
	c.mu.Lock()
	dc := c.dc
	c.mu.Unlock()
	if dc == nil {
		return ErrNotOpen
	}
	return dc.Send(data)
}

// Open reports whether the pointer channel is open.
func (c *Channel) Open() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dc != nil
}

// ClosePeer closes the current peer connection.
func (c *Channel) ClosePeer() {
	c.closePeer()
}

// attach wires dc once it belongs to the current peer.
func (c *Channel) attach(peer *webrtc.PeerConnection, dc *webrtc.DataChannel) {
	dc.OnOpen(func() {
		c.mu.Lock()
		if c.peer != peer {
			c.mu.Unlock()
			_ = dc.Close()
			return
		}
		c.dc = dc
		onState := c.onState
		c.mu.Unlock()
		log.Printf("rtc: pointer channel open ordered=%v", dc.Ordered())
		if onState != nil {
			onState(true)
		}
	})
	dc.OnClose(func() {
		c.detach(peer)
	})
	dc.OnMessage(func(msg webrtc.DataChannelMessage) {
		c.mu.Lock()
		onMessage := c.onMessage
		c.mu.Unlock()
		if onMessage != nil && msg.IsString {
			onMessage(msg.Data)
		}
	})
}

// detach clears the channel if peer is still current.
func (c *Channel) detach(peer *webrtc.PeerConnection) {
	c.mu.Lock()
	if c.peer != peer || c.dc == nil {
		c.mu.Unlock()
		return
	}
	c.dc = nil
	onState := c.onState
	c.mu.Unlock()
	log.Printf("rtc: pointer channel closed")
	if onState != nil {
		onState(false)
	}
}

// closePeer detaches and closes the current peer outside the lock, since pion
// may invoke state callbacks while closing.
func (c *Channel) closePeer() {
	c.mu.Lock()
	peer := c.peer
	wasOpen := c.dc != nil
	onState := c.onState
	c.peer = nil
	c.dc = nil
	c.mu.Unlock()

	if peer == nil {
		return
	}
	_ = peer.Close()
	if wasOpen && onState != nil {
		onState(false)
	}
}
