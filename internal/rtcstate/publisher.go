// Package rtcstate streams deck frames over a WebRTC data channel.
package rtcstate

import (
	"fmt"
	"sync"

	"github.com/pion/interceptor"
	"github.com/pion/webrtc/v3"

	"github.com/frudas24/swipedeck/internal/stream"
)

// channelLabel is the data channel carrying frame JSON.
const channelLabel = "frames"

// Publisher manages the WebRTC peer connection and its frame channel.
type Publisher struct {
	mu   sync.Mutex
	api  *webrtc.API
	hub  *stream.Hub
	peer *webrtc.PeerConnection
	feed *frameFeed
}

// NewPublisher initializes a WebRTC publisher with default codecs/interceptors.
func NewPublisher(hub *stream.Hub) (*Publisher, error) {
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

	return &Publisher{api: api, hub: hub}, nil
}

// NewPeer creates a new peer connection wired to feed frames to the viewer.
func (p *Publisher) NewPeer() (*webrtc.PeerConnection, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closePeerLocked()

	peer, err := p.api.NewPeerConnection(webrtc.Configuration{})
	if err != nil {
		return nil, err
	}

	// The viewer opens the channel and picks its reliability settings;
	// anything other than the frame channel is ignored.
	peer.OnDataChannel(func(channel *webrtc.DataChannel) {
		if channel.Label() != channelLabel {
			return
		}
		p.attachChannel(peer, channel)
	})

	p.peer = peer
	return peer, nil
}

// attachChannel wires the frame feed to a viewer-opened channel.
func (p *Publisher) attachChannel(peer *webrtc.PeerConnection, channel *webrtc.DataChannel) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.peer != peer {
		return
	}
	if p.feed != nil {
		p.feed.stop()
	}
	feed := newFrameFeed(p.hub, channel)
	channel.OnOpen(func() {
		feed.start()
	})
	channel.OnClose(func() {
		feed.stop()
	})
	p.feed = feed
}

// ClosePeer closes the current peer connection and stops its frame feed.
func (p *Publisher) ClosePeer() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closePeerLocked()
}

// closePeerLocked tears down the active peer while holding the publisher lock.
func (p *Publisher) closePeerLocked() {
	if p.feed != nil {
		p.feed.stop()
		p.feed = nil
	}
	if p.peer != nil {
		_ = p.peer.Close()
		p.peer = nil
	}
}
