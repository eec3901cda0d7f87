package rtcstate

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/pion/webrtc/v3"

	"github.com/frudas24/swipedeck/internal/stream"
)

// frameFeed forwards hub frames into a WebRTC data channel.
type frameFeed struct {
	mu      sync.Mutex
	hub     *stream.Hub
	channel *webrtc.DataChannel
	ctx     context.Context
	cancel  context.CancelFunc
	running bool
}

// newFrameFeed creates a feed bound to a data channel.
func newFrameFeed(hub *stream.Hub, channel *webrtc.DataChannel) *frameFeed {
	return &frameFeed{hub: hub, channel: channel}
}

// start begins forwarding frames into the data channel.
func (f *frameFeed) start() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.running {
		return
	}
	f.ctx, f.cancel = context.WithCancel(context.Background())
	f.running = true
	go f.loop(f.ctx)
}

// stop cancels the forward loop.
func (f *frameFeed) stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cancel != nil {
		f.cancel()
	}
	f.running = false
}

// loop reads hub frames and writes them to the data channel as JSON.
func (f *frameFeed) loop(ctx context.Context) {
	ch := f.hub.Subscribe()
	defer f.hub.Unsubscribe(ch)

	for {
		select {
		case <-ctx.Done():
			return
		case frame, ok := <-ch:
			if !ok {
				return
			}
			payload, err := json.Marshal(frame)
			if err != nil {
				continue
			}
			if err := f.channel.Send(payload); err != nil {
				return
			}
			if debugFramesEnabled() {
				log.Printf("rtcstate: sent frame seq=%d phase=%s", frame.Seq, frame.Phase)
			}
		}
	}
}
