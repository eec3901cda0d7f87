package stream

import (
	"sync"
	"time"
)

// Hub broadcasts frames to subscribers. New subscribers immediately receive
// the last published frame so a fresh viewer renders without waiting for the
// next change.
type Hub struct {
	mu          sync.RWMutex
	subs        map[chan Frame]struct{}
	last        Frame
	hasLast     bool
	minInterval time.Duration
	lastPush    time.Time
	seq         uint64
}

// NewHub creates a hub with a minimum broadcast interval. Zero disables throttling.
func NewHub(minInterval time.Duration) *Hub {
	return &Hub{
		subs:        make(map[chan Frame]struct{}),
		minInterval: minInterval,
	}
}

// Publish sequences a frame and sends it to all subscribers. Throttled frames
// still become the replayed last frame.
func (h *Hub) Publish(f Frame) {
	now := time.Now()
	h.mu.Lock()
	h.seq++
	f.Seq = h.seq
	if h.minInterval > 0 && now.Sub(h.lastPush) < h.minInterval {
		h.last = f
		h.hasLast = true
		h.mu.Unlock()
		return
	}
	h.last = f
	h.hasLast = true
	h.lastPush = now
	for ch := range h.subs {
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- f:
		default:
		}
	}
	h.mu.Unlock()
}

// Last returns the most recent frame, if any was published.
func (h *Hub) Last() (Frame, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.last, h.hasLast
}

// Subscribe registers a new frame receiver and replays the last frame to it.
func (h *Hub) Subscribe() chan Frame {
	ch := make(chan Frame, 1)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	if h.hasLast {
		ch <- h.last
	}
	h.mu.Unlock()
	return ch
}

// Unsubscribe removes a receiver and closes its channel.
func (h *Hub) Unsubscribe(ch chan Frame) {
	h.mu.Lock()
	delete(h.subs, ch)
	close(ch)
	h.mu.Unlock()
}
