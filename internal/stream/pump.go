package stream

import (
	"context"
	"sync"
	"time"

	"github.com/frudas24/swipedeck/internal/deck"
)

// heartbeatInterval is how often an unchanged idle deck is still published.
const heartbeatInterval = time.Second

// SnapshotProvider returns the current deck snapshot.
type SnapshotProvider func() deck.Snapshot

// Pump samples the deck at a fixed rate and publishes frames to a hub. It
// skips publishing while the deck sits unchanged at idle, apart from a
// heartbeat frame that keeps late viewers current.
type Pump struct {
	mu       sync.Mutex
	hub      *Hub
	snapshot SnapshotProvider
	interval time.Duration
	cancel   context.CancelFunc
}

// NewPump creates a pump sampling at the given interval.
func NewPump(hub *Hub, snapshot SnapshotProvider, interval time.Duration) *Pump {
	if interval <= 0 {
		interval = time.Second / 60
	}
	return &Pump{
		hub:      hub,
		snapshot: snapshot,
		interval: interval,
	}
}

// Start launches the sampling loop, replacing any previous one.
func (p *Pump) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	go p.loop(ctx, p.interval)
}

// Stop terminates the sampling loop.
func (p *Pump) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
}

// stopLocked cancels the running loop while holding the pump lock.
func (p *Pump) stopLocked() {
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
}

// loop samples the deck until the context is cancelled.
func (p *Pump) loop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var last deck.Snapshot
	var lastAt time.Time
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s := p.snapshot()
			if s == last && s.Phase == deck.PhaseIdle && now.Sub(lastAt) < heartbeatInterval {
				continue
			}
			p.hub.Publish(FromSnapshot(s))
			last = s
			lastAt = now
		}
	}
}
