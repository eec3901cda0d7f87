package rtcstate

import (
	"testing"

	"github.com/frudas24/swipedeck/internal/stream"
)

// TestNewPublisherInitializes validates the WebRTC API setup succeeds.
func TestNewPublisherInitializes(t *testing.T) {
	if _, err := NewPublisher(stream.NewHub(0)); err != nil {
		t.Fatalf("new publisher: %v", err)
	}
}

// TestNewPeerReplacesPrevious validates each NewPeer call yields a fresh peer connection.
func TestNewPeerReplacesPrevious(t *testing.T) {
	p, err := NewPublisher(stream.NewHub(0))
	if err != nil {
		t.Fatalf("new publisher: %v", err)
	}

	first, err := p.NewPeer()
	if err != nil {
		t.Fatalf("first peer: %v", err)
	}
	second, err := p.NewPeer()
	if err != nil {
		t.Fatalf("second peer: %v", err)
	}
	if first == second {
		t.Fatal("expected a fresh peer connection")
	}
	p.ClosePeer()
}

// TestClosePeerWithoutPeer validates ClosePeer tolerates having no active peer.
func TestClosePeerWithoutPeer(t *testing.T) {
	p, err := NewPublisher(stream.NewHub(0))
	if err != nil {
		t.Fatalf("new publisher: %v", err)
	}
	p.ClosePeer()
	p.ClosePeer()
}

// TestFrameFeedStopBeforeStart validates stopping an unstarted feed is harmless.
func TestFrameFeedStopBeforeStart(t *testing.T) {
	f := newFrameFeed(stream.NewHub(0), nil)
	f.stop()
}
