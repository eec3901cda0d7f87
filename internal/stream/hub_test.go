package stream

import (
	"sync"
	"testing"
	"time"

	"github.com/frudas24/swipedeck/internal/deck"
)

// testFrame returns a frame with a recognizable horizontal offset.
func testFrame(offsetX float64) Frame {
	return Frame{OffsetX: offsetX, Scale: 0.8, Phase: deck.PhaseIdle}
}

// TestHubSubscribeReplaysLastFrame validates a new subscriber immediately receives the most recent frame.
func TestHubSubscribeReplaysLastFrame(t *testing.T) {
	h := NewHub(0)
	h.Publish(testFrame(-40))

	ch := h.Subscribe()
	defer h.Unsubscribe(ch)

	select {
	case got := <-ch:
		if got.OffsetX != -40 {
			t.Fatalf("expected replayed offset -40, got %v", got.OffsetX)
		}
		if got.Seq != 1 {
			t.Fatalf("expected replayed frame seq 1, got %d", got.Seq)
		}
	default:
		t.Fatal("expected a replayed frame immediately after subscribe")
	}
}

// TestHubPublishSequencesFrames validates every publish takes the next sequence number.
func TestHubPublishSequencesFrames(t *testing.T) {
	h := NewHub(0)
	h.Publish(testFrame(1))
	h.Publish(testFrame(2))
	h.Publish(testFrame(3))

	last, ok := h.Last()
	if !ok {
		t.Fatal("expected a last frame after publishing")
	}
	if last.Seq != 3 {
		t.Fatalf("expected seq 3 after three publishes, got %d", last.Seq)
	}
	if last.OffsetX != 3 {
		t.Fatalf("expected last offset 3, got %v", last.OffsetX)
	}
}

// TestHubSubscriberKeepsNewestFrame validates an unread buffered frame is replaced by the next publish.
func TestHubSubscriberKeepsNewestFrame(t *testing.T) {
	h := NewHub(0)
	ch := h.Subscribe()
	defer h.Unsubscribe(ch)

	h.Publish(testFrame(1))
	h.Publish(testFrame(2))

	select {
	case got := <-ch:
		if got.OffsetX != 2 {
			t.Fatalf("expected the newest frame to replace the unread one, got offset %v", got.OffsetX)
		}
	default:
		t.Fatal("expected a buffered frame after publishing")
	}
}

// TestHubThrottleKeepsLastFrame ensures a throttled publish updates the last frame but does not broadcast immediately.
func TestHubThrottleKeepsLastFrame(t *testing.T) {
	t.Parallel()

	h := NewHub(time.Hour)
	ch := h.Subscribe()
	defer h.Unsubscribe(ch)

	h.Publish(testFrame(1))
	select {
	case got := <-ch:
		if got.OffsetX != 1 {
			t.Fatalf("expected first publish to broadcast, got offset %v", got.OffsetX)
		}
	case <-time.After(200 * time.Millisecond):
		t.Fatal("timed out waiting for first publish")
	}

	h.Publish(testFrame(2))
	select {
	case <-ch:
		t.Fatal("expected throttled publish to not broadcast immediately")
	case <-time.After(50 * time.Millisecond):
	}

	last, ok := h.Last()
	if !ok || last.OffsetX != 2 {
		t.Fatalf("expected last frame to update even when throttled, got %+v ok=%v", last, ok)
	}
	if last.Seq != 2 {
		t.Fatalf("expected throttled frame to still take a sequence number, got %d", last.Seq)
	}
}

// TestHubUnsubscribeClosesChannel validates unsubscribe closes the receiver channel.
func TestHubUnsubscribeClosesChannel(t *testing.T) {
	h := NewHub(0)
	ch := h.Subscribe()
	h.Unsubscribe(ch)

	if _, ok := <-ch; ok {
		t.Fatal("expected channel to be closed after unsubscribe")
	}
}

// TestHubConcurrentChurn does a basic concurrent publish/subscribe churn to help catch panics and race issues under -race.
func TestHubConcurrentChurn(t *testing.T) {
	t.Parallel()

	h := NewHub(0)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				h.Publish(testFrame(float64(j)))
			}
		}()
	}

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				ch := h.Subscribe()
				select {
				case <-ch:
				default:
				}
				h.Unsubscribe(ch)
			}
		}()
	}

	wg.Wait()
}
