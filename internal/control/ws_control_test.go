package control

import (
	"errors"
	"testing"

	"github.com/frudas24/swipedeck/internal/deck"
	"github.com/frudas24/swipedeck/internal/session"
	"github.com/frudas24/swipedeck/internal/testutil"
	"github.com/frudas24/swipedeck/internal/tuning"
	"github.com/frudas24/swipedeck/internal/viewport"
)

// controlFixture bundles a server with its recording collaborators.
type controlFixture struct {
	server    *Server
	sess      *session.Session
	deck      *deck.Controller
	viewports []viewport.Viewport
	tunings   []tuning.Tuning
	tuningErr error
	resets    int
}

// newControlFixture wires a control server over a fast test deck.
func newControlFixture(t *testing.T) *controlFixture {
	t.Helper()
	f := &controlFixture{sess: session.New("pw")}
	f.deck = testDeck(t, 1000)
	binding := NewDragBinding(f.deck, &testutil.FakeTracker{}, 200)
	f.server = NewServer(
		f.sess,
		func() *DragBinding { return binding },
		func(v viewport.Viewport) { f.viewports = append(f.viewports, v) },
		func(tn tuning.Tuning) error { f.tunings = append(f.tunings, tn); return f.tuningErr },
		func() { f.resets++ },
	)
	return f
}

// TestHandleMessage_DragFlow verifies a start/move/end exchange reaches the deck.
func TestHandleMessage_DragFlow(t *testing.T) {
	f := newControlFixture(t)

	if err := f.server.handleMessage(Message{T: "start", ID: 1}); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if err := f.server.handleMessage(Message{T: "move", ID: 1, DX: -600, DY: 4}); err != nil {
		t.Fatalf("move failed: %v", err)
	}
	if got := f.deck.OffsetX(); got != -600 {
		t.Fatalf("expected offsetX -600, got %v", got)
	}
	if err := f.server.handleMessage(Message{T: "end", ID: 1}); err != nil {
		t.Fatalf("end failed: %v", err)
	}
	if got := f.deck.Phase(); got != deck.PhaseOut {
		t.Fatalf("expected out phase after release, got %v", got)
	}
}

// TestHandleMessage_DragGatedByKillSwitch verifies disabled input freezes the deck.
func TestHandleMessage_DragGatedByKillSwitch(t *testing.T) {
	f := newControlFixture(t)
	f.sess.SetInputEnabled(false)

	_ = f.server.handleMessage(Message{T: "start", ID: 1})
	_ = f.server.handleMessage(Message{T: "move", ID: 1, DX: -300})
	if got := f.deck.OffsetX(); got != 0 {
		t.Fatalf("expected untouched deck, got offsetX %v", got)
	}
	if got := f.deck.Phase(); got != deck.PhaseIdle {
		t.Fatalf("expected idle phase, got %v", got)
	}
}

// TestHandleMessage_SwipeButton verifies a programmatic swipe launches the sequence.
func TestHandleMessage_SwipeButton(t *testing.T) {
	f := newControlFixture(t)

	if err := f.server.handleMessage(Message{T: "swipe", Dir: DirLeft}); err != nil {
		t.Fatalf("swipe failed: %v", err)
	}
	if got := f.deck.Phase(); got != deck.PhaseOut {
		t.Fatalf("expected out phase, got %v", got)
	}
}

// TestHandleMessage_SwipeGatedByKillSwitch verifies buttons honor the kill switch.
func TestHandleMessage_SwipeGatedByKillSwitch(t *testing.T) {
	f := newControlFixture(t)
	f.sess.SetInputEnabled(false)

	_ = f.server.handleMessage(Message{T: "swipe", Dir: DirRight})
	if got := f.deck.Phase(); got != deck.PhaseIdle {
		t.Fatalf("expected idle phase, got %v", got)
	}
}

// TestHandleMessage_CenterAlwaysAllowed verifies recentering works even when input is off.
func TestHandleMessage_CenterAlwaysAllowed(t *testing.T) {
	f := newControlFixture(t)
	f.sess.SetInputEnabled(false)

	_ = f.server.handleMessage(Message{T: "center"})
	if got := f.deck.Phase(); got != deck.PhaseSettle {
		t.Fatalf("expected settle phase, got %v", got)
	}
}

// TestHandleMessage_ViewportReported verifies a valid viewport reaches the callback.
func TestHandleMessage_ViewportReported(t *testing.T) {
	f := newControlFixture(t)

	_ = f.server.handleMessage(Message{T: "viewport", W: 390, H: 844, DPR: 3})
	if len(f.viewports) != 1 || f.viewports[0].W != 390 || f.viewports[0].DPR != 3 {
		t.Fatalf("unexpected viewports: %+v", f.viewports)
	}
}

// TestHandleMessage_ViewportInvalidIgnored verifies an empty box is dropped.
func TestHandleMessage_ViewportInvalidIgnored(t *testing.T) {
	f := newControlFixture(t)

	_ = f.server.handleMessage(Message{T: "viewport", W: 0, H: 844})
	if len(f.viewports) != 0 {
		t.Fatalf("expected invalid viewport to be dropped, got %+v", f.viewports)
	}
}

// TestHandleMessage_InputToggle verifies the kill switch message.
func TestHandleMessage_InputToggle(t *testing.T) {
	f := newControlFixture(t)

	off := false
	_ = f.server.handleMessage(Message{T: "inputEnabled", Enabled: &off})
	if f.sess.InputEnabled() {
		t.Fatal("expected input disabled")
	}
	on := true
	_ = f.server.handleMessage(Message{T: "inputEnabled", Enabled: &on})
	if !f.sess.InputEnabled() {
		t.Fatal("expected input enabled")
	}
}

// TestHandleMessage_TuningApplied verifies tuning updates reach the callback.
func TestHandleMessage_TuningApplied(t *testing.T) {
	f := newControlFixture(t)

	tn := tuning.Default()
	tn.VelocityThreshold = 300
	_ = f.server.handleMessage(Message{T: "tuning", Tuning: &tn})
	if len(f.tunings) != 1 || f.tunings[0].VelocityThreshold != 300 {
		t.Fatalf("unexpected tunings: %+v", f.tunings)
	}
}

// TestHandleMessage_TuningRejectionKeepsConnection verifies a rejected update is not fatal.
func TestHandleMessage_TuningRejectionKeepsConnection(t *testing.T) {
	f := newControlFixture(t)
	f.tuningErr = errors.New("out of range")

	tn := tuning.Default()
	if err := f.server.handleMessage(Message{T: "tuning", Tuning: &tn}); err != nil {
		t.Fatalf("expected rejection to be swallowed, got %v", err)
	}
}

// TestHandleMessage_Reset verifies the reset message reaches the callback.
func TestHandleMessage_Reset(t *testing.T) {
	f := newControlFixture(t)

	_ = f.server.handleMessage(Message{T: "reset"})
	if f.resets != 1 {
		t.Fatalf("expected one reset, got %d", f.resets)
	}
}

// TestHandleMessage_UnknownIgnored verifies unknown message types are no-ops.
func TestHandleMessage_UnknownIgnored(t *testing.T) {
	f := newControlFixture(t)

	if err := f.server.handleMessage(Message{T: "mystery"}); err != nil {
		t.Fatalf("expected unknown type to be ignored, got %v", err)
	}
}

// TestPushEvent_NoConnection verifies pushing without a client is safe.
func TestPushEvent_NoConnection(t *testing.T) {
	f := newControlFixture(t)
	f.server.PushEvent(Event{T: "swiped", Dir: DirLeft})
}
