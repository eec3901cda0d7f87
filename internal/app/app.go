// Package app wires HTTP, websocket servers, and the deck together.
package app

import (
	"errors"
	"log"
	"os"
	"sync"
	"time"

	"github.com/frudas24/swipedeck/internal/config"
	"github.com/frudas24/swipedeck/internal/control"
	"github.com/frudas24/swipedeck/internal/deck"
	"github.com/frudas24/swipedeck/internal/rtcstate"
	"github.com/frudas24/swipedeck/internal/session"
	"github.com/frudas24/swipedeck/internal/signaling"
	"github.com/frudas24/swipedeck/internal/stream"
	"github.com/frudas24/swipedeck/internal/tuning"
	"github.com/frudas24/swipedeck/internal/velocity"
	"github.com/frudas24/swipedeck/internal/viewport"
)

// App coordinates the HTTP API, websocket servers, and the live deck.
type App struct {
	mu        sync.Mutex
	cfg       config.Config
	session   *session.Session
	hub       *stream.Hub
	pump      *stream.Pump
	publisher *rtcstate.Publisher
	signaling *signaling.Server
	control   *control.Server
	state     *stream.WSServer
	tuning    tuning.Tuning
	deck      *deck.Controller
	binding   *control.DragBinding
}

// New creates a new application with its dependencies wired.
func New(cfg config.Config, sess *session.Session, policy signaling.ViewerPolicy) (*App, error) {
	if sess == nil {
		return nil, errors.New("session is required")
	}

	app := &App{
		cfg:     cfg,
		session: sess,
		hub:     stream.NewHub(0),
		tuning:  tuning.Default(),
	}

	frameRate := cfg.FrameRate
	if frameRate <= 0 {
		frameRate = 60
	}
	app.pump = stream.NewPump(app.hub, app.snapshotDeck, time.Second/time.Duration(frameRate))
	app.state = stream.NewWSServer(sess, app.hub)
	app.control = control.NewServer(sess, app.currentBinding, app.setViewport, app.applyTuning, app.resetDeck)

	if cfg.RTCEnabled {
		publisher, err := rtcstate.NewPublisher(app.hub)
		if err != nil {
			return nil, err
		}
		app.publisher = publisher
		app.signaling = signaling.NewServer(publisher, policy, sess.IsAuthenticated)
	}

	return app, nil
}

// Start loads persisted tuning, seeds the viewport, and builds the first deck.
func (a *App) Start() error {
	t := a.startupTuning()
	if _, err := os.Stat(a.cfg.TuningPath); err == nil {
		loaded, err := tuning.Load(a.cfg.TuningPath)
		if err != nil {
			return err
		}
		t = loaded
	}

	a.mu.Lock()
	a.tuning = t
	a.mu.Unlock()

	a.session.SetViewport(viewport.Fallback(a.cfg.DefaultScreenW, a.cfg.DefaultScreenH))

	if err := a.RebuildDeck("startup"); err != nil {
		return err
	}
	a.pump.Start()
	return nil
}

// Shutdown stops background loops and closes the RTC peer.
func (a *App) Shutdown() {
	a.pump.Stop()
	if a.publisher != nil {
		a.publisher.ClosePeer()
	}
}

// RebuildDeck replaces the controller to match the current viewport and tuning.
func (a *App) RebuildDeck(reason string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	v := a.session.Viewport()
	t := a.tuning

	d, err := deck.New(deck.Params{
		ScreenWidth:    v.W,
		ThresholdPct:   t.ThresholdPct,
		Overshoot:      t.Overshoot,
		RestScale:      t.RestScale,
		MaxRotationDeg: t.MaxRotationDeg,
		Swipe:          t.Swipe.Spec(),
		Settle:         t.Settle.Spec(),
		OnSwipeLeft:    func() { a.recordSwipe(control.DirLeft) },
		OnSwipeRight:   func() { a.recordSwipe(control.DirRight) },
	})
	if err != nil {
		return err
	}
	if a.cfg.FrameRate > 0 {
		d.SetStepInterval(time.Second / time.Duration(a.cfg.FrameRate))
	}

	a.deck = d
	a.binding = control.NewDragBinding(d, velocity.NewWindow(0), t.VelocityThreshold)
	log.Printf("deck: rebuilt for %s (width=%.0f threshold=%.0f)", reason, d.ScreenWidth(), d.ActivationX())

	if a.signaling != nil {
		// A rebuilt deck invalidates in-flight frames, so viewers on the
		// unreliable channel are told to drop their interpolation state.
		a.signaling.NotifyRestart()
	}
	return nil
}

// Tuning returns the active interaction constants.
func (a *App) Tuning() tuning.Tuning {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.tuning
}

// Deck returns the live controller.
func (a *App) Deck() *deck.Controller {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.deck
}

// Control returns the control websocket handler.
func (a *App) Control() *control.Server {
	return a.control
}

// Signaling returns the signaling websocket handler, nil when RTC is disabled.
func (a *App) Signaling() *signaling.Server {
	return a.signaling
}

// State returns the frame stream websocket handler.
func (a *App) State() *stream.WSServer {
	return a.state
}

// applyTuning validates, persists, and applies a tuning update.
func (a *App) applyTuning(t tuning.Tuning) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if err := tuning.Save(a.cfg.TuningPath, t); err != nil {
		return err
	}

	a.mu.Lock()
	a.tuning = t
	a.mu.Unlock()

	if err := a.RebuildDeck("tuning"); err != nil {
		return err
	}
	a.pushDeckEvent()
	return nil
}

// setViewport stores a client layout report and rebuilds the deck around it.
func (a *App) setViewport(v viewport.Viewport) {
	a.session.SetViewport(v)
	if err := a.RebuildDeck("viewport"); err != nil {
		log.Printf("deck: rebuild failed: %v", err)
		return
	}
	a.pushDeckEvent()
}

// resetDeck clears tallies and replaces the controller at rest.
func (a *App) resetDeck() {
	a.session.ResetDeck()
	if err := a.RebuildDeck("reset"); err != nil {
		log.Printf("deck: rebuild failed: %v", err)
		return
	}
	a.pushDeckEvent()
}

// recordSwipe tallies a committed swipe and notifies the control client.
func (a *App) recordSwipe(dir string) {
	if dir == control.DirLeft {
		a.session.RecordSwipeLeft()
	} else {
		a.session.RecordSwipeRight()
	}
	snap := a.session.Snapshot()
	a.control.PushEvent(control.Event{
		T:      "swiped",
		Dir:    dir,
		Index:  snap.CardIndex,
		Lefts:  snap.Lefts,
		Rights: snap.Rights,
	})
	log.Printf("deck: swiped %s (card=%d)", dir, snap.CardIndex)
}

// pushDeckEvent sends the current geometry and tuning to the control client.
func (a *App) pushDeckEvent() {
	v := a.session.Viewport()
	t := a.Tuning()
	a.control.PushEvent(control.Event{T: "deck", W: v.W, H: v.H, Tuning: &t})
}

// currentBinding returns the binding driving the live controller.
func (a *App) currentBinding() *control.DragBinding {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.binding
}

// snapshotDeck samples the live controller for the frame pump.
func (a *App) snapshotDeck() deck.Snapshot {
	a.mu.Lock()
	d := a.deck
	a.mu.Unlock()
	if d == nil {
		return deck.Snapshot{Phase: deck.PhaseIdle}
	}
	return d.Snapshot()
}

// startupTuning returns the stock constants overridden by process configuration.
func (a *App) startupTuning() tuning.Tuning {
	t := tuning.Default()
	if a.cfg.SwipeThresholdPct > 0 {
		t.ThresholdPct = a.cfg.SwipeThresholdPct
	}
	if a.cfg.VelocityThreshold > 0 {
		t.VelocityThreshold = a.cfg.VelocityThreshold
	}
	return t
}
