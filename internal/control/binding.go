package control

import (
	"math"
	"time"

	"github.com/frudas24/swipedeck/internal/deck"
	"github.com/frudas24/swipedeck/internal/norm"
	"github.com/frudas24/swipedeck/internal/velocity"
)

// DragBinding bridges a pointer drag stream onto one deck controller. It is
// owned by the control loop and must not be called concurrently.
type DragBinding struct {
	deck              *deck.Controller
	tracker           velocity.Tracker
	velocityThreshold float64
	now               func() time.Time

	dragActive  bool
	dragPointer int
	gestureX    float64
	gestureY    float64
}

// NewDragBinding wires a controller and a velocity tracker with the given
// flick threshold in units per second.
func NewDragBinding(c *deck.Controller, tr velocity.Tracker, velocityThreshold float64) *DragBinding {
	return &DragBinding{
		deck:              c,
		tracker:           tr,
		velocityThreshold: velocityThreshold,
		now:               time.Now,
	}
}

// SetNowFunc overrides the clock used for velocity samples.
func (b *DragBinding) SetNowFunc(fn func() time.Time) {
	if fn != nil {
		b.now = fn
	}
}

// Deck returns the controller this binding drives.
func (b *DragBinding) Deck() *deck.Controller {
	return b.deck
}

// HandleStart begins a drag session for the given pointer.
func (b *DragBinding) HandleStart(pointerID int) {
	b.dragActive = true
	b.dragPointer = pointerID
	b.gestureX = 0
	b.gestureY = 0
	b.tracker.Reset()
	b.tracker.AddSample(b.now(), 0, 0)
	b.deck.DragStart()
}

// HandleMove applies one drag delta and reports whether it was consumed.
// The offsets shift by the delta, rotation and scale follow from the new
// horizontal offset, and the sample feeds the velocity tracker. A failed
// range mapping skips that one property and keeps the drag alive.
func (b *DragBinding) HandleMove(pointerID int, dx, dy float64) bool {
	if !b.dragActive || b.dragPointer != pointerID {
		return false
	}

	b.deck.ShiftBy(dx, dy)
	off := b.deck.OffsetX()
	w := b.deck.ScreenWidth()
	maxRot := b.deck.MaxRotationDeg()
	if rot, err := norm.Map(off, -w, w, -maxRot, maxRot); err == nil {
		b.deck.SetRotation(rot)
	}
	if sc, err := norm.Map(math.Abs(off), 0, b.deck.ActivationX(), b.deck.RestScale(), 1.0); err == nil {
		b.deck.SetScale(sc)
	}

	b.gestureX += dx
	b.gestureY += dy
	b.tracker.AddSample(b.now(), b.gestureX, b.gestureY)
	return true
}

// HandleEnd finishes the drag and picks the release action.
func (b *DragBinding) HandleEnd(pointerID int) Decision {
	if !b.dragActive || b.dragPointer != pointerID {
		return DecisionNone
	}
	b.dragActive = false

	vx := b.tracker.VelocityX()
	b.tracker.Reset()

	d := decideRelease(b.deck.OffsetX(), b.deck.ActivationX(), vx, b.velocityThreshold)
	switch d {
	case DecisionSwipeLeft:
		b.deck.SwipeLeft()
	case DecisionSwipeRight:
		b.deck.SwipeRight()
	case DecisionReturnCenter:
		b.deck.ReturnCenter()
	}
	return d
}
