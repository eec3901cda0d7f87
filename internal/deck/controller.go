// Package deck runs the card stack interaction state machine.
package deck

import (
	"sync"
	"time"

	"github.com/frudas24/swipedeck/internal/anim"
)

// Phase is the coarse interaction state reported to renderers.
type Phase string

// Interaction phases.
const (
	PhaseIdle     Phase = "idle"
	PhaseDragging Phase = "dragging"
	PhaseOut      Phase = "out"
	PhaseSettle   Phase = "settle"
)

// Snapshot is a point-in-time copy of the renderable card state.
type Snapshot struct {
	OffsetX  float64
	OffsetY  float64
	Rotation float64
	Scale    float64
	Phase    Phase
}

// Controller owns the four animatable card properties and the swipe
// sequences that drive them. The screen width is fixed at construction;
// geometry changes require a new controller.
type Controller struct {
	screenWidth float64
	activationX float64
	overshoot   float64
	restScale   float64
	maxRotation float64
	swipeSpec   anim.Spec
	settleSpec  anim.Spec

	offsetX  *anim.Property
	offsetY  *anim.Property
	rotation *anim.Property
	scale    *anim.Property

	onSwipeLeft  func()
	onSwipeRight func()

	mu    sync.Mutex
	phase Phase
}

// New validates p and returns a controller at rest in the centered state.
func New(p Params) (*Controller, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &Controller{
		screenWidth:  p.ScreenWidth,
		activationX:  p.ScreenWidth * p.ThresholdPct,
		overshoot:    p.Overshoot,
		restScale:    p.RestScale,
		maxRotation:  p.MaxRotationDeg,
		swipeSpec:    p.Swipe,
		settleSpec:   p.Settle,
		offsetX:      anim.NewProperty(0),
		offsetY:      anim.NewProperty(0),
		rotation:     anim.NewProperty(0),
		scale:        anim.NewProperty(p.RestScale),
		onSwipeLeft:  p.OnSwipeLeft,
		onSwipeRight: p.OnSwipeRight,
		phase:        PhaseIdle,
	}, nil
}

// ScreenWidth reports the construction-time screen width.
func (c *Controller) ScreenWidth() float64 {
	return c.screenWidth
}

// ActivationX reports the positional swipe threshold in screen units.
func (c *Controller) ActivationX() float64 {
	return c.activationX
}

// RestScale reports the scale the deck rests at.
func (c *Controller) RestScale() float64 {
	return c.restScale
}

// MaxRotationDeg reports the rotation applied at a full-width offset.
func (c *Controller) MaxRotationDeg() float64 {
	return c.maxRotation
}

// OffsetX reports the current horizontal card offset.
func (c *Controller) OffsetX() float64 {
	return c.offsetX.Value()
}

// OffsetY reports the current vertical card offset.
func (c *Controller) OffsetY() float64 {
	return c.offsetY.Value()
}

// Rotation reports the current card rotation in degrees.
func (c *Controller) Rotation() float64 {
	return c.rotation.Value()
}

// Scale reports the current card scale.
func (c *Controller) Scale() float64 {
	return c.scale.Value()
}

// Phase reports the current interaction phase.
func (c *Controller) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Snapshot copies the four property values and the phase in one call.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		OffsetX:  c.offsetX.Value(),
		OffsetY:  c.offsetY.Value(),
		Rotation: c.rotation.Value(),
		Scale:    c.scale.Value(),
		Phase:    c.Phase(),
	}
}

// SetStepInterval changes the animation frame period on all four properties.
func (c *Controller) SetStepInterval(d time.Duration) {
	c.offsetX.SetStepInterval(d)
	c.offsetY.SetStepInterval(d)
	c.rotation.SetStepInterval(d)
	c.scale.SetStepInterval(d)
}

// DragStart marks the deck as being dragged.
func (c *Controller) DragStart() {
	c.setPhase(PhaseDragging)
}

// ShiftBy adds a drag delta to both offsets with immediate effect.
func (c *Controller) ShiftBy(dx, dy float64) {
	c.offsetX.Set(c.offsetX.Value() + dx)
	c.offsetY.Set(c.offsetY.Value() + dy)
}

// SetRotation snaps the rotation to the given degree value.
func (c *Controller) SetRotation(deg float64) {
	c.rotation.Set(deg)
}

// SetScale snaps the scale to the given value.
func (c *Controller) SetScale(s float64) {
	c.scale.Set(s)
}

// SwipeLeft launches the leftward dismissal sequence and returns immediately.
func (c *Controller) SwipeLeft() {
	c.swipe(-1)
}

// SwipeRight launches the rightward dismissal sequence and returns immediately.
func (c *Controller) SwipeRight() {
	c.swipe(1)
}

// swipe runs the outward animation pair for dir -1 (left) or +1 (right).
// Sequence A carries offsetX off screen, fires the callback once on
// completion, then snaps every property back to rest. Sequence B grows the
// scale toward 1.0 at the same time. The rest snap does not wait for B, so
// the two writers may interleave on scale; the overlap is intentional and
// left unserialized.
func (c *Controller) swipe(dir float64) {
	c.setPhase(PhaseOut)
	target := dir * c.overshoot * c.screenWidth
	go func() {
		if !c.offsetX.AnimateTo(target, c.swipeSpec) {
			return
		}
		if dir < 0 {
			fire(c.onSwipeLeft)
		} else {
			fire(c.onSwipeRight)
		}
		c.snapRest()
		c.advancePhase(PhaseOut, PhaseIdle)
	}()
	go func() {
		c.scale.AnimateTo(1.0, c.swipeSpec)
	}()
}

// ReturnCenter animates all four properties back to rest and returns immediately.
func (c *Controller) ReturnCenter() {
	c.setPhase(PhaseSettle)
	go func() {
		results := make(chan bool, 4)
		go func() { results <- c.offsetX.AnimateTo(0, c.settleSpec) }()
		go func() { results <- c.offsetY.AnimateTo(0, c.settleSpec) }()
		go func() { results <- c.rotation.AnimateTo(0, c.settleSpec) }()
		go func() { results <- c.scale.AnimateTo(c.restScale, c.settleSpec) }()
		all := true
		for i := 0; i < 4; i++ {
			if !<-results {
				all = false
			}
		}
		if all {
			c.advancePhase(PhaseSettle, PhaseIdle)
		}
	}()
}

// snapRest resets every property to its rest value without animating.
func (c *Controller) snapRest() {
	c.offsetX.Set(0)
	c.offsetY.Set(0)
	c.rotation.Set(0)
	c.scale.Set(c.restScale)
}

// setPhase stores the interaction phase.
func (c *Controller) setPhase(ph Phase) {
	c.mu.Lock()
	c.phase = ph
	c.mu.Unlock()
}

// advancePhase moves from one phase to another unless a newer command took over.
func (c *Controller) advancePhase(from, to Phase) {
	c.mu.Lock()
	if c.phase == from {
		c.phase = to
	}
	c.mu.Unlock()
}

// fire invokes a callback when one is wired.
func fire(fn func()) {
	if fn != nil {
		fn()
	}
}
