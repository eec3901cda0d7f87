// Package anim animates single scalar values with retargeting semantics.
package anim

import (
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/harmonica"
)

// DefaultStepInterval is the frame period animation tasks step at.
const DefaultStepInterval = time.Second / 60

// Settle thresholds for spring animations.
const (
	springPosEpsilon = 0.001
	springVelEpsilon = 0.01
)

// Property is one animatable scalar. Reads and writes are safe from any
// goroutine; at most one animation task drives the value at a time.
type Property struct {
	mu       sync.Mutex
	value    float64
	gen      uint64
	interval time.Duration
}

// NewProperty returns a property holding the given initial value.
func NewProperty(initial float64) *Property {
	return &Property{value: initial, interval: DefaultStepInterval}
}

// Value reports the current value.
func (p *Property) Value() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.value
}

// Set overwrites the value immediately. It cancels no animation; an in-flight
// task keeps stepping from its own interpolation state.
func (p *Property) Set(v float64) {
	p.mu.Lock()
	p.value = v
	p.mu.Unlock()
}

// SetStepInterval changes the frame period used by animation tasks started later.
func (p *Property) SetStepInterval(d time.Duration) {
	if d <= 0 {
		return
	}
	p.mu.Lock()
	p.interval = d
	p.mu.Unlock()
}

// AnimateTo interpolates the value toward target following spec. It blocks the
// caller until the animation completes (true) or a newer AnimateTo on the same
// property supersedes it (false). A newer call retargets from the current
// value instead of queuing behind the old one.
func (p *Property) AnimateTo(target float64, spec Spec) bool {
	spec = spec.sanitized()

	p.mu.Lock()
	p.gen++
	gen := p.gen
	start := p.value
	interval := p.interval
	p.mu.Unlock()

	if spec.Mode == ModeSpring {
		return p.runSpring(gen, start, target, interval, spec)
	}
	return p.runTween(gen, start, target, interval, spec)
}

// runTween steps a duration/easing interpolation until done or superseded.
func (p *Property) runTween(gen uint64, start, target float64, interval time.Duration, spec Spec) bool {
	ease, ok := EasingByName(spec.Easing)
	if !ok {
		ease = easeOutCubic
	}
	began := time.Now()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for now := range ticker.C {
		t := float64(now.Sub(began)) / float64(spec.Duration)
		if t >= 1 {
			return p.write(gen, target)
		}
		if !p.write(gen, Lerp(start, target, ease(t))) {
			return false
		}
	}
	return false
}

// runSpring steps a damped spring until it settles on the target or is superseded.
func (p *Property) runSpring(gen uint64, start, target float64, interval time.Duration, spec Spec) bool {
	spring := harmonica.NewSpring(interval.Seconds(), spec.Frequency, spec.Damping)
	pos, vel := start, 0.0
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for range ticker.C {
		pos, vel = spring.Update(pos, vel, target)
		if math.Abs(pos-target) < springPosEpsilon && math.Abs(vel) < springVelEpsilon {
			return p.write(gen, target)
		}
		if !p.write(gen, pos) {
			return false
		}
	}
	return false
}

// write stores v if the task identified by gen still owns the property.
func (p *Property) write(gen uint64, v float64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.gen != gen {
		return false
	}
	p.value = v
	return true
}
